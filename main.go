package main

import (
	"image"
	"log"
	"os"

	"github.com/automoto/actionmap/config"
	"github.com/automoto/actionmap/fonts"
	"github.com/automoto/actionmap/scenes"
	"github.com/automoto/actionmap/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	if err := fonts.LoadDefaults(config.UI.FontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	fs := pflag.NewFlagSet("actionmap", pflag.ExitOnError)
	config.RegisterFlags(fs)
	_ = fs.Parse(os.Args[1:])

	v, err := config.NewViper(fs)
	if err != nil {
		log.Fatalf("Failed to read configuration: %v", err)
	}
	config.Input = config.FromViper(v)
	config.Debug.LogEvents = v.GetBool(config.KeyLogEvents)

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("actionmap")

	// Bindings edited in the file are also kept in the save store
	if err := systems.InitPersistence("actionmap"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	scene := scenes.NewViewerScene(v.GetString(config.KeyBindings))
	defer scene.Close()

	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Fatal(err)
	}
}

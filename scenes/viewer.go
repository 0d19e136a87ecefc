package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/actionmap/bindingdata"
	cfg "github.com/automoto/actionmap/config"
	"github.com/automoto/actionmap/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ViewerScene shows the live state of every bound action
type ViewerScene struct {
	ecs          *ecs.ECS
	bindingsPath string
	watcher      *bindingdata.Watcher
	once         sync.Once
}

// NewViewerScene creates a viewer scene reading its bindings from path
func NewViewerScene(bindingsPath string) *ViewerScene {
	return &ViewerScene{bindingsPath: bindingsPath}
}

func (vs *ViewerScene) Update() {
	vs.once.Do(vs.configure)
	vs.ecs.Update()
}

func (vs *ViewerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if vs.ecs == nil {
		return
	}
	vs.ecs.Draw(screen)
}

// Close stops watching the binding file
func (vs *ViewerScene) Close() {
	if vs.watcher != nil {
		_ = vs.watcher.Close()
	}
}

func (vs *ViewerScene) watchBindings() {
	w, err := bindingdata.WatchFile(vs.bindingsPath)
	if err != nil {
		log.Printf("Warning: Could not watch %s: %v", vs.bindingsPath, err)
		return
	}
	vs.watcher = w
	vs.ecs.AddSystem(systems.NewUpdateBindingReload(w, vs.bindingsPath))
}

func (vs *ViewerScene) configure() {
	vs.ecs = ecs.NewECS(donburi.NewWorld())

	// Input pipeline (reset, capture, events)
	systems.AddInputSystems(vs.ecs, systems.NewEbitenDevices())
	systems.SetupBindings(vs.ecs, vs.bindingsPath)

	systems.InitViewer(vs.ecs)
	vs.ecs.AddSystem(systems.UpdateViewer)

	if bindingdata.IsBindingFile(vs.bindingsPath) {
		vs.watchBindings()
	}

	vs.ecs.AddRenderer(cfg.Default, systems.DrawViewer)
}

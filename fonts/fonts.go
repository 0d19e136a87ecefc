package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// FontName identifies a loaded face
type FontName string

const (
	Regular FontName = "regular"
	Title   FontName = "title"
)

var faces = map[FontName]font.Face{}

// Get returns the face registered under f, or a fixed 7x13 bitmap face when
// nothing was loaded under that name.
func (f FontName) Get() font.Face {
	if face, ok := faces[f]; ok {
		return face
	}
	return basicfont.Face7x13
}

// LoadDefaults registers Regular at size and Title at 1.5x size, both from the
// embedded Go Regular font.
func LoadDefaults(size float64) error {
	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("parsing Go Regular: %w", err)
	}
	faces[Regular] = truetype.NewFace(ttf, &truetype.Options{Size: size, Hinting: font.HintingFull})
	faces[Title] = truetype.NewFace(ttf, &truetype.Options{Size: size * 1.5, Hinting: font.HintingFull})
	return nil
}

// Load registers a face parsed from ttf under name.
func Load(name FontName, ttf []byte, size float64) error {
	parsed, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parsing font %s: %w", name, err)
	}
	faces[name] = truetype.NewFace(parsed, &truetype.Options{Size: size})
	return nil
}

package systems

import (
	"errors"
	"io/fs"
	"log"

	"github.com/automoto/actionmap/bindingdata"
	"github.com/yohamta/donburi/ecs"
)

// ApplyBindingFile replaces the registry with the contents of path. On error
// the registry is left as it was.
func ApplyBindingFile(e *ecs.ECS, path string) error {
	b, err := bindingdata.Load(path)
	if err != nil {
		return err
	}
	GetInputMap(e).Bindings.Apply(b)
	return nil
}

// SetupBindings fills the registry from path, then from the saved store, then
// from the defaults. The defaults are written to path so they can be edited.
// A path without a binding file extension is never read or written.
func SetupBindings(e *ecs.ECS, path string) {
	missing := false
	if !bindingdata.IsBindingFile(path) {
		log.Printf("Warning: %s is not a .yaml, .json or .toml file, ignoring it", path)
	} else if err := ApplyBindingFile(e, path); err == nil {
		log.Printf("InputMap: Loaded bindings from %s", path)
		return
	} else if errors.Is(err, fs.ErrNotExist) {
		missing = true
	} else {
		log.Printf("Warning: Could not load %s: %v", path, err)
	}

	if ok, err := LoadBindings(e); err == nil && ok {
		log.Printf("InputMap: Loaded saved bindings")
		return
	}

	defaults := bindingdata.Default()
	GetInputMap(e).Bindings.Apply(defaults)
	if missing {
		if err := bindingdata.Save(path, defaults); err != nil {
			log.Printf("Warning: Could not write %s: %v", path, err)
		}
	}
}

// NewUpdateBindingReload creates a system that reapplies path whenever w
// reports a change, and persists the result. A broken file keeps the old
// bindings.
func NewUpdateBindingReload(w *bindingdata.Watcher, path string) ecs.System {
	return func(e *ecs.ECS) {
		for {
			select {
			case _, ok := <-w.Events:
				if !ok {
					return
				}
				if err := ApplyBindingFile(e, path); err != nil {
					log.Printf("Warning: Could not reload %s: %v", path, err)
					continue
				}
				log.Printf("InputMap: Reloaded bindings from %s", path)
				_ = SaveBindings(e)
			case err, ok := <-w.Errors:
				if ok {
					log.Printf("Warning: Binding watcher: %v", err)
				}
				return
			default:
				return
			}
		}
	}
}

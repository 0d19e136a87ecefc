package systems

import (
	"fmt"
	"log"

	"github.com/automoto/actionmap/bindingdata"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const bindingsItem = "bindings"

// ItemStore is the part of gdata.Manager persistence needs.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var itemStore ItemStore

// InitPersistence opens the gdata store for appName.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	itemStore = m
	return nil
}

// SetItemStore replaces the store, nil disables persistence.
func SetItemStore(s ItemStore) {
	itemStore = s
}

// SaveBindings stores the current registry. Without a store it does nothing.
func SaveBindings(e *ecs.ECS) error {
	if itemStore == nil {
		return nil
	}

	data, err := bindingdata.Encode(bindingdata.FormatJSON, GetInputMap(e).Bindings.Snapshot())
	if err != nil {
		log.Printf("Warning: Could not serialize bindings: %v", err)
		return err
	}

	if err := itemStore.SaveItem(bindingsItem, data); err != nil {
		log.Printf("Warning: Could not save bindings: %v", err)
		return err
	}
	return nil
}

// LoadBindings replaces the registry with the stored bindings. It reports
// false, leaving the registry untouched, when nothing was stored.
func LoadBindings(e *ecs.ECS) (bool, error) {
	if itemStore == nil {
		return false, nil
	}

	data, err := itemStore.LoadItem(bindingsItem)
	if err != nil {
		log.Printf("Warning: Could not load bindings: %v", err)
		return false, err
	}
	if len(data) == 0 {
		// No saved bindings yet, use defaults
		return false, nil
	}

	b, err := bindingdata.Decode(bindingdata.FormatJSON, data)
	if err != nil {
		log.Printf("Warning: Could not parse saved bindings: %v", err)
		return false, fmt.Errorf("parsing saved bindings: %w", err)
	}
	GetInputMap(e).Bindings.Apply(b)
	return true, nil
}

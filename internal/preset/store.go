package preset

import (
	"bytes"
	"fmt"

	"github.com/quasilyte/gdata"
)

const lastUsedKey = "last-settings"

// itemStore is the subset of gdata.Manager used by Store.
type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Store persists the last used settings in the per-user application data
// directory.
type Store struct {
	items itemStore
}

// OpenStore opens the settings store for appName.
func OpenStore(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("could not initialize settings store: %w", err)
	}
	return &Store{items: m}, nil
}

// LoadLast returns the remembered settings. ok is false when nothing has
// been saved yet.
func (s *Store) LoadLast() (settings Settings, ok bool, err error) {
	data, err := s.items.LoadItem(lastUsedKey)
	if err != nil {
		return Settings{}, false, fmt.Errorf("could not load settings: %w", err)
	}
	if data == nil {
		return Settings{}, false, nil
	}

	settings, err = Decode(bytes.NewReader(data))
	if err != nil {
		return Settings{}, false, fmt.Errorf("could not parse saved settings: %w", err)
	}
	return settings, true, nil
}

// SaveLast remembers settings for the next run.
func (s *Store) SaveLast(settings Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	data, err := marshal(settings)
	if err != nil {
		return fmt.Errorf("could not serialize settings: %w", err)
	}

	if err := s.items.SaveItem(lastUsedKey, data); err != nil {
		return fmt.Errorf("could not save settings: %w", err)
	}
	return nil
}

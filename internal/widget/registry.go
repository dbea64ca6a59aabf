package widget

import (
	"slices"
	"sync"

	"github.com/pkg/errors"
)

var ErrNotRegistered = errors.New("widget type not registered")

type FactoryFunc func(options any) (Widget, error)

var (
	registryMutex sync.RWMutex
	registry      = map[Type]FactoryFunc{}
)

func Register(t Type, factory FactoryFunc) {
	registryMutex.Lock()
	defer registryMutex.Unlock()

	registry[t] = factory
}

func Registered() []Type {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	types := make([]Type, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}

	slices.Sort(types)

	return types
}

func New(t Type, options any) (Widget, error) {
	registryMutex.RLock()
	factory, exists := registry[t]
	registryMutex.RUnlock()

	if !exists {
		return nil, errors.Wrapf(ErrNotRegistered, "'%s'", t)
	}

	w, err := factory(options)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create widget '%s'", t)
	}

	return w, nil
}

package app

import (
	"reflect"
	"sync"

	"github.com/shuldan/eventbus/pkg/contracts"
)

type container struct {
	mu        sync.RWMutex
	factories map[reflect.Type]func(c contracts.DIContainer) (any, error)
	instances map[reflect.Type]any
}

func (c *container) Has(abstract reflect.Type) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, hasFactory := c.factories[abstract]
	_, hasInstance := c.instances[abstract]
	return hasFactory || hasInstance
}

func (c *container) Instance(abstract reflect.Type, concrete any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.instances[abstract]; exists {
		return ErrDuplicateInstance.WithDetail("type", abstract.String())
	}
	c.instances[abstract] = concrete
	return nil
}

func (c *container) Factory(abstract reflect.Type, factory func(c contracts.DIContainer) (any, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.factories[abstract]; exists {
		return ErrDuplicateFactory.WithDetail("type", abstract.String())
	}
	c.factories[abstract] = factory
	return nil
}

func (c *container) Resolve(abstract reflect.Type) (any, error) {
	return c.resolveWithStack(abstract, make(map[reflect.Type]bool))
}

func (c *container) resolveWithStack(abstract reflect.Type, resolving map[reflect.Type]bool) (any, error) {
	c.mu.RLock()
	if instance, exists := c.instances[abstract]; exists {
		c.mu.RUnlock()
		return instance, nil
	}
	factory, hasFactory := c.factories[abstract]
	c.mu.RUnlock()

	if resolving[abstract] {
		return nil, ErrCircularDep.WithDetail("type", abstract.String())
	}
	if !hasFactory {
		return nil, ErrValueNotFound.WithDetail("type", abstract.String())
	}

	resolving[abstract] = true
	defer delete(resolving, abstract)

	// Factories resolve their own dependencies through a proxy so the
	// in-progress set follows the call chain.
	instance, err := factory(&containerProxy{container: c, resolving: resolving})
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, exists := c.instances[abstract]; exists {
		return existing, nil
	}
	c.instances[abstract] = instance
	return instance, nil
}

type containerProxy struct {
	container *container
	resolving map[reflect.Type]bool
}

func (p *containerProxy) Has(abstract reflect.Type) bool {
	return p.container.Has(abstract)
}

func (p *containerProxy) Instance(abstract reflect.Type, concrete any) error {
	return p.container.Instance(abstract, concrete)
}

func (p *containerProxy) Factory(abstract reflect.Type, factory func(c contracts.DIContainer) (any, error)) error {
	return p.container.Factory(abstract, factory)
}

func (p *containerProxy) Resolve(abstract reflect.Type) (any, error) {
	return p.container.resolveWithStack(abstract, p.resolving)
}

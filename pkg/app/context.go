package app

import (
	"context"
	"sync"
	"time"

	"github.com/shuldan/eventbus/pkg/contracts"
)

type AppInfo struct {
	AppName     string
	Version     string
	Environment string
}

type appContext struct {
	ctx       context.Context
	cancel    context.CancelFunc
	container contracts.DIContainer
	info      AppInfo
	startTime time.Time
	stopTime  time.Time
	mu        sync.RWMutex
	isRunning bool
}

func newAppContext(info AppInfo, container contracts.DIContainer) *appContext {
	ctx, cancel := context.WithCancel(context.Background())
	return &appContext{
		ctx:       ctx,
		cancel:    cancel,
		container: container,
		info:      info,
		startTime: time.Now(),
		isRunning: true,
	}
}

func (c *appContext) Ctx() context.Context {
	return c.ctx
}

func (c *appContext) Container() contracts.DIContainer {
	return c.container
}

func (c *appContext) AppName() string {
	return c.info.AppName
}

func (c *appContext) Version() string {
	return c.info.Version
}

func (c *appContext) Environment() string {
	return c.info.Environment
}

func (c *appContext) StartTime() time.Time {
	return c.startTime
}

func (c *appContext) StopTime() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stopTime
}

func (c *appContext) IsRunning() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isRunning
}

func (c *appContext) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.isRunning {
		c.cancel()
		c.stopTime = time.Now()
		c.isRunning = false
	}
}

package app

import (
	"context"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/shuldan/eventbus/pkg/contracts"
)

type app struct {
	container       contracts.DIContainer
	registry        contracts.AppRegistry
	info            AppInfo
	isRunning       atomic.Bool
	shutdownTimeout time.Duration
}

func WithGracefulTimeout(timeout time.Duration) func(*app) {
	return func(a *app) {
		a.shutdownTimeout = timeout
	}
}

func (a *app) Register(module contracts.AppModule) error {
	return a.registry.Register(module)
}

func (a *app) Run() error {
	if !a.isRunning.CompareAndSwap(false, true) {
		return ErrAppRun.WithDetail("reason", "application is already running")
	}

	ctx := newAppContext(a.info, a.container)

	for _, module := range a.registry.All() {
		if err := module.Register(a.container); err != nil {
			ctx.Stop()
			return ErrModuleRegister.
				WithDetail("module", module.Name()).
				WithCause(err)
		}
	}

	started := 0
	for _, module := range a.registry.All() {
		if err := module.Start(ctx); err != nil {
			ctx.Stop()
			a.stopStarted(ctx, started)
			return ErrModuleStart.
				WithDetail("module", module.Name()).
				WithCause(err)
		}
		started++
	}

	go watchSignals(ctx)

	<-ctx.Ctx().Done()

	return a.shutdown(ctx)
}

func (a *app) shutdown(ctx contracts.AppContext) error {
	if a.shutdownTimeout <= 0 {
		return a.registry.Shutdown(ctx)
	}

	deadline, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.registry.Shutdown(ctx)
	}()

	select {
	case err := <-errCh:
		return err
	case <-deadline.Done():
		return ErrAppStop.WithDetail("reason", "graceful shutdown timed out after "+a.shutdownTimeout.String())
	}
}

func (a *app) stopStarted(ctx contracts.AppContext, startedCount int) {
	modules := a.registry.All()
	for i := startedCount - 1; i >= 0; i-- {
		_ = modules[i].Stop(ctx)
	}
}

func watchSignals(ctx contracts.AppContext) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-sigChan:
		ctx.Stop()
	case <-ctx.Ctx().Done():
	}
}

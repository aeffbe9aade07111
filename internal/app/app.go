package app

import (
	"context"
	"errors"
	"io"
	"os"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/you-humble/rocket-maintenance/autoparts/internal/config"
	repository "github.com/you-humble/rocket-maintenance/autoparts/internal/repository/part"
	"github.com/you-humble/rocket-maintenance/autoparts/platform/closer"
	"github.com/you-humble/rocket-maintenance/autoparts/platform/logger"
)

type Option func(*options)

type options struct {
	in  io.Reader
	out io.Writer
}

func WithInput(r io.Reader) Option {
	return func(o *options) { o.in = r }
}

func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

type app struct {
	opts   options
	di     *di
	closer *closer.Closer
}

func New(ctx context.Context, opts ...Option) (*app, error) {
	a := &app{opts: options{in: os.Stdin, out: os.Stdout}}
	for _, opt := range opts {
		opt(&a.opts)
	}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initDI,
		a.initParts,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
		config.C().Logger.Output(),
	)
}

func (a *app) initCloser(_ context.Context) error {
	a.closer = closer.New()
	a.closer.SetLogger(logger.L())
	a.closer.AddNamed("Logger", func(context.Context) error {
		err := logger.Sync()
		// stderr attached to a terminal cannot be fsynced.
		if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
			return nil
		}
		return err
	})
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI(a.opts.in, a.opts.out)
	return nil
}

func (a *app) initParts(ctx context.Context) error {
	if !config.C().Store.SeedDemo() {
		return nil
	}

	if err := repository.PartsBootstrap(ctx, a.di.PartsRepository(ctx)); err != nil {
		logger.Error(ctx, "failed to seed demo parts", logger.ErrorF(err))
		return err
	}
	logger.Info(ctx, "demo parts loaded")
	return nil
}

func (a *app) run(ctx context.Context) error {
	defer a.gracefulShutdown()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// The graph is built here: the DI container is not safe for concurrent use.
	reader := a.di.LineReader(ctx)
	handler := a.di.StoreHandler(ctx)

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		return reader.Pump(egCtx)
	})

	eg.Go(func() error {
		defer cancel()

		logger.Info(egCtx, "🚀 auto parts store menu running")
		return handler.Serve(egCtx)
	})

	return eg.Wait()
}

//nolint:contextcheck
func (a *app) gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(), // do not inherit cancellation from ctx
		config.C().Store.ShutdownTimeout(),
	)
	defer cancel()

	if err := a.closer.CloseAll(ctx); err != nil {
		logger.Error(ctx, "❌ Error during shutdown", logger.ErrorF(err))
		return
	}
	logger.Info(ctx, "✅ Store closed")
}

// Package app implements the user-facing operations of rauri.
package app

import (
	"context"
	"io"
	"os"

	"go.trai.ch/rauri/internal/core/domain"
	"go.trai.ch/rauri/internal/core/ports"
	"go.trai.ch/rauri/internal/engine/reconciler"
	"go.trai.ch/rauri/internal/ui/render"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	config       *domain.Config
	reconciler   *reconciler.Reconciler
	store        ports.TrackingStore
	packages     ports.PackageManager
	metadata     ports.MetadataService
	fetcher      ports.SourceFetcher
	builder      ports.Builder
	tracer       ports.Tracer
	logger       ports.Logger
	in           io.Reader
	out          io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	cfg *domain.Config,
	rec *reconciler.Reconciler,
	store ports.TrackingStore,
	packages ports.PackageManager,
	metadata ports.MetadataService,
	fetcher ports.SourceFetcher,
	builder ports.Builder,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		config:       cfg,
		reconciler:   rec,
		store:        store,
		packages:     packages,
		metadata:     metadata,
		fetcher:      fetcher,
		builder:      builder,
		tracer:       tracer,
		logger:       log,
		in:           os.Stdin,
		out:          os.Stdout,
	}
}

// WithIO replaces the streams used for prompts and listings.
// This is primarily used for testing.
func (a *App) WithIO(in io.Reader, out io.Writer) *App {
	a.in = in
	a.out = out
	return a
}

// Components holds what the entry point needs from the dependency graph.
type Components struct {
	App    *App
	Logger ports.Logger
}

type verboseSetter interface {
	SetVerbose(verbose bool)
}

// SetVerbose enables debug output when the logger supports it.
func (a *App) SetVerbose(verbose bool) {
	if l, ok := a.logger.(verboseSetter); ok {
		l.SetVerbose(verbose)
	}
}

func (a *App) renderer() *render.Renderer {
	return render.New(a.out, a.config.UseColor)
}

// phase runs fn inside a span named name. fn may annotate the span it is given.
func (a *App) phase(ctx context.Context, name string, fn func(context.Context, ports.Span) error) error {
	ctx, span := a.tracer.Start(ctx, name)
	defer span.End()

	if err := fn(ctx, span); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

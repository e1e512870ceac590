package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dshills/zoomfold/internal/config"
	"github.com/dshills/zoomfold/internal/plugin/lua"
	"github.com/dshills/zoomfold/internal/renderer"
	"github.com/dshills/zoomfold/internal/renderer/backend"
	"github.com/dshills/zoomfold/internal/zoom/controller"
)

// ErrQuit signals a normal user-requested exit.
var ErrQuit = errors.New("quit")

// Options configures application startup.
type Options struct {
	// ConfigPath is the configuration file location. Empty uses defaults.
	ConfigPath string

	// FilePath is the document to open.
	FilePath string
}

// App ties the editor to a terminal backend and the config watcher.
type App struct {
	editor  *Editor
	config  *config.Config
	backend backend.Backend
	painter *renderer.Painter
	watcher *config.Watcher
	crumb   *lua.BreadcrumbFormatter
	cancel  context.CancelFunc
}

// NewApp loads configuration, plugins, and the requested document.
func NewApp(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	a := &App{config: cfg}

	editorOpts := []Option{}
	if script := cfg.Plugin().BreadcrumbScript; script != "" {
		crumb, err := lua.LoadBreadcrumbFormatter(script, controller.DefaultLabel)
		if err != nil {
			return nil, fmt.Errorf("load breadcrumb plugin: %w", err)
		}
		a.crumb = crumb
		editorOpts = append(editorOpts, WithBreadcrumbFormatter(crumb.Format))
	}

	a.editor, err = New(cfg, editorOpts...)
	if err != nil {
		return nil, err
	}

	if opts.FilePath != "" {
		text, err := os.ReadFile(opts.FilePath)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", opts.FilePath, err)
		}
		name := filepath.Base(opts.FilePath)
		if err := a.editor.OpenDocument(context.Background(), uuid.NewString(), name, string(text)); err != nil {
			return nil, err
		}
	}

	if opts.ConfigPath != "" {
		w, err := config.Watch(cfg, opts.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("watch config: %w", err)
		}
		a.watcher = w
	}

	return a, nil
}

// Editor returns the application's editor.
func (a *App) Editor() *Editor {
	return a.editor
}

// SetBackend attaches the terminal backend. Must be called before Run.
func (a *App) SetBackend(b backend.Backend) {
	a.backend = b
	a.painter = renderer.New(b)
}

// Run drives the event loop until quit. Returns ErrQuit on a normal
// exit.
func (a *App) Run() error {
	if a.backend == nil {
		return errors.New("no backend set")
	}
	if err := a.backend.Init(); err != nil {
		return fmt.Errorf("init backend: %w", err)
	}
	defer a.backend.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	defer cancel()

	if a.watcher != nil {
		go a.watcher.Run(ctx)
	}

	a.painter.Draw(a.editor.Render())

	for {
		ev := a.backend.PollEvent()

		switch ev.Type {
		case backend.EventResize:
			a.painter.Draw(a.editor.Render())
			continue
		case backend.EventKey:
		default:
			continue
		}

		res := a.editor.HandleEvent(ctx, ev)
		if a.editor.ShouldQuit() {
			return ErrQuit
		}
		if res.Redraw {
			a.painter.Draw(a.editor.Render())
		}
	}
}

// Shutdown releases application resources. Safe to call more than once.
func (a *App) Shutdown() {
	if a.cancel != nil {
		a.cancel()
	}
	if a.watcher != nil {
		_ = a.watcher.Close()
		a.watcher = nil
	}
	if a.crumb != nil {
		a.crumb.Close()
		a.crumb = nil
	}
}

// Package di wires module dependencies from configuration: the sanitizer,
// the renderer engine, the editor session manager, the document loader,
// and the command handlers.
package di

import (
	"io/fs"

	"github.com/goliatone/go-mdedit/internal/commands"
	editorcmd "github.com/goliatone/go-mdedit/internal/commands/editor"
	"github.com/goliatone/go-mdedit/internal/document"
	"github.com/goliatone/go-mdedit/internal/editor"
	"github.com/goliatone/go-mdedit/internal/logging"
	"github.com/goliatone/go-mdedit/internal/logging/console"
	"github.com/goliatone/go-mdedit/internal/logging/gologger"
	"github.com/goliatone/go-mdedit/internal/render"
	"github.com/goliatone/go-mdedit/internal/runtimeconfig"
	"github.com/goliatone/go-mdedit/internal/sanitize"
	"github.com/goliatone/go-mdedit/pkg/interfaces"
)

// Container wires module dependencies.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	sanitizer      interfaces.Sanitizer
	renderer       interfaces.MarkdownRenderer
	clock          interfaces.Clock
	manager        *editor.Manager

	documentFS  fs.FS
	loaderCfg   document.LoaderConfig
	loader      *document.Loader
	registry    editorcmd.CommandRegistry
	handlers    *editorcmd.HandlerSet
	handlersErr error
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider built from the logging config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithSanitizer overrides the sanitizer compiled from the allow list.
func WithSanitizer(s interfaces.Sanitizer) Option {
	return func(c *Container) {
		c.sanitizer = s
	}
}

// WithRenderer overrides the renderer selected by the engine config.
func WithRenderer(r interfaces.MarkdownRenderer) Option {
	return func(c *Container) {
		c.renderer = r
	}
}

// WithClock injects the timer source used by session history recorders.
// Tests use this to drive debounce deterministically.
func WithClock(clock interfaces.Clock) Option {
	return func(c *Container) {
		c.clock = clock
	}
}

// WithDocumentFS binds the filesystem documents are loaded from.
func WithDocumentFS(filesystem fs.FS, cfg document.LoaderConfig) Option {
	return func(c *Container) {
		c.documentFS = filesystem
		c.loaderCfg = cfg
	}
}

// WithCommandRegistry binds the registry command handlers register against.
func WithCommandRegistry(reg editorcmd.CommandRegistry) Option {
	return func(c *Container) {
		c.registry = reg
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	c.configureSanitizer()
	c.configureRenderer()
	c.configureEditor()
	c.configureDocuments()
	c.configureCommands()

	return c, nil
}

func (c *Container) configureLogging() error {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return nil
	}

	switch c.Config.Logging.Provider {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err != nil {
			return err
		}
		c.loggerProvider = provider
	default:
		level := console.ParseLevel(c.Config.Logging.Level)
		c.loggerProvider = console.NewProvider(console.Options{MinLevel: &level})
	}
	return nil
}

func (c *Container) configureSanitizer() {
	if c.sanitizer != nil {
		return
	}
	if c.Config.Sanitizer.Passthrough {
		c.sanitizer = sanitize.NewPassthrough()
		return
	}
	c.sanitizer = sanitize.New(c.Config.Sanitizer.AllowList)
}

func (c *Container) configureRenderer() {
	if c.renderer != nil {
		return
	}
	switch c.Config.Render.Engine {
	case runtimeconfig.EngineGoldmark:
		c.renderer = render.NewGoldmark(c.sanitizer)
	default:
		c.renderer = render.New(c.sanitizer,
			render.WithLogger(logging.RenderLogger(c.loggerProvider)))
	}
}

func (c *Container) configureEditor() {
	if !c.Config.Features.Editor {
		return
	}

	managerOpts := []editor.ManagerOption{
		editor.WithDefaultFlags(c.Config.Render.DefaultFlags),
		editor.WithHistoryLimit(c.Config.History.MaxEntries),
		editor.WithDebounce(c.Config.History.Debounce),
		editor.WithLogger(c.loggerProvider),
	}
	if c.clock != nil {
		managerOpts = append(managerOpts, editor.WithManagerClock(c.clock))
	}
	c.manager = editor.NewManager(c.renderer, managerOpts...)
}

func (c *Container) configureDocuments() {
	if c.documentFS == nil {
		return
	}
	c.loader = document.NewLoader(c.documentFS, c.loaderCfg,
		document.WithLoaderLogger(c.loggerProvider))
}

func (c *Container) configureCommands() {
	if !c.Config.Features.Commands || c.manager == nil {
		return
	}

	gates := editorcmd.FeatureGates{
		EditorEnabled: func() bool { return c.Config.Features.Editor },
	}

	var reg editorcmd.CommandRegistry
	if c.Config.Commands.AutoRegisterDispatcher {
		reg = c.registry
	}

	c.handlers, c.handlersErr = editorcmd.RegisterEditorCommands(reg, c.manager, c.loggerProvider, gates)
}

// LoggerProvider returns the configured logging provider, which is nil
// when the logging feature is disabled and no override was supplied.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// Sanitizer returns the configured HTML sanitizer.
func (c *Container) Sanitizer() interfaces.Sanitizer {
	return c.sanitizer
}

// Renderer returns the configured markdown renderer.
func (c *Container) Renderer() interfaces.MarkdownRenderer {
	return c.renderer
}

// EditorManager returns the session manager, or nil when the editor
// feature is disabled.
func (c *Container) EditorManager() *editor.Manager {
	return c.manager
}

// DocumentLoader returns the loader bound via WithDocumentFS, or nil.
func (c *Container) DocumentLoader() *document.Loader {
	return c.loader
}

// CommandHandlers returns the registered editor command handlers along
// with any registration error.
func (c *Container) CommandHandlers() (*editorcmd.HandlerSet, error) {
	return c.handlers, c.handlersErr
}

// CommandLogger exposes the shared command logger namespace for hosts that
// register extra handlers of their own.
func (c *Container) CommandLogger(module string) interfaces.Logger {
	return commands.CommandLogger(c.loggerProvider, module)
}

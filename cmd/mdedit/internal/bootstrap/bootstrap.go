package bootstrap

import (
	"fmt"
	"os"
	"strings"

	mdedit "github.com/goliatone/go-mdedit"
	"github.com/goliatone/go-mdedit/internal/di"
	"github.com/goliatone/go-mdedit/internal/document"
	"github.com/goliatone/go-mdedit/internal/logging"
	"github.com/goliatone/go-mdedit/pkg/interfaces"
)

// Options captures configuration for engine CLI bootstraps.
type Options struct {
	ContentDir     string
	Pattern        string
	Recursive      bool
	Engine         string
	LogLevel       string
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the engine module alongside the configured loader and logger.
type Module struct {
	Module *mdedit.Module
	Loader *mdedit.DocumentLoader
	Logger interfaces.Logger
}

// BuildModule constructs an engine module configured for document previews.
func BuildModule(opts Options) (*Module, error) {
	cfg := mdedit.DefaultConfig()
	cfg.Features.Logger = true

	if engine := strings.TrimSpace(opts.Engine); engine != "" {
		cfg.Render.Engine = engine
	}
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.Logging.Level = level
	}

	contentDir := strings.TrimSpace(opts.ContentDir)
	if contentDir == "" {
		contentDir = "content"
	}

	loaderCfg := document.LoaderConfig{
		BasePath:  contentDir,
		Recursive: opts.Recursive,
	}
	if trimmed := strings.TrimSpace(opts.Pattern); trimmed != "" {
		loaderCfg.Pattern = trimmed
	}

	diOpts := []di.Option{
		di.WithDocumentFS(os.DirFS(contentDir), loaderCfg),
	}
	if opts.LoggerProvider != nil {
		diOpts = append(diOpts, di.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := mdedit.New(cfg, diOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise engine module: %w", err)
	}

	loader := module.Documents()
	if loader == nil {
		return nil, fmt.Errorf("document loader not configured")
	}

	logger := logging.DocumentLogger(module.Container().LoggerProvider())

	return &Module{
		Module: module,
		Loader: loader,
		Logger: logger,
	}, nil
}

package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-mdedit/pkg/interfaces"
)

// ErrHistoryMaxEntriesInvalid rejects a non-positive snapshot cap.
var ErrHistoryMaxEntriesInvalid = errors.New("mdedit config: history max entries must be positive")

// ErrHistoryDebounceInvalid rejects a negative debounce interval.
var ErrHistoryDebounceInvalid = errors.New("mdedit config: history debounce must be zero or positive")

var ErrRendererEngineUnknown = errors.New("mdedit config: renderer engine is invalid")
var ErrSanitizerAllowListEmpty = errors.New("mdedit config: sanitizer allow list needs at least one tag")
var ErrLoggingProviderRequired = errors.New("mdedit config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("mdedit config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("mdedit config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("mdedit config: logging format is invalid")

// Renderer engine identifiers accepted by RenderConfig.Engine.
const (
	EnginePipeline = "pipeline"
	EngineGoldmark = "goldmark"
)

// Config aggregates feature flags and adapter bindings for the engine.
// Fields intentionally use simple types so host applications can extend
// them later.
type Config struct {
	Enabled   bool
	Render    RenderConfig
	Sanitizer SanitizerConfig
	History   HistoryConfig
	Commands  CommandsConfig
	Features  Features
	Logging   LoggingConfig
}

// RenderConfig selects the rendering engine and the default feature flags
// applied when a caller does not override them per render.
type RenderConfig struct {
	Engine       string
	DefaultFlags interfaces.FeatureFlags
}

// SanitizerConfig captures the allow-list policy compiled at startup. When
// Passthrough is set no policy is built and every render result is flagged
// as needing re-sanitization; hosts use this for environments where a
// downstream sanitizer runs instead.
type SanitizerConfig struct {
	AllowList   interfaces.AllowList
	Passthrough bool
}

// HistoryConfig bounds the per-session undo window and the debounce
// interval that coalesces rapid edits into one snapshot.
type HistoryConfig struct {
	MaxEntries int
	Debounce   time.Duration
}

// CommandsConfig captures optional command-layer behaviour.
type CommandsConfig struct {
	Enabled                bool
	AutoRegisterDispatcher bool
}

// Features toggles module functionality.
type Features struct {
	Editor   bool
	Commands bool
	Logger   bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns the all-features-on defaults: the staged pipeline
// renderer, the default allow list, a 100-entry history window with a
// 500ms debounce, and console logging.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Render: RenderConfig{
			Engine:       EnginePipeline,
			DefaultFlags: interfaces.DefaultFeatureFlags(),
		},
		Sanitizer: SanitizerConfig{
			AllowList: interfaces.DefaultAllowList(),
		},
		History: HistoryConfig{
			MaxEntries: 100,
			Debounce:   500 * time.Millisecond,
		},
		Commands: CommandsConfig{},
		Features: Features{
			Editor: true,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	switch normalize(cfg.Render.Engine) {
	case "", EnginePipeline, EngineGoldmark:
	default:
		return fmt.Errorf("%w: %s", ErrRendererEngineUnknown, cfg.Render.Engine)
	}

	if !cfg.Sanitizer.Passthrough && len(cfg.Sanitizer.AllowList.Tags) == 0 {
		return ErrSanitizerAllowListEmpty
	}

	if cfg.History.MaxEntries <= 0 {
		return ErrHistoryMaxEntriesInvalid
	}
	if cfg.History.Debounce < 0 {
		return ErrHistoryDebounceInvalid
	}

	if cfg.Features.Logger {
		provider := normalize(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch normalize(level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch normalize(format) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}

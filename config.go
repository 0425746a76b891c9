package mdedit

import "github.com/goliatone/go-mdedit/internal/runtimeconfig"

var (
	ErrHistoryMaxEntriesInvalid = runtimeconfig.ErrHistoryMaxEntriesInvalid
	ErrHistoryDebounceInvalid   = runtimeconfig.ErrHistoryDebounceInvalid
	ErrRendererEngineUnknown    = runtimeconfig.ErrRendererEngineUnknown
	ErrSanitizerAllowListEmpty  = runtimeconfig.ErrSanitizerAllowListEmpty
	ErrLoggingProviderRequired  = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown   = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid      = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid     = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config          = runtimeconfig.Config
	RenderConfig    = runtimeconfig.RenderConfig
	SanitizerConfig = runtimeconfig.SanitizerConfig
	HistoryConfig   = runtimeconfig.HistoryConfig
	CommandsConfig  = runtimeconfig.CommandsConfig
	Features        = runtimeconfig.Features
	LoggingConfig   = runtimeconfig.LoggingConfig
)

// Renderer engine identifiers accepted by RenderConfig.Engine.
const (
	EnginePipeline = runtimeconfig.EnginePipeline
	EngineGoldmark = runtimeconfig.EngineGoldmark
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

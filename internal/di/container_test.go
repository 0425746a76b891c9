package di

import (
	"strings"
	"testing"

	"github.com/goliatone/go-mdedit/internal/commands/fixtures"
	"github.com/goliatone/go-mdedit/internal/runtimeconfig"
)

func TestNewContainerRejectsInvalidConfig(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Render.Engine = "asciidoc"

	if _, err := NewContainer(cfg); err == nil {
		t.Fatal("expected engine validation error")
	}
}

func TestNewContainerBuildsPipelineRendererByDefault(t *testing.T) {
	container, err := NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("new container: %v", err)
	}

	renderer := container.Renderer()
	if renderer == nil {
		t.Fatal("expected renderer configured")
	}

	result := renderer.Render("**hi**", container.Config.Render.DefaultFlags)
	if !strings.Contains(result.HTML, "<strong>hi</strong>") {
		t.Fatalf("render = %q", result.HTML)
	}
}

func TestNewContainerGoldmarkEngine(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Render.Engine = runtimeconfig.EngineGoldmark

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("new container: %v", err)
	}

	result := container.Renderer().Render("# Top", cfg.Render.DefaultFlags)
	if !strings.Contains(result.HTML, "<h1") {
		t.Fatalf("render = %q", result.HTML)
	}
}

func TestNewContainerEditorFeatureGate(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Editor = false

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("new container: %v", err)
	}
	if container.EditorManager() != nil {
		t.Fatal("expected nil manager when editor feature disabled")
	}
}

func TestNewContainerCommandsRequireEditor(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Editor = false
	cfg.Features.Commands = true

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("new container: %v", err)
	}

	handlers, handlersErr := container.CommandHandlers()
	if handlers != nil || handlersErr != nil {
		t.Fatalf("expected no handlers without editor, got %#v, %v", handlers, handlersErr)
	}
}

func TestNewContainerRegistersCommandHandlers(t *testing.T) {
	reg := fixtures.NewRecordingRegistry()

	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Commands = true
	cfg.Commands.AutoRegisterDispatcher = true

	container, err := NewContainer(cfg, WithCommandRegistry(reg))
	if err != nil {
		t.Fatalf("new container: %v", err)
	}

	handlers, handlersErr := container.CommandHandlers()
	if handlersErr != nil {
		t.Fatalf("command handlers: %v", handlersErr)
	}
	if handlers == nil || handlers.ApplyFormat == nil {
		t.Fatalf("expected handler set built, got %#v", handlers)
	}
	if len(reg.Handlers) != 4 {
		t.Fatalf("expected four handlers registered, got %d", len(reg.Handlers))
	}
}

func TestNewContainerSkipsDispatcherRegistrationWhenDisabled(t *testing.T) {
	reg := fixtures.NewRecordingRegistry()

	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Commands = true

	container, err := NewContainer(cfg, WithCommandRegistry(reg))
	if err != nil {
		t.Fatalf("new container: %v", err)
	}

	handlers, handlersErr := container.CommandHandlers()
	if handlersErr != nil {
		t.Fatalf("command handlers: %v", handlersErr)
	}
	if handlers == nil {
		t.Fatal("expected handlers built even without auto registration")
	}
	if len(reg.Handlers) != 0 {
		t.Fatalf("expected no registrations, got %d", len(reg.Handlers))
	}
}

func TestNewContainerPassthroughSanitizer(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Sanitizer.Passthrough = true

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("new container: %v", err)
	}
	if container.Sanitizer().PolicyApplied() {
		t.Fatal("expected passthrough sanitizer to report no policy")
	}
}

package editor

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-mdedit/internal/history"
	"github.com/goliatone/go-mdedit/internal/logging"
	"github.com/goliatone/go-mdedit/pkg/interfaces"
)

// ErrSessionNotFound is returned when a session id has no open session.
var ErrSessionNotFound = errors.New("editor: session not found")

// Manager opens and tracks editing sessions. Each session gets its own
// history store; the manager only shares the renderer and logging provider
// across them.
type Manager struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session

	renderer   interfaces.MarkdownRenderer
	flags      interfaces.FeatureFlags
	maxEntries int
	debounce   time.Duration
	clock      interfaces.Clock
	logger     interfaces.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithDefaultFlags sets the feature flags sessions render previews with.
func WithDefaultFlags(flags interfaces.FeatureFlags) ManagerOption {
	return func(m *Manager) {
		m.flags = flags
	}
}

// WithHistoryLimit caps the per-session snapshot window.
func WithHistoryLimit(maxEntries int) ManagerOption {
	return func(m *Manager) {
		if maxEntries > 0 {
			m.maxEntries = maxEntries
		}
	}
}

// WithDebounce overrides the snapshot debounce interval.
func WithDebounce(interval time.Duration) ManagerOption {
	return func(m *Manager) {
		if interval > 0 {
			m.debounce = interval
		}
	}
}

// WithManagerClock injects the timer source used by session recorders.
func WithManagerClock(clock interfaces.Clock) ManagerOption {
	return func(m *Manager) {
		if clock != nil {
			m.clock = clock
		}
	}
}

// WithLogger wires the logging provider for sessions and the manager.
func WithLogger(provider interfaces.LoggerProvider) ManagerOption {
	return func(m *Manager) {
		m.logger = logging.EditorLogger(provider)
	}
}

// NewManager builds a session manager around the given renderer.
func NewManager(renderer interfaces.MarkdownRenderer, opts ...ManagerOption) *Manager {
	m := &Manager{
		sessions:   map[uuid.UUID]*Session{},
		renderer:   renderer,
		flags:      interfaces.DefaultFeatureFlags(),
		maxEntries: history.DefaultMaxEntries,
		debounce:   history.DefaultDebounce,
		clock:      history.NewWallClock(),
		logger:     logging.NoOp(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Open creates a session seeded with the given text and registers it.
func (m *Manager) Open(seed string) *Session {
	id := uuid.New()
	store := history.NewStore(seed, m.maxEntries)
	recorder := history.NewRecorder(store,
		history.WithClock(m.clock),
		history.WithInterval(m.debounce),
		history.WithRecorderLogger(m.logger),
	)

	session := &Session{
		id:       id,
		text:     seed,
		recorder: recorder,
		renderer: m.renderer,
		flags:    m.flags,
		logger:   m.logger,
	}

	m.mu.Lock()
	m.sessions[id] = session
	m.mu.Unlock()

	m.logger.Info("editor.session.opened", "session_id", id.String(), "seed_len", len(seed))
	return session
}

// Get returns the open session with the given id.
func (m *Manager) Get(id uuid.UUID) (*Session, error) {
	m.mu.Lock()
	session, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Close stops a session's recorder and forgets it.
func (m *Manager) Close(id uuid.UUID) error {
	m.mu.Lock()
	session, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	session.Close()
	m.logger.Info("editor.session.closed", "session_id", id.String())
	return nil
}

// Len reports the number of open sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

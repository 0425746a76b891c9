// Package fixtures provides shared test doubles for command wiring.
package fixtures

// RecordingRegistry captures command handlers registered during wiring.
// It satisfies the registry contract command registration helpers accept.
type RecordingRegistry struct {
	Handlers []any
	err      error
}

// NewRecordingRegistry constructs an empty registry recorder.
func NewRecordingRegistry() *RecordingRegistry {
	return &RecordingRegistry{
		Handlers: make([]any, 0),
	}
}

// Fail configures the recorder to return the supplied error on registration.
func (r *RecordingRegistry) Fail(err error) {
	r.err = err
}

// RegisterCommand records the handler, or returns the configured error.
func (r *RecordingRegistry) RegisterCommand(handler any) error {
	if r.err != nil {
		return r.err
	}
	r.Handlers = append(r.Handlers, handler)
	return nil
}

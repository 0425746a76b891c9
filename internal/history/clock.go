package history

import (
	"time"

	"github.com/goliatone/go-mdedit/pkg/interfaces"
)

// WallClock schedules on the process clock via time.AfterFunc.
type WallClock struct{}

// NewWallClock returns the production clock.
func NewWallClock() WallClock { return WallClock{} }

// AfterFunc satisfies interfaces.Clock.
func (WallClock) AfterFunc(d time.Duration, fn func()) interfaces.Timer {
	return time.AfterFunc(d, fn)
}

var _ interfaces.Clock = WallClock{}

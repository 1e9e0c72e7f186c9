package tui

import (
	"time"

	"github.com/asalkapakli/ykscountdown/internal/counter"
	"github.com/asalkapakli/ykscountdown/internal/logging"
	"github.com/asalkapakli/ykscountdown/internal/settings"
)

// AppState holds the services the dashboard runs on.
type AppState struct {
	Store    *settings.Store
	Location *time.Location
	Tick     time.Duration

	// Counter is nil when the visit counter is disabled.
	Counter        *counter.Client
	CounterTimeout time.Duration

	Logger *logging.Logger

	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *AppState) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *AppState) location() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.Local
}

func (s *AppState) tick() time.Duration {
	if s.Tick > 0 {
		return s.Tick
	}
	return time.Second
}

func (s *AppState) logger() *logging.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return logging.Discard()
}

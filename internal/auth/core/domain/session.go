package domain

import (
	"time"

	inventory "tyre-dashboard-service/internal/inventory/core/domain"
)

// Session is one signed-in dashboard user. It carries the filter state the
// user has built up, so every request is computed from explicit state.
type Session struct {
	Token     string
	Username  string
	CreatedAt time.Time
	ExpiresAt time.Time
	Filters   inventory.FilterState
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Clone deep-copies the filter maps.
func (s *Session) Clone() *Session {
	c := *s
	c.Filters = s.Filters.Clone()
	return &c
}

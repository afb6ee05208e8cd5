// Package session keeps per-visitor server side state keyed by an opaque id.
package session

import (
	"context"
	"errors"
	"time"
)

const RoleEditor = "editor"

var ErrNotFound = errors.New("session not found")

type Data struct {
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
}

func (d Data) IsEditor() bool {
	return d.Role == RoleEditor
}

type Store interface {
	// Get returns ErrNotFound for unknown or expired ids.
	Get(ctx context.Context, id string) (Data, error)
	Save(ctx context.Context, id string, data Data, ttl time.Duration) error
	// Delete is a no-op for unknown ids.
	Delete(ctx context.Context, id string) error
}

package session

import (
	"context"
	"errors"
	"testing"
	"time"
)

// testStore runs the behaviour every Store must share. advance moves the
// store's clock forward.
func testStore(t *testing.T, s Store, advance func(time.Duration)) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("Get(missing) err = %v, want ErrNotFound", err)
		}

		if err := s.Save(ctx, "abc", Data{Username: "admin", Role: RoleEditor}, time.Hour); err != nil {
			t.Fatalf("Save: %v", err)
		}

		got, err := s.Get(ctx, "abc")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if !got.IsEditor() || got.Username != "admin" {
			t.Errorf("Get = %+v", got)
		}
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		_ = s.Save(ctx, "gone", Data{Role: RoleEditor}, time.Hour)

		if err := s.Delete(ctx, "gone"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, err := s.Get(ctx, "gone"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Get after Delete err = %v", err)
		}
		if err := s.Delete(ctx, "gone"); err != nil {
			t.Errorf("second Delete err = %v", err)
		}
	})

	t.Run("overwrite", func(t *testing.T) {
		_ = s.Save(ctx, "same", Data{Username: "a", Role: RoleEditor}, time.Hour)
		_ = s.Save(ctx, "same", Data{Username: "b"}, time.Hour)

		got, err := s.Get(ctx, "same")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.Username != "b" || got.IsEditor() {
			t.Errorf("Get = %+v, want the second save", got)
		}
	})

	t.Run("expiry", func(t *testing.T) {
		_ = s.Save(ctx, "short", Data{Role: RoleEditor}, time.Minute)

		advance(30 * time.Second)
		if _, err := s.Get(ctx, "short"); err != nil {
			t.Fatalf("Get before expiry err = %v", err)
		}

		advance(time.Minute)
		if _, err := s.Get(ctx, "short"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("Get after expiry err = %v", err)
		}
	})
}

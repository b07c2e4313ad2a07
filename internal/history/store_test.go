package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := bolt.Open(filepath.Join(t.TempDir(), "settz.db.test"), 0600, nil)
	if err != nil {
		t.Fatal(err)
	}
	s := NewStore(db)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreEmpty(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	changes, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(changes) != 0 {
		t.Fatalf("expected no changes, got %v", changes)
	}
	if _, err := s.Last(ctx); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected %v, got %v", ErrEmpty, err)
	}
	if _, err := s.Pop(ctx); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected %v, got %v", ErrEmpty, err)
	}
}

func TestStoreRecordPop(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	want := []Change{
		{Previous: "UTC", Applied: "Pacific Standard Time", Time: now},
		{Previous: "Pacific Standard Time", Applied: "W. Europe Standard Time", Time: now.Add(time.Hour)},
		{Previous: "W. Europe Standard Time", Applied: "Tokyo Standard Time", Time: now.Add(2 * time.Hour)},
	}
	for _, c := range want {
		if err := s.Record(ctx, c); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}

	last, err := s.Last(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want[2], last); diff != "" {
		t.Fatalf("last change mismatch (-want +got):\n%s", diff)
	}

	for i := len(want) - 1; i >= 0; i-- {
		c, err := s.Pop(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want[i], c); diff != "" {
			t.Fatalf("popped change mismatch (-want +got):\n%s", diff)
		}
	}
	if _, err := s.Pop(ctx); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected %v, got %v", ErrEmpty, err)
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "settz.db")

	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Record(ctx, Change{Previous: "UTC", Applied: "Greenwich Standard Time"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	c, err := s.Last(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if c.Applied != "Greenwich Standard Time" {
		t.Fatalf("expected the change to persist, got %+v", c)
	}
}

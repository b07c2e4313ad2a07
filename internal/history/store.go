// Package history keeps a journal of applied time zone changes so that they
// can be reverted.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/containerd/errdefs"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"

	"github.com/Microsoft/settz/internal/log"
	"github.com/Microsoft/settz/internal/logfields"
)

// ErrEmpty is returned when the journal holds no changes.
var ErrEmpty = fmt.Errorf("no recorded time zone changes: %w", errdefs.ErrNotFound)

// Change is one applied time zone change.
type Change struct {
	// Previous is the key name that was active before the change.
	Previous string `json:"previous"`
	// Applied is the key name that was set.
	Applied string    `json:"applied"`
	Time    time.Time `json:"time"`
}

// Store is a journal of time zone changes kept in a bbolt database.
type Store struct {
	db *bolt.DB
}

// NewStore returns a Store over an open database.
func NewStore(database *bolt.DB) *Store {
	return &Store{
		db: database,
	}
}

// Open opens (creating if needed) the bbolt database at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open history database %s", path)
	}
	return NewStore(db), nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends c to the journal.
func (s *Store) Record(ctx context.Context, c Change) error {
	if err := s.db.Update(func(tx *bolt.Tx) error {
		bkt, err := createChangesBucket(tx)
		if err != nil {
			return err
		}
		seq, err := bkt.NextSequence()
		if err != nil {
			return err
		}
		data, err := json.Marshal(c)
		if err != nil {
			return err
		}
		return bkt.Put(seqKey(seq), data)
	}); err != nil {
		return errors.Wrap(err, "record time zone change")
	}
	log.G(ctx).WithField(logfields.KeyName, c.Applied).Debug("recorded time zone change")
	return nil
}

// List returns the recorded changes, oldest first.
func (s *Store) List(ctx context.Context) ([]Change, error) {
	var raw [][]byte
	if err := s.db.View(func(tx *bolt.Tx) error {
		bkt := getChangesBucket(tx)
		if bkt == nil {
			return nil
		}
		return bkt.ForEach(func(_, v []byte) error {
			raw = append(raw, append([]byte(nil), v...))
			return nil
		})
	}); err != nil {
		return nil, err
	}

	changes := make([]Change, 0, len(raw))
	for _, data := range raw {
		var c Change
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, errors.Wrapf(err, "data is %v", string(data))
		}
		changes = append(changes, c)
	}
	return changes, nil
}

// Last returns the most recent change.
func (s *Store) Last(ctx context.Context) (Change, error) {
	changes, err := s.List(ctx)
	if err != nil {
		return Change{}, err
	}
	if len(changes) == 0 {
		return Change{}, ErrEmpty
	}
	return changes[len(changes)-1], nil
}

// Pop removes and returns the most recent change.
func (s *Store) Pop(ctx context.Context) (Change, error) {
	var c Change
	if err := s.db.Update(func(tx *bolt.Tx) error {
		bkt := getChangesBucket(tx)
		if bkt == nil {
			return ErrEmpty
		}
		k, v := bkt.Cursor().Last()
		if k == nil {
			return ErrEmpty
		}
		if err := json.Unmarshal(v, &c); err != nil {
			return errors.Wrapf(err, "data is %v", string(v))
		}
		return bkt.Delete(k)
	}); err != nil {
		return Change{}, err
	}
	return c, nil
}

// Package privilege toggles privileges on the current process token around an
// operation that requires them.
//
// The process token is shared by every goroutine of the process: concurrent
// gates enabling and disabling the same privilege race with each other, so
// callers must serialize.
package privilege

//go:generate go tool go.uber.org/mock/mockgen -source=privilege.go -package=mock -destination=mock/privilege_mock.go

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Microsoft/settz/internal/log"
	"github.com/Microsoft/settz/internal/logfields"
)

// SeTimeZonePrivilege is required to change the system time zone.
const SeTimeZonePrivilege = "SeTimeZonePrivilege"

// Adjuster enables and disables a named privilege on the process token.
type Adjuster interface {
	Enable(name string) error
	Disable(name string) error
}

// Gate wraps an Adjuster with scoped, best-effort acquisition.
type Gate struct {
	adj Adjuster
}

// NewGate returns a Gate that adjusts privileges through adj.
func NewGate(adj Adjuster) *Gate {
	return &Gate{adj: adj}
}

// Acquire enables name. Failures are logged and reported as false.
func (g *Gate) Acquire(ctx context.Context, name string) bool {
	return g.acquire(ctx, name) == nil
}

// Release disables name. Failures are logged and reported as false.
func (g *Gate) Release(ctx context.Context, name string) bool {
	return g.release(ctx, name) == nil
}

// With enables name, runs fn, and disables name again.
//
// fn runs even if enabling failed: the protected call is the authority on
// whether the privilege was required. The release is attempted on every exit
// path, including a failed acquire, an error from fn, or a panic. A failed
// release is logged and never returned, so it cannot mask fn's result.
//
// acquireErr is the (possibly nil) error from enabling the privilege.
func (g *Gate) With(ctx context.Context, name string, fn func() error) (acquireErr, err error) {
	acquireErr = g.acquire(ctx, name)
	defer g.release(ctx, name) //nolint:errcheck // logged in release

	return acquireErr, fn()
}

func (g *Gate) acquire(ctx context.Context, name string) error {
	entry := log.G(ctx).WithField(logfields.Privilege, name)
	if err := g.adj.Enable(name); err != nil {
		err = errors.Wrapf(err, "enable privilege %s", name)
		entry.WithError(err).Warning("could not enable privilege")
		return err
	}
	entry.Debug("enabled privilege")
	return nil
}

func (g *Gate) release(ctx context.Context, name string) error {
	entry := log.G(ctx).WithField(logfields.Privilege, name)
	if err := g.adj.Disable(name); err != nil {
		err = errors.Wrapf(err, "disable privilege %s", name)
		entry.WithError(err).Warning("could not disable privilege")
		return err
	}
	entry.Debug("disabled privilege")
	return nil
}

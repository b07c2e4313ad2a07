//go:build windows

package privilege

import (
	"github.com/Microsoft/go-winio"
)

// ProcessAdjuster adjusts privileges on the token of the current process
// (not the calling thread), opened with TOKEN_ADJUST_PRIVILEGES | TOKEN_QUERY
// for the duration of each call.
type ProcessAdjuster struct{}

var _ Adjuster = ProcessAdjuster{}

// Enable returns a [*winio.PrivilegeError] if the token does not hold name.
func (ProcessAdjuster) Enable(name string) error {
	return winio.EnableProcessPrivileges([]string{name})
}

func (ProcessAdjuster) Disable(name string) error {
	return winio.DisableProcessPrivileges([]string{name})
}

//go:build windows

package timezone

import (
	"github.com/Microsoft/settz/internal/privilege"
	"github.com/Microsoft/settz/internal/tzregistry"
	"github.com/Microsoft/settz/internal/winapi"
	"github.com/Microsoft/settz/internal/winapi/types"
	"github.com/Microsoft/settz/osversion"
)

// HostSystem calls the kernel32 time zone APIs of the running machine.
type HostSystem struct{}

var _ System = HostSystem{}

func (HostSystem) OSVersion() osversion.OSVersion {
	return osversion.Get()
}

func (HostSystem) SetTimeZoneInformation(tzi *types.TimeZoneInformation) error {
	return winapi.SetTimeZoneInformation(tzi)
}

func (HostSystem) SetDynamicTimeZoneInformation(dtzi *types.DynamicTimeZoneInformation) error {
	return winapi.SetDynamicTimeZoneInformation(dtzi)
}

func (HostSystem) GetDynamicTimeZoneInformation(dtzi *types.DynamicTimeZoneInformation) (uint32, error) {
	return winapi.GetDynamicTimeZoneInformation(dtzi)
}

// NewHost returns a Committer for the local machine.
func NewHost() *Committer {
	return New(tzregistry.LocalMachine{}, HostSystem{}, privilege.NewGate(privilege.ProcessAdjuster{}))
}

package osversion

import (
	"sync"

	"golang.org/x/sys/windows"
)

var (
	osv  OSVersion
	once sync.Once
)

// Get gets the operating system version on Windows.
// RtlGetVersion is not subject to the manifest based version lie of
// GetVersionEx, so no application manifest is required.
func Get() OSVersion {
	once.Do(func() {
		v := *windows.RtlGetVersion()
		osv = newVersion(uint8(v.MajorVersion), uint8(v.MinorVersion), uint16(v.BuildNumber))
	})
	return osv
}

//go:build windows

package winapi

import "github.com/Microsoft/settz/internal/winapi/types"

// BOOL SetTimeZoneInformation(
//   [in] const TIME_ZONE_INFORMATION *lpTimeZoneInformation
// );
//
//sys setTimeZoneInformation(tzi *types.TimeZoneInformation) (err error) = kernel32.SetTimeZoneInformation

// BOOL SetDynamicTimeZoneInformation(
//   [in] const DYNAMIC_TIME_ZONE_INFORMATION *lpTimeZoneInformation
// );
//
//sys setDynamicTimeZoneInformation(dtzi *types.DynamicTimeZoneInformation) (err error) = kernel32.SetDynamicTimeZoneInformation

// DWORD GetDynamicTimeZoneInformation(
//   [out] PDYNAMIC_TIME_ZONE_INFORMATION pTimeZoneInformation
// );
//
//sys getDynamicTimeZoneInformation(dtzi *types.DynamicTimeZoneInformation) (id uint32, err error) [failretval==TIME_ZONE_ID_INVALID] = kernel32.GetDynamicTimeZoneInformation

// Return values of GetDynamicTimeZoneInformation.
//
//nolint:revive,stylecheck
const (
	TIME_ZONE_ID_UNKNOWN  = 0
	TIME_ZONE_ID_STANDARD = 1
	TIME_ZONE_ID_DAYLIGHT = 2
	TIME_ZONE_ID_INVALID  = 0xffffffff
)

// SetTimeZoneInformation sets the current time zone without a key name.
// The caller must hold SeTimeZonePrivilege.
func SetTimeZoneInformation(tzi *types.TimeZoneInformation) error {
	return setTimeZoneInformation(tzi)
}

// SetDynamicTimeZoneInformation sets the current time zone and its key name.
// The caller must hold SeTimeZonePrivilege.
func SetDynamicTimeZoneInformation(dtzi *types.DynamicTimeZoneInformation) error {
	return setDynamicTimeZoneInformation(dtzi)
}

// GetDynamicTimeZoneInformation fills dtzi with the current time zone and
// returns one of the TIME_ZONE_ID_* values.
func GetDynamicTimeZoneInformation(dtzi *types.DynamicTimeZoneInformation) (uint32, error) {
	return getDynamicTimeZoneInformation(dtzi)
}

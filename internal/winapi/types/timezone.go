package types

// The structures below mirror the Win32 layouts passed to the kernel32
// time zone APIs. Field order and sizes must not change.

// SystemTime is SYSTEMTIME.
//
// https://learn.microsoft.com/en-us/windows/win32/api/minwinbase/ns-minwinbase-systemtime
//
// When used as a time zone transition date, a Year of 0 marks a recurring
// annual rule: Day is then the occurrence (1-5) of DayOfWeek within Month.
type SystemTime struct {
	Year         uint16
	Month        uint16
	DayOfWeek    uint16
	Day          uint16
	Hour         uint16
	Minute       uint16
	Second       uint16
	Milliseconds uint16
}

// Recurring reports whether t describes an annual rule rather than a fixed date.
func (t SystemTime) Recurring() bool {
	return t.Year == 0
}

// String capacities, in UTF-16 code units including the terminating NUL.
const (
	TimeZoneNameLength    = 32
	TimeZoneKeyNameLength = 128
)

// TimeZoneInformation is TIME_ZONE_INFORMATION.
//
// https://learn.microsoft.com/en-us/windows/win32/api/timezoneapi/ns-timezoneapi-time_zone_information
type TimeZoneInformation struct {
	Bias         int32
	StandardName [TimeZoneNameLength]uint16
	StandardDate SystemTime
	StandardBias int32
	DaylightName [TimeZoneNameLength]uint16
	DaylightDate SystemTime
	DaylightBias int32
}

// DynamicTimeZoneInformation is DYNAMIC_TIME_ZONE_INFORMATION.
//
// https://learn.microsoft.com/en-us/windows/win32/api/timezoneapi/ns-timezoneapi-dynamic_time_zone_information
type DynamicTimeZoneInformation struct {
	Bias                        int32
	StandardName                [TimeZoneNameLength]uint16
	StandardDate                SystemTime
	StandardBias                int32
	DaylightName                [TimeZoneNameLength]uint16
	DaylightDate                SystemTime
	DaylightBias                int32
	TimeZoneKeyName             [TimeZoneKeyNameLength]uint16
	DynamicDaylightTimeDisabled uint8 // BOOLEAN
}

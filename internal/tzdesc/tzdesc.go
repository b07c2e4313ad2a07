// Package tzdesc builds the descriptor handed to the OS when committing a
// time zone.
package tzdesc

import (
	"fmt"
	"unicode/utf16"

	"github.com/pkg/errors"

	"github.com/Microsoft/settz/internal/tzerror"
	"github.com/Microsoft/settz/internal/tzi"
	"github.com/Microsoft/settz/internal/winapi/types"
	"github.com/Microsoft/settz/osversion"
)

// Variant selects which Win32 structure, and therefore which API, is used.
type Variant int

const (
	// Legacy is TIME_ZONE_INFORMATION, committed with SetTimeZoneInformation.
	Legacy Variant = iota
	// Dynamic is DYNAMIC_TIME_ZONE_INFORMATION, committed with
	// SetDynamicTimeZoneInformation (Windows Vista and later).
	Dynamic
)

// DynamicMajorVersion is the first OS major version with
// SetDynamicTimeZoneInformation.
const DynamicMajorVersion = osversion.VistaMajor

func (v Variant) String() string {
	switch v {
	case Legacy:
		return "legacy"
	case Dynamic:
		return "dynamic"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// VariantFor returns the descriptor variant for an OS major version.
func VariantFor(major uint8) Variant {
	if major < DynamicMajorVersion {
		return Legacy
	}
	return Dynamic
}

// Descriptor is exactly one of the two OS time zone structures, tagged by Variant.
type Descriptor struct {
	Variant Variant
	// Legacy is set iff Variant == Legacy.
	Legacy *types.TimeZoneInformation
	// Dynamic is set iff Variant == Dynamic.
	Dynamic *types.DynamicTimeZoneInformation
}

// Build converts a decoded registry record and its names into the descriptor
// for an OS with the given major version.
//
// Names are never truncated: one that does not fit its field, terminating NUL
// included, fails with [tzerror.ErrNameTooLong].
func Build(rec tzi.Record, std, dlt, key string, major uint8) (*Descriptor, error) {
	switch VariantFor(major) {
	case Legacy:
		tz := &types.TimeZoneInformation{
			Bias:         rec.Bias,
			StandardDate: rec.StandardDate,
			StandardBias: rec.StandardBias,
			DaylightDate: rec.DaylightDate,
			DaylightBias: rec.DaylightBias,
		}
		if err := putString(tz.StandardName[:], std, "standard name"); err != nil {
			return nil, err
		}
		if err := putString(tz.DaylightName[:], dlt, "daylight name"); err != nil {
			return nil, err
		}
		return &Descriptor{Variant: Legacy, Legacy: tz}, nil
	default:
		tz := &types.DynamicTimeZoneInformation{
			Bias:         rec.Bias,
			StandardDate: rec.StandardDate,
			StandardBias: rec.StandardBias,
			DaylightDate: rec.DaylightDate,
			DaylightBias: rec.DaylightBias,
			// keep automatic daylight saving adjustment enabled
			DynamicDaylightTimeDisabled: 0,
		}
		if err := putString(tz.StandardName[:], std, "standard name"); err != nil {
			return nil, err
		}
		if err := putString(tz.DaylightName[:], dlt, "daylight name"); err != nil {
			return nil, err
		}
		if err := putString(tz.TimeZoneKeyName[:], key, "key name"); err != nil {
			return nil, err
		}
		return &Descriptor{Variant: Dynamic, Dynamic: tz}, nil
	}
}

// putString writes s as a NUL terminated UTF-16 string into dst.
func putString(dst []uint16, s, field string) error {
	u := utf16.Encode([]rune(s))
	if len(u) >= len(dst) {
		return errors.Wrapf(tzerror.ErrNameTooLong, "%s %q is %d UTF-16 units, limit is %d", field, s, len(u), len(dst)-1)
	}
	n := copy(dst, u)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
	return nil
}

func getString(src []uint16) string {
	for i, c := range src {
		if c == 0 {
			return string(utf16.Decode(src[:i]))
		}
	}
	return string(utf16.Decode(src))
}

// Bias returns the base UTC offset, in minutes, of the descriptor.
func (d *Descriptor) Bias() int32 {
	if d.Variant == Legacy {
		return d.Legacy.Bias
	}
	return d.Dynamic.Bias
}

// StandardName returns the standard time display name.
func (d *Descriptor) StandardName() string {
	if d.Variant == Legacy {
		return getString(d.Legacy.StandardName[:])
	}
	return getString(d.Dynamic.StandardName[:])
}

// DaylightName returns the daylight time display name.
func (d *Descriptor) DaylightName() string {
	if d.Variant == Legacy {
		return getString(d.Legacy.DaylightName[:])
	}
	return getString(d.Dynamic.DaylightName[:])
}

// KeyName returns the registry key name; it is empty for the legacy variant.
func (d *Descriptor) KeyName() string {
	if d.Variant == Legacy {
		return ""
	}
	return getString(d.Dynamic.TimeZoneKeyName[:])
}

// FromDynamic wraps a structure filled in by the OS, such as the result of
// GetDynamicTimeZoneInformation.
func FromDynamic(tz *types.DynamicTimeZoneInformation) *Descriptor {
	return &Descriptor{Variant: Dynamic, Dynamic: tz}
}

// Summary is a flat, printable view of a Descriptor.
type Summary struct {
	Variant      string           `json:"variant"`
	KeyName      string           `json:"keyName,omitempty"`
	StandardName string           `json:"standardName"`
	DaylightName string           `json:"daylightName"`
	Bias         int32            `json:"bias"`
	StandardBias int32            `json:"standardBias"`
	DaylightBias int32            `json:"daylightBias"`
	StandardDate types.SystemTime `json:"standardDate"`
	DaylightDate types.SystemTime `json:"daylightDate"`
}

// Summary flattens d for printing and logging.
func (d *Descriptor) Summary() Summary {
	s := Summary{
		Variant:      d.Variant.String(),
		KeyName:      d.KeyName(),
		StandardName: d.StandardName(),
		DaylightName: d.DaylightName(),
	}
	if d.Variant == Legacy {
		s.Bias, s.StandardBias, s.DaylightBias = d.Legacy.Bias, d.Legacy.StandardBias, d.Legacy.DaylightBias
		s.StandardDate, s.DaylightDate = d.Legacy.StandardDate, d.Legacy.DaylightDate
	} else {
		s.Bias, s.StandardBias, s.DaylightBias = d.Dynamic.Bias, d.Dynamic.StandardBias, d.Dynamic.DaylightBias
		s.StandardDate, s.DaylightDate = d.Dynamic.StandardDate, d.Dynamic.DaylightDate
	}
	return s
}

// Package tzregistry reads the time zone database kept in the registry.
package tzregistry

//go:generate go tool go.uber.org/mock/mockgen -source=tzregistry.go -package=mock -destination=mock/tzregistry_mock.go

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/Microsoft/settz/internal/tzerror"
)

// Paths and value names, relative to HKEY_LOCAL_MACHINE.
const (
	TimeZonesPath = `SOFTWARE\Microsoft\Windows NT\CurrentVersion\Time Zones`

	StandardNameValue = "Std"
	DaylightNameValue = "Dlt"
	DisplayValue      = "Display"
	TZIValue          = "TZI"

	TimeZoneInformationPath = `SYSTEM\CurrentControlSet\Control\TimeZoneInformation`
	TimeZoneKeyNameValue    = "TimeZoneKeyName"
)

// Reader is the subset of registry access needed to resolve a time zone.
type Reader interface {
	// SubKeyNames lists the names of the subkeys of path.
	SubKeyNames(path string) ([]string, error)
	// StringValue reads a REG_SZ value.
	StringValue(path, name string) (string, error)
	// BinaryValue reads a REG_BINARY value.
	BinaryValue(path, name string) ([]byte, error)
}

// Entry is the raw registry definition of one time zone.
type Entry struct {
	KeyName      string
	StandardName string
	DaylightName string
	TZI          []byte
}

// KeyPath returns the path of the time zone subkey name.
func KeyPath(name string) string {
	return TimeZonesPath + `\` + name
}

// FindKey returns the first subkey of [TimeZonesPath] equal to name.
// The comparison is exact and case-sensitive.
func FindKey(r Reader, name string) (string, error) {
	names, err := r.SubKeyNames(TimeZonesPath)
	if err != nil {
		return "", errors.Wrapf(tzerror.ErrRegistryRead, "list %s: %v", TimeZonesPath, err)
	}
	key, ok := lo.Find(names, func(s string) bool { return s == name })
	if !ok {
		return "", errors.Wrapf(tzerror.ErrUnknownTimeZone, "%q", name)
	}
	return key, nil
}

// ReadEntry reads the values of the time zone subkey key.
func ReadEntry(r Reader, key string) (*Entry, error) {
	p := KeyPath(key)
	e := &Entry{KeyName: key}

	var err error
	if e.DaylightName, err = r.StringValue(p, DaylightNameValue); err != nil {
		return nil, readError(p, DaylightNameValue, err)
	}
	if e.StandardName, err = r.StringValue(p, StandardNameValue); err != nil {
		return nil, readError(p, StandardNameValue, err)
	}
	if e.TZI, err = r.BinaryValue(p, TZIValue); err != nil {
		return nil, readError(p, TZIValue, err)
	}
	return e, nil
}

// DisplayName returns the user-facing label of the time zone subkey key, such
// as "(UTC-08:00) Pacific Time (US & Canada)".
func DisplayName(r Reader, key string) (string, error) {
	p := KeyPath(key)
	s, err := r.StringValue(p, DisplayValue)
	if err != nil {
		return "", readError(p, DisplayValue, err)
	}
	return s, nil
}

// CurrentKeyName returns the key name of the time zone configured for the
// machine, as recorded in the registry.
func CurrentKeyName(r Reader) (string, error) {
	s, err := r.StringValue(TimeZoneInformationPath, TimeZoneKeyNameValue)
	if err != nil {
		return "", readError(TimeZoneInformationPath, TimeZoneKeyNameValue, err)
	}
	return s, nil
}

func readError(path, value string, err error) error {
	return errors.Wrapf(tzerror.ErrRegistryRead, `%s\%s: %v`, path, value, err)
}

//go:build windows

package winapi

import (
	"testing"

	"golang.org/x/sys/windows"

	"github.com/Microsoft/settz/internal/winapi/types"
)

func TestGetDynamicTimeZoneInformation(t *testing.T) {
	var dtzi types.DynamicTimeZoneInformation
	id, err := GetDynamicTimeZoneInformation(&dtzi)
	if err != nil {
		t.Fatalf("GetDynamicTimeZoneInformation: %v", err)
	}
	switch id {
	case TIME_ZONE_ID_UNKNOWN, TIME_ZONE_ID_STANDARD, TIME_ZONE_ID_DAYLIGHT:
	default:
		t.Fatalf("unexpected time zone id %d", id)
	}
	if name := windows.UTF16ToString(dtzi.TimeZoneKeyName[:]); name == "" {
		t.Error("active time zone has no key name")
	}
}

func TestErrnoErr(t *testing.T) {
	// a failing call that left no last error must still report failure
	if err := errnoErr(0); err == nil {
		t.Fatal("errno 0 must map to an error")
	}
	if err := errnoErr(5); err != windows.ERROR_ACCESS_DENIED { //nolint:errorlint
		t.Fatalf("expected ERROR_ACCESS_DENIED, got %v", err)
	}
}

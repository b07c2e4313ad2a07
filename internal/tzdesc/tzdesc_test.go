package tzdesc

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/Microsoft/settz/internal/tzerror"
	"github.com/Microsoft/settz/internal/tzi"
	"github.com/Microsoft/settz/internal/winapi/types"
)

var pacific = tzi.Record{
	Bias:         480,
	DaylightBias: -60,
	StandardDate: types.SystemTime{Month: 11, Day: 1, Hour: 2},
	DaylightDate: types.SystemTime{Month: 3, Day: 2, Hour: 2},
}

const (
	pacificKey = "Pacific Standard Time"
	pacificStd = "Pacific Standard Time"
	pacificDlt = "Pacific Daylight Time"
)

func TestVariantFor(t *testing.T) {
	for _, tc := range []struct {
		major uint8
		want  Variant
	}{
		{0, Legacy},
		{4, Legacy},
		{5, Legacy},
		{6, Dynamic},
		{10, Dynamic},
		{255, Dynamic},
	} {
		if got := VariantFor(tc.major); got != tc.want {
			t.Errorf("major version %d: expected %s, got %s", tc.major, tc.want, got)
		}
	}
}

func TestBuildLegacy(t *testing.T) {
	d, err := Build(pacific, pacificStd, pacificDlt, pacificKey, 5)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if d.Variant != Legacy || d.Legacy == nil || d.Dynamic != nil {
		t.Fatalf("expected only the legacy payload, got %+v", d)
	}
	if d.KeyName() != "" {
		t.Errorf("legacy descriptor has no key name, got %q", d.KeyName())
	}

	want := Summary{
		Variant:      "legacy",
		StandardName: pacificStd,
		DaylightName: pacificDlt,
		Bias:         480,
		DaylightBias: -60,
		StandardDate: pacific.StandardDate,
		DaylightDate: pacific.DaylightDate,
	}
	if diff := cmp.Diff(want, d.Summary()); diff != "" {
		t.Fatalf("descriptor mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDynamic(t *testing.T) {
	d, err := Build(pacific, pacificStd, pacificDlt, pacificKey, 6)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if d.Variant != Dynamic || d.Dynamic == nil || d.Legacy != nil {
		t.Fatalf("expected only the dynamic payload, got %+v", d)
	}
	if d.Dynamic.DynamicDaylightTimeDisabled != 0 {
		t.Error("dynamic daylight saving adjustment must stay enabled")
	}

	want := Summary{
		Variant:      "dynamic",
		KeyName:      pacificKey,
		StandardName: pacificStd,
		DaylightName: pacificDlt,
		Bias:         480,
		DaylightBias: -60,
		StandardDate: pacific.StandardDate,
		DaylightDate: pacific.DaylightDate,
	}
	if diff := cmp.Diff(want, d.Summary()); diff != "" {
		t.Fatalf("descriptor mismatch (-want +got):\n%s", diff)
	}
	if d.Bias() != 480 {
		t.Errorf("expected bias 480, got %d", d.Bias())
	}
}

func TestBuildStringsAreTerminated(t *testing.T) {
	d, err := Build(pacific, "AB", "CD", "EF", 10)
	if err != nil {
		t.Fatal(err)
	}
	want := [types.TimeZoneNameLength]uint16{'A', 'B'}
	if d.Dynamic.StandardName != want {
		t.Fatalf("expected %v, got %v", want, d.Dynamic.StandardName)
	}
}

func TestBuildNameLimits(t *testing.T) {
	fits := strings.Repeat("x", types.TimeZoneNameLength-1)
	tooLong := strings.Repeat("x", types.TimeZoneNameLength)
	keyFits := strings.Repeat("k", types.TimeZoneKeyNameLength-1)
	keyTooLong := strings.Repeat("k", types.TimeZoneKeyNameLength)
	// U+1F30D needs a surrogate pair: 16 of them are 32 UTF-16 units
	surrogates := strings.Repeat("\U0001F30D", types.TimeZoneNameLength/2)

	for _, tc := range []struct {
		name     string
		std      string
		dlt      string
		key      string
		major    uint8
		tooLong  bool
		wantName string
	}{
		{name: "standard at limit", std: fits, dlt: "d", key: "k", major: 10, wantName: fits},
		{name: "standard over limit", std: tooLong, dlt: "d", key: "k", major: 10, tooLong: true},
		{name: "daylight over limit legacy", std: "s", dlt: tooLong, key: "k", major: 5, tooLong: true},
		{name: "key at limit", std: "s", dlt: "d", key: keyFits, major: 10, wantName: "s"},
		{name: "key over limit", std: "s", dlt: "d", key: keyTooLong, major: 10, tooLong: true},
		{name: "key ignored on legacy", std: "s", dlt: "d", key: keyTooLong, major: 5, wantName: "s"},
		{name: "surrogate pairs count twice", std: surrogates, dlt: "d", key: "k", major: 10, tooLong: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d, err := Build(pacific, tc.std, tc.dlt, tc.key, tc.major)
			if tc.tooLong {
				if !errors.Is(err, tzerror.ErrNameTooLong) {
					t.Fatalf("expected %v, got %v", tzerror.ErrNameTooLong, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("build failed: %v", err)
			}
			if got := d.StandardName(); got != tc.wantName {
				t.Fatalf("expected standard name %q, got %q", tc.wantName, got)
			}
		})
	}
}

func TestFromDynamic(t *testing.T) {
	d, err := Build(pacific, pacificStd, pacificDlt, pacificKey, 10)
	if err != nil {
		t.Fatal(err)
	}
	got := FromDynamic(d.Dynamic)
	if got.KeyName() != pacificKey || got.DaylightName() != pacificDlt {
		t.Fatalf("unexpected names %q, %q", got.KeyName(), got.DaylightName())
	}
}

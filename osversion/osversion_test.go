package osversion

import (
	"testing"
)

func TestOSVersionString(t *testing.T) {
	v := OSVersion{
		Version:      1248854026,
		MajorVersion: 10,
		MinorVersion: 0,
		Build:        19056,
	}
	expected := "10.0.19056"
	actual := v.String()
	if actual != expected {
		t.Errorf("expected: %q, got: %q", expected, actual)
	}

	t.Run("parse back", func(t *testing.T) {
		parsed, err := Parse(actual)
		if err != nil {
			t.Errorf("failed to parse back: %q", err)
		}
		if parsed != v {
			t.Errorf("parsed version is not the same, original: %+v (%d) parsed: %+v (%d)", v, v.Version, parsed, parsed.Version)
		}
	})
}

func TestOSVersionIgnoreRevision(t *testing.T) {
	expected := newVersion(6, 1, 7601)
	actual, err := Parse("6.1.7601.24545")
	if err != nil {
		t.Errorf("failed to parse: %q", err)
	}
	if actual != expected {
		t.Errorf("expected: %q, got: %q", expected, actual)
	}
}

func TestOSVersionMajorMinorOnly(t *testing.T) {
	actual, err := Parse("5.2")
	if err != nil {
		t.Fatalf("failed to parse: %q", err)
	}
	if actual.MajorVersion != Server2003Major || actual.MinorVersion != 2 || actual.Build != 0 {
		t.Errorf("unexpected version %+v", actual)
	}
}

func TestOSVersionFailUnexpected(t *testing.T) {
	for _, tc := range []string{
		"123.2.12345.9876.432134",
		"123",
		"256.0",
		"10.x",
		"windows",
	} {
		t.Run(tc, func(t *testing.T) {
			_, err := Parse(tc)
			if err == nil {
				t.Errorf("parsing %q should fail", tc)
			}
		})
	}
}

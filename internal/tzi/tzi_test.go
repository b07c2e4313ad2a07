package tzi

import (
	"bytes"
	"encoding/hex"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/Microsoft/settz/internal/tzerror"
	"github.com/Microsoft/settz/internal/winapi/types"
)

// TZI value of "Pacific Standard Time" as shipped with Windows 10.
const pacificTZI = "e0010000" + "00000000" + "c4ffffff" +
	"00000b00000001000200000000000000" +
	"00000300000002000200000000000000"

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("could not decode %q: %v", s, err)
	}
	return b
}

func TestDecodePacific(t *testing.T) {
	r, err := Decode(mustHex(t, pacificTZI))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	want := Record{
		Bias:         480,
		StandardBias: 0,
		DaylightBias: -60,
		StandardDate: types.SystemTime{Month: 11, DayOfWeek: 0, Day: 1, Hour: 2},
		DaylightDate: types.SystemTime{Month: 3, DayOfWeek: 0, Day: 2, Hour: 2},
	}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Fatalf("decoded record mismatch (-want +got):\n%s", diff)
	}
	if !r.ObservesDaylight() {
		t.Error("Pacific Standard Time observes daylight saving")
	}
	if !r.StandardDate.Recurring() || !r.DaylightDate.Recurring() {
		t.Error("year 0 transition dates must stay recurring")
	}
}

func TestDecodeFieldOffsets(t *testing.T) {
	// every 16-bit word holds its own index, so any offset drift shows up
	b := make([]byte, Size)
	for i := 0; i < Size/2; i++ {
		b[2*i] = byte(i)
	}
	r, err := Decode(b)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	want := Record{
		Bias:         0x00010000,
		StandardBias: 0x00030002,
		DaylightBias: 0x00050004,
		StandardDate: types.SystemTime{Year: 6, Month: 7, DayOfWeek: 8, Day: 9, Hour: 10, Minute: 11, Second: 12, Milliseconds: 13},
		DaylightDate: types.SystemTime{Year: 14, Month: 15, DayOfWeek: 16, Day: 17, Hour: 18, Minute: 19, Second: 20, Milliseconds: 21},
	}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Fatalf("decoded record mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeWrongLength(t *testing.T) {
	for _, n := range []int{0, 1, 43, 45, 88, 172} {
		_, err := Decode(make([]byte, n))
		if !errors.Is(err, tzerror.ErrMalformedRecord) {
			t.Errorf("length %d: expected %v, got %v", n, tzerror.ErrMalformedRecord, err)
		}
	}
	if _, err := Decode(nil); !errors.Is(err, tzerror.ErrMalformedRecord) {
		t.Errorf("nil input: expected %v, got %v", tzerror.ErrMalformedRecord, err)
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(44, 0x2c))
	inputs := [][]byte{mustHex(t, pacificTZI), make([]byte, Size), bytes.Repeat([]byte{0xff}, Size)}
	for i := 0; i < 256; i++ {
		b := make([]byte, Size)
		for j := range b {
			b[j] = byte(rng.UintN(256))
		}
		inputs = append(inputs, b)
	}

	for _, in := range inputs {
		r, err := Decode(in)
		if err != nil {
			t.Fatalf("decode %x failed: %v", in, err)
		}
		out, err := r.MarshalBinary()
		if err != nil {
			t.Fatalf("encode %+v failed: %v", r, err)
		}
		if !bytes.Equal(in, out) {
			t.Fatalf("round trip mismatch:\n in: %x\nout: %x", in, out)
		}
	}
}

func TestObservesDaylight(t *testing.T) {
	for _, tc := range []struct {
		name     string
		standard types.SystemTime
		daylight types.SystemTime
		want     bool
	}{
		// "UTC" has no transitions
		{name: "zeroed"},
		{name: "both dates", standard: types.SystemTime{Month: 11, Day: 1, Hour: 2}, daylight: types.SystemTime{Month: 3, Day: 2, Hour: 2}, want: true},
		{name: "standard month only", standard: types.SystemTime{Month: 10, Day: 5, Hour: 3}, want: true},
		{name: "daylight month only", daylight: types.SystemTime{Month: 3, Day: 5, Hour: 2}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r := Record{StandardDate: tc.standard, DaylightDate: tc.daylight}
			if got := r.ObservesDaylight(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

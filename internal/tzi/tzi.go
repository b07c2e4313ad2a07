// Package tzi decodes the REG_TZI_FORMAT value ("TZI") stored for each entry
// under HKLM\SOFTWARE\Microsoft\Windows NT\CurrentVersion\Time Zones.
//
// The value is a packed little-endian structure:
//
//	offset  size  field
//	0       4     Bias
//	4       4     StandardBias
//	8       4     DaylightBias
//	12      16    StandardDate (SYSTEMTIME)
//	28      16    DaylightDate (SYSTEMTIME)
package tzi

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/Microsoft/settz/internal/tzerror"
	"github.com/Microsoft/settz/internal/winapi/types"
)

// Size is the exact length of a REG_TZI_FORMAT value.
const Size = 44

const (
	offsetBias         = 0
	offsetStandardBias = 4
	offsetDaylightBias = 8
	offsetStandardDate = 12
	offsetDaylightDate = 28

	systemTimeSize = 16
)

// Record is a decoded REG_TZI_FORMAT value. Biases are in minutes; UTC = local + Bias.
type Record struct {
	Bias         int32
	StandardBias int32
	DaylightBias int32
	// StandardDate is the daylight to standard transition.
	StandardDate types.SystemTime
	// DaylightDate is the standard to daylight transition.
	DaylightDate types.SystemTime
}

// Decode parses b, which must be exactly [Size] bytes long.
func Decode(b []byte) (Record, error) {
	var r Record
	if err := r.UnmarshalBinary(b); err != nil {
		return Record{}, err
	}
	return r, nil
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler].
func (r *Record) UnmarshalBinary(b []byte) error {
	if len(b) != Size {
		return errors.Wrapf(tzerror.ErrMalformedRecord, "expected %d bytes, got %d", Size, len(b))
	}
	le := binary.LittleEndian
	r.Bias = int32(le.Uint32(b[offsetBias:]))
	r.StandardBias = int32(le.Uint32(b[offsetStandardBias:]))
	r.DaylightBias = int32(le.Uint32(b[offsetDaylightBias:]))
	r.StandardDate = decodeSystemTime(b[offsetStandardDate : offsetStandardDate+systemTimeSize])
	r.DaylightDate = decodeSystemTime(b[offsetDaylightDate : offsetDaylightDate+systemTimeSize])
	return nil
}

// MarshalBinary implements [encoding.BinaryMarshaler]. The result always
// decodes back to r.
func (r Record) MarshalBinary() ([]byte, error) {
	b := make([]byte, Size)
	le := binary.LittleEndian
	le.PutUint32(b[offsetBias:], uint32(r.Bias))
	le.PutUint32(b[offsetStandardBias:], uint32(r.StandardBias))
	le.PutUint32(b[offsetDaylightBias:], uint32(r.DaylightBias))
	encodeSystemTime(b[offsetStandardDate:offsetStandardDate+systemTimeSize], r.StandardDate)
	encodeSystemTime(b[offsetDaylightDate:offsetDaylightDate+systemTimeSize], r.DaylightDate)
	return b, nil
}

// ObservesDaylight reports whether the record defines daylight saving
// transitions at all, which is the case when the standard date month is set.
// The OS treats a zero StandardDate.Month as "no daylight saving time".
func (r Record) ObservesDaylight() bool {
	return r.StandardDate.Month != 0
}

func decodeSystemTime(b []byte) types.SystemTime {
	le := binary.LittleEndian
	return types.SystemTime{
		Year:         le.Uint16(b[0:]),
		Month:        le.Uint16(b[2:]),
		DayOfWeek:    le.Uint16(b[4:]),
		Day:          le.Uint16(b[6:]),
		Hour:         le.Uint16(b[8:]),
		Minute:       le.Uint16(b[10:]),
		Second:       le.Uint16(b[12:]),
		Milliseconds: le.Uint16(b[14:]),
	}
}

func encodeSystemTime(b []byte, t types.SystemTime) {
	le := binary.LittleEndian
	le.PutUint16(b[0:], t.Year)
	le.PutUint16(b[2:], t.Month)
	le.PutUint16(b[4:], t.DayOfWeek)
	le.PutUint16(b[6:], t.Day)
	le.PutUint16(b[8:], t.Hour)
	le.PutUint16(b[10:], t.Minute)
	le.PutUint16(b[12:], t.Second)
	le.PutUint16(b[14:], t.Milliseconds)
}

package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// TimeFormat is the format used for times printed to the user.
const TimeFormat = time.RFC3339Nano

func FormatTime(t time.Time) string {
	return t.Format(TimeFormat)
}

// FormatIndent formats an object into a JSON string indented by two spaces,
// without HTML escapes.
// Context is used to output a log warning if the conversion fails.
func FormatIndent(ctx context.Context, v interface{}) string {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		G(ctx).WithError(err).Warning("could not format value")
		return ""
	}
	return string(bytes.TrimSpace(buf.Bytes()))
}

func encode(v interface{}) ([]byte, error) {
	return encodeBuffer(&bytes.Buffer{}, v)
}

func encodeBuffer(buf *bytes.Buffer, v interface{}) ([]byte, error) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "")

	if err := enc.Encode(v); err != nil {
		err = fmt.Errorf("could not marshall %T to JSON for logging: %w", v, err)
		return nil, err
	}

	// encoder.Encode appends a newline to the end
	return bytes.TrimSpace(buf.Bytes()), nil
}

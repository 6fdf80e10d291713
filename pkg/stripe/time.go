package stripe

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Timestamp is a point in time sent on the wire as seconds since the Unix epoch.
// A JSON null or absent field leaves it zero.
type Timestamp struct {
	time.Time
}

// NewTimestamp converts seconds since the Unix epoch into a Timestamp.
func NewTimestamp(seconds int64) Timestamp {
	return Timestamp{Time: time.Unix(seconds, 0).UTC()}
}

// Unix returns the number of seconds since the Unix epoch, or 0 for a zero Timestamp.
func (t Timestamp) Unix() int64 {
	if t.IsZero() {
		return 0
	}

	return t.Time.Unix()
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*t = Timestamp{}

		return nil
	}

	var seconds json.Number

	err := json.Unmarshal(data, &seconds)
	if err != nil {
		return fmt.Errorf("parsing timestamp %s: %w", data, err)
	}

	value, err := seconds.Int64()
	if err != nil {
		return fmt.Errorf("parsing timestamp %s: %w", data, err)
	}

	*t = NewTimestamp(value)

	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}

	return []byte(strconv.FormatInt(t.Time.Unix(), 10)), nil
}

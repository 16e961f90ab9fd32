package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// HourMinute is an "HH:MM" value. It doubles as a wall-clock time of
// day (lot opening hours, night window bounds) and as a span measured
// in hours and minutes (the billing fraction of a time rate).
type HourMinute struct {
	Hour   int
	Minute int
}

// ParseHourMinute parses "HH:MM".
func ParseHourMinute(s string) (HourMinute, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return HourMinute{}, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return HourMinute{}, fmt.Errorf("invalid time %q: %w", s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return HourMinute{}, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return HourMinute{}, fmt.Errorf("time %q out of range", s)
	}
	return HourMinute{Hour: h, Minute: m}, nil
}

// HourMinuteOf extracts the time of day from an instant.
func HourMinuteOf(t time.Time) HourMinute {
	return HourMinute{Hour: t.Hour(), Minute: t.Minute()}
}

// TotalMinutes converts the value to minutes since midnight, or to a
// span length in minutes when used as a duration.
func (h HourMinute) TotalMinutes() int {
	return h.Hour*60 + h.Minute
}

// IsZero reports whether the value is the unset 00:00.
func (h HourMinute) IsZero() bool {
	return h.Hour == 0 && h.Minute == 0
}

func (h HourMinute) String() string {
	return fmt.Sprintf("%02d:%02d", h.Hour, h.Minute)
}

func (h HourMinute) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h *HourMinute) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseHourMinute(s)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

func (h HourMinute) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(h.String())
}

func (h *HourMinute) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	var s string
	if err := rv.Unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseHourMinute(s)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// NightWindow is a time-of-day range during which a daily rate adds a
// surcharge. Start after End means the window wraps past midnight.
type NightWindow struct {
	Start     HourMinute `bson:"start" json:"start"`
	End       HourMinute `bson:"end" json:"end"`
	Surcharge Decimal    `bson:"surcharge" json:"surcharge"`
}

// Contains reports whether a time of day falls inside the window.
// Boundaries are inclusive. A window with equal start and end is
// degenerate and never matches.
func (w NightWindow) Contains(t HourMinute) bool {
	start := w.Start.TotalMinutes()
	end := w.End.TotalMinutes()
	m := t.TotalMinutes()
	switch {
	case start == end:
		return false
	case start < end:
		return m >= start && m <= end
	default:
		// wraps midnight
		return m >= start || m <= end
	}
}

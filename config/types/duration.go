package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/invopop/jsonschema"
)

// Duration is a wrapper type that parses time duration text.
type Duration struct {
	time.Duration `validate:"required"`
}

// UnmarshalText unmarshalls time duration from text. Besides the Go
// notation ("1h20m") it accepts the human forms "1h 20min", "30min" or "90 sec".
func (d *Duration) UnmarshalText(data []byte) error {
	duration, err := ParseDuration(string(data))
	if err != nil {
		return err
	}
	d.Duration = duration
	return nil
}

// MarshalText is used to serialize the duration back to the config files.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// NewDuration returns Duration wrapper
func NewDuration(duration time.Duration) Duration {
	return Duration{duration}
}

// JSONSchema returns a custom schema to be used for the JSON Schema generation of this type
func (Duration) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Title:       "Duration",
		Description: "Duration expressed in units: [ns, us, ms, s, m, h, d]",
		Examples: []interface{}{
			"1m",
			"300ms",
			"1h 20min",
		},
	}
}

var humanUnits = strings.NewReplacer(
	"hours", "h",
	"hour", "h",
	"hr", "h",
	"minutes", "m",
	"minute", "m",
	"mins", "m",
	"min", "m",
	"seconds", "s",
	"second", "s",
	"secs", "s",
	"sec", "s",
	"msec", "ms",
)

// ParseDuration parses Go durations as well as human written ones
// such as "1h 20min" or "2 days".
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	var total time.Duration
	for _, part := range durationParts(humanUnits.Replace(s)) {
		d, err := parseDurationPart(part)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", s, err)
		}
		total += d
	}
	return total, nil
}

func parseDurationPart(part string) (time.Duration, error) {
	for _, day := range []string{"days", "day", "d"} {
		if n, ok := strings.CutSuffix(part, day); ok {
			var days int64
			if _, err := fmt.Sscanf(n, "%d", &days); err != nil || fmt.Sprint(days) != n {
				return 0, fmt.Errorf("invalid number of days %q", n)
			}
			return time.Duration(days) * 24 * time.Hour, nil //nolint:mnd
		}
	}
	return time.ParseDuration(part)
}

// durationParts splits "1 h 20m" into ["1h", "20m"].
func durationParts(s string) []string {
	fields := strings.Fields(s)
	parts := make([]string, 0, len(fields))
	for i := 0; i < len(fields); i++ {
		part := fields[i]
		if isNumber(part) && i+1 < len(fields) {
			part += fields[i+1]
			i++
		}
		parts = append(parts, part)
	}
	return parts
}

func isNumber(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return s != ""
}

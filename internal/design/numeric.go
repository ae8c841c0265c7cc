package design

import (
	"bytes"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// FlexFloat is a float64 that also accepts quoted numbers in JSON and
// YAML input. Form-style clients frequently submit every field as a
// string, so the boundary coerces rather than rejecting.
type FlexFloat float64

// UnmarshalJSON accepts 300, "300" and null (treated as zero).
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("invalid numeric string %s: %w", data, err)
		}
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid numeric value %q: %w", s, err)
		}
		*f = FlexFloat(v)
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid numeric value %s: %w", data, err)
	}
	*f = FlexFloat(v)
	return nil
}

// UnmarshalYAML accepts scalar numbers and numeric strings.
func (f *FlexFloat) UnmarshalYAML(node *yaml.Node) error {
	if node.Value == "" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(node.Value, 64)
	if err != nil {
		return fmt.Errorf("invalid numeric value %q: %w", node.Value, err)
	}
	*f = FlexFloat(v)
	return nil
}

// Float returns the plain float64 value.
func (f FlexFloat) Float() float64 { return float64(f) }

// Int returns the value truncated to an int.
func (f FlexFloat) Int() int { return int(f) }

// Or returns the value, or def when the field was left at zero.
func (f FlexFloat) Or(def float64) float64 {
	if f == 0 {
		return def
	}
	return float64(f)
}

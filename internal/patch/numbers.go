package patch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Int decodes a JSON number or a numeric string such as "2020". An empty
// string decodes to 0 and null leaves the value untouched.
type Int int

// Float decodes a JSON number or a numeric string such as "4.5".
type Float float64

func (i *Int) UnmarshalJSON(data []byte) error {
	f, ok, err := parseNumber(data)
	if err != nil || !ok {
		return err
	}
	if f != math.Trunc(f) || f > math.MaxInt || f < math.MinInt {
		return fmt.Errorf("valor %s não é um inteiro", data)
	}
	*i = Int(f)
	return nil
}

func (f *Float) UnmarshalJSON(data []byte) error {
	v, ok, err := parseNumber(data)
	if err != nil || !ok {
		return err
	}
	*f = Float(v)
	return nil
}

// IntPtr converts a decoded field for the column type, keeping nil.
func IntPtr(v *Int) *int {
	if v == nil {
		return nil
	}
	out := int(*v)
	return &out
}

func FloatPtr(v *Float) *float64 {
	if v == nil {
		return nil
	}
	out := float64(*v)
	return &out
}

func parseNumber(data []byte) (float64, bool, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return 0, false, nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return 0, false, err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return 0, true, nil
		}
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false, fmt.Errorf("valor %s não é numérico", data)
	}
	return f, true, nil
}

package estimation

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber parses a raw user value of field. Blank values are reported as missing,
// anything that is not a finite number as not numeric.
func ParseNumber(field string, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, NewErrMissing(field)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, NewErrNotNumeric(field, raw)
	}
	return v, nil
}

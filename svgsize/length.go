package svgsize

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// referenceDPI is the CSS reference resolution: 96 device pixels per inch.
const referenceDPI = 96.0

var (
	// ErrNotAbsolute marks lengths that need a layout context to resolve,
	// such as percentages or "auto".
	ErrNotAbsolute = errors.New("length is not absolute")

	// ErrUnsupportedUnit marks lengths with an unknown unit suffix.
	ErrUnsupportedUnit = errors.New("unsupported length unit")
)

// pixels per unit at the reference DPI
var unitScale = map[string]float64{
	"":   1,
	"px": 1,
	"pt": referenceDPI / 72,
	"in": referenceDPI,
	"cm": referenceDPI / 2.54,
	"mm": referenceDPI / 25.4,
	"pc": 16,
	"q":  referenceDPI / 101.6, // quarter-millimeter
}

// ParseLength converts a CSS length literal ("12", "2in", "10mm") to pixels
// at 96 dpi. The value must be a signed decimal number followed by an
// optional alphabetic unit suffix. Percentages and "auto" have no absolute
// pixel value and fail with ErrNotAbsolute.
func ParseLength(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty length")
	}
	if strings.HasSuffix(s, "%") || strings.EqualFold(s, "auto") {
		return 0, fmt.Errorf("%w: %q", ErrNotAbsolute, s)
	}
	num, unit := splitUnit(s)
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid length %q", s)
	}
	scale, known := unitScale[strings.ToLower(unit)]
	if !known {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedUnit, unit)
	}
	return v * scale, nil
}

// splitUnit splits a trailing alphabetic unit suffix from the numeric part.
func splitUnit(s string) (num, unit string) {
	i := len(s)
	for i > 0 {
		c := s[i-1]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			break
		}
		i--
	}
	return s[:i], s[i:]
}

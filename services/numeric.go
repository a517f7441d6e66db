package services

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// ToNumber coerces a quantity or rate cell to a float. Blank, non-numeric
// and non-finite values become 0; the conversion never fails.
func ToNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || isHexLiteral(s) {
		return 0
	}
	f, err := cast.ToFloat64E(s)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// isHexLiteral reports whether s is written in hex notation, which
// strconv accepts as a float but a spreadsheet value never is.
func isHexLiteral(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

package numeric

import (
	stderrors "errors"
	"math"
	"strconv"
	"strings"

	"txtcli/internal/errors"
)

var (
	// ErrEmpty is returned for a line that is blank after trimming
	ErrEmpty = stderrors.New("empty line")
	// ErrInvalid is returned for text that is not a complete number
	ErrInvalid = stderrors.New("not a number")
	// ErrNonFinite is returned for NaN and infinities
	ErrNonFinite = stderrors.New("non-finite value")
	// ErrOutOfRange is returned for values the host numeric type cannot hold
	ErrOutOfRange = stderrors.New("value out of range")
)

// ParseFloat parses one line as a decimal floating-point number.
// Surrounding whitespace is ignored; anything else that does not parse in
// full is a LINE_UNPARSEABLE error.
func ParseFloat(raw string) (float64, error) {
	s, err := prepare(raw)
	if err != nil {
		return 0, err
	}

	if !decimalOnly(s, true) {
		return 0, errors.NewLineUnparseableError(raw, ErrInvalid)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if stderrors.Is(err, strconv.ErrRange) {
			return 0, errors.NewLineUnparseableError(raw, ErrOutOfRange)
		}
		return 0, errors.NewLineUnparseableError(raw, ErrInvalid)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.NewLineUnparseableError(raw, ErrNonFinite)
	}
	return v, nil
}

// ParseInt parses one line as a base-10 signed integer.
func ParseInt(raw string) (int64, error) {
	s, err := prepare(raw)
	if err != nil {
		return 0, err
	}

	if !decimalOnly(s, false) {
		return 0, errors.NewLineUnparseableError(raw, ErrInvalid)
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if stderrors.Is(err, strconv.ErrRange) {
			return 0, errors.NewLineUnparseableError(raw, ErrOutOfRange)
		}
		return 0, errors.NewLineUnparseableError(raw, ErrInvalid)
	}
	return v, nil
}

func prepare(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", errors.NewLineUnparseableError(raw, ErrEmpty)
	}
	return s, nil
}

// decimalOnly rejects the spellings strconv accepts beyond plain decimal
// notation: underscores, hex and other base prefixes, inf and nan.
// Exponents are allowed only for floats.
func decimalOnly(s string, allowFraction bool) bool {
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}

	lower := strings.ToLower(s)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") {
		// let strconv classify these so they surface as ErrNonFinite
		return allowFraction && (lower == "inf" || lower == "infinity" || lower == "nan")
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case allowFraction && (c == '.' || c == 'e' || c == 'E'):
		case allowFraction && (c == '+' || c == '-') && i > 0 && (s[i-1] == 'e' || s[i-1] == 'E'):
		default:
			return false
		}
	}
	return true
}

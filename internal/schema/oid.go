package schema

import "errors"

// OID validation errors.
var (
	// ErrEmptyOID is returned when an empty string is used where an OID is required.
	ErrEmptyOID = errors.New("schema: OID cannot be empty")
	// ErrNotNumericOID is returned when a symbolic name is used where a
	// dot-separated numeric OID is required.
	ErrNotNumericOID = errors.New("schema: not a numeric OID")
)

// IsNumericOID reports whether s looks like a numeric OID, meaning its first
// character is a digit. This is the cheap check used on lookup paths where
// callers may mistakenly pass a symbolic name such as "cn".
func IsNumericOID(s string) bool {
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}

// ValidateOID checks that s is a well-formed dot-separated numeric OID
// (e.g. "2.5.13.2"). Returns nil if valid.
func ValidateOID(s string) error {
	if s == "" {
		return ErrEmptyOID
	}
	if !IsNumericOID(s) {
		return ErrNotNumericOID
	}

	lastDot := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			lastDot = false
		case c == '.':
			if lastDot {
				return ErrNotNumericOID
			}
			lastDot = true
		default:
			return ErrNotNumericOID
		}
	}
	if lastDot {
		return ErrNotNumericOID
	}
	return nil
}

package schema

import (
	"unicode/utf8"

	"github.com/google/uuid"
)

// Syntax represents an LDAP syntax definition.
// Syntaxes define the format and validation rules for attribute values.
type Syntax struct {
	OID         string            // Object Identifier (e.g., "1.3.6.1.4.1.1466.115.121.1.15")
	Description string            // Human-readable description (e.g., "Directory String")
	Validator   func([]byte) bool // Function to validate values against this syntax
}

// Validate checks if the given value conforms to this syntax.
// Returns true if the value is valid or if no validator is defined.
func (s *Syntax) Validate(value []byte) bool {
	if s.Validator == nil {
		return true
	}
	return s.Validator(value)
}

// Common LDAP Syntax OIDs as constants for convenience.
const (
	// SyntaxDirectoryString is the OID for Directory String syntax (UTF-8 string).
	SyntaxDirectoryString = "1.3.6.1.4.1.1466.115.121.1.15"

	// SyntaxDN is the OID for Distinguished Name syntax.
	SyntaxDN = "1.3.6.1.4.1.1466.115.121.1.12"

	// SyntaxInteger is the OID for Integer syntax.
	SyntaxInteger = "1.3.6.1.4.1.1466.115.121.1.27"

	// SyntaxBoolean is the OID for Boolean syntax.
	SyntaxBoolean = "1.3.6.1.4.1.1466.115.121.1.7"

	// SyntaxOctetString is the OID for Octet String syntax (binary data).
	SyntaxOctetString = "1.3.6.1.4.1.1466.115.121.1.40"

	// SyntaxGeneralizedTime is the OID for Generalized Time syntax.
	SyntaxGeneralizedTime = "1.3.6.1.4.1.1466.115.121.1.24"

	// SyntaxOID is the OID for OID syntax.
	SyntaxOID = "1.3.6.1.4.1.1466.115.121.1.38"

	// SyntaxTelephoneNumber is the OID for Telephone Number syntax.
	SyntaxTelephoneNumber = "1.3.6.1.4.1.1466.115.121.1.50"

	// SyntaxIA5String is the OID for IA5 String syntax (ASCII).
	SyntaxIA5String = "1.3.6.1.4.1.1466.115.121.1.26"

	// SyntaxPrintableString is the OID for Printable String syntax.
	SyntaxPrintableString = "1.3.6.1.4.1.1466.115.121.1.44"

	// SyntaxNumericString is the OID for Numeric String syntax.
	SyntaxNumericString = "1.3.6.1.4.1.1466.115.121.1.36"

	// SyntaxBitString is the OID for Bit String syntax.
	SyntaxBitString = "1.3.6.1.4.1.1466.115.121.1.6"

	// SyntaxUUID is the OID for UUID syntax.
	SyntaxUUID = "1.3.6.1.1.16.1"
)

// syntaxValidators maps syntax OIDs to their validator functions. Syntaxes
// not listed here accept any value.
var syntaxValidators = map[string]func([]byte) bool{
	SyntaxDirectoryString: ValidateDirectoryString,
	SyntaxInteger:         ValidateInteger,
	SyntaxBoolean:         ValidateBoolean,
	SyntaxOctetString:     ValidateOctetString,
	SyntaxIA5String:       ValidateIA5String,
	SyntaxPrintableString: ValidatePrintableString,
	SyntaxNumericString:   ValidateNumericString,
	SyntaxTelephoneNumber: ValidateTelephoneNumber,
	SyntaxOID:             ValidateOIDSyntax,
	SyntaxUUID:            ValidateUUID,
	SyntaxBitString:       ValidateBitString,
}

// validatorFor returns the validator for a syntax OID, or nil if the syntax
// has no format constraints.
func validatorFor(oid string) func([]byte) bool {
	return syntaxValidators[oid]
}

// Common syntax validators.

// ValidateDirectoryString validates a Directory String (UTF-8 string).
// Returns true if the value is a non-empty valid UTF-8 string.
func ValidateDirectoryString(value []byte) bool {
	return len(value) > 0 && utf8.Valid(value)
}

// ValidateInteger validates an Integer value.
// Returns true if the value represents a valid integer string.
func ValidateInteger(value []byte) bool {
	if len(value) == 0 {
		return false
	}
	start := 0
	if value[0] == '-' || value[0] == '+' {
		start = 1
		if len(value) == 1 {
			return false
		}
	}
	for i := start; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}

// ValidateBoolean validates a Boolean value.
// Returns true if the value is "TRUE" or "FALSE".
func ValidateBoolean(value []byte) bool {
	s := string(value)
	return s == "TRUE" || s == "FALSE"
}

// ValidateOctetString validates an Octet String (any binary data).
// Always returns true as any byte sequence is valid.
func ValidateOctetString(value []byte) bool {
	return true
}

// ValidateIA5String validates an IA5 String (ASCII).
// Returns true if all bytes are in the ASCII range (0-127).
func ValidateIA5String(value []byte) bool {
	for _, b := range value {
		if b > 127 {
			return false
		}
	}
	return true
}

// ValidatePrintableString validates a Printable String.
// Returns true if all characters are in the printable string character set.
func ValidatePrintableString(value []byte) bool {
	for _, b := range value {
		if !isPrintableChar(b) {
			return false
		}
	}
	return true
}

// isPrintableChar checks if a byte is a valid printable string character.
func isPrintableChar(b byte) bool {
	// A-Z, a-z, 0-9, space, and special characters: '()+,-./:=?
	if b >= 'A' && b <= 'Z' {
		return true
	}
	if b >= 'a' && b <= 'z' {
		return true
	}
	if b >= '0' && b <= '9' {
		return true
	}
	switch b {
	case ' ', '\'', '(', ')', '+', ',', '-', '.', '/', ':', '=', '?':
		return true
	}
	return false
}

// ValidateNumericString validates a Numeric String.
// Returns true if all characters are digits or spaces.
func ValidateNumericString(value []byte) bool {
	for _, b := range value {
		if b != ' ' && (b < '0' || b > '9') {
			return false
		}
	}
	return true
}

// ValidateTelephoneNumber validates a Telephone Number.
// Returns true if the value contains only valid telephone number characters.
func ValidateTelephoneNumber(value []byte) bool {
	if len(value) == 0 {
		return false
	}
	for _, b := range value {
		if !isTelephoneChar(b) {
			return false
		}
	}
	return true
}

// isTelephoneChar checks if a byte is a valid telephone number character.
func isTelephoneChar(b byte) bool {
	if b >= '0' && b <= '9' {
		return true
	}
	switch b {
	case ' ', '-', '(', ')', '+', '.':
		return true
	}
	return false
}

// ValidateOIDSyntax validates an OID value: either a dot-separated numeric
// OID or a descriptor name (leading letter, then letters/digits/hyphens).
func ValidateOIDSyntax(value []byte) bool {
	if len(value) == 0 {
		return false
	}
	if IsNumericOID(string(value)) {
		return ValidateOID(string(value)) == nil
	}
	c := value[0]
	if !(c >= 'a' && c <= 'z') && !(c >= 'A' && c <= 'Z') {
		return false
	}
	for _, b := range value[1:] {
		if (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '-' {
			continue
		}
		return false
	}
	return true
}

// ValidateUUID validates a UUID value in RFC 4122 string form.
func ValidateUUID(value []byte) bool {
	_, err := uuid.Parse(string(value))
	return err == nil
}

// ValidateBitString validates a Bit String value of the form '0101'B.
func ValidateBitString(value []byte) bool {
	if len(value) < 3 {
		return false
	}
	if value[0] != '\'' || value[len(value)-1] != 'B' || value[len(value)-2] != '\'' {
		return false
	}
	for _, b := range value[1 : len(value)-2] {
		if b != '0' && b != '1' {
			return false
		}
	}
	return true
}

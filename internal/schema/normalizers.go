package schema

import "bytes"

// NormalizerFor returns the normalizer implementing the given matching rule.
// Rules without a dedicated implementation fall back to the identity
// normalizer, which leaves values untouched.
func NormalizerFor(mr *MatchingRule) *Normalizer {
	if n, ok := normalizers[mr.Name]; ok {
		return n
	}
	return &Normalizer{Name: mr.Name, Normalize: normalizeIdentity}
}

// normalizers maps matching rule names to their implementations.
var normalizers = map[string]*Normalizer{
	"objectIdentifierMatch":   {Name: "objectIdentifierMatch", Normalize: normalizeCaseIgnore},
	"distinguishedNameMatch":  {Name: "distinguishedNameMatch", Normalize: normalizeCaseIgnore},
	"caseIgnoreMatch":         {Name: "caseIgnoreMatch", Normalize: normalizeCaseIgnore},
	"caseIgnoreOrderingMatch": {Name: "caseIgnoreOrderingMatch", Normalize: normalizeCaseIgnore},
	"caseIgnoreIA5Match":      {Name: "caseIgnoreIA5Match", Normalize: normalizeCaseIgnore},
	"caseExactMatch":          {Name: "caseExactMatch", Normalize: normalizeSpaces},
	"caseExactIA5Match":       {Name: "caseExactIA5Match", Normalize: normalizeSpaces},
	"numericStringMatch":      {Name: "numericStringMatch", Normalize: normalizeNumericString},
	"telephoneNumberMatch":    {Name: "telephoneNumberMatch", Normalize: normalizeTelephoneNumber},
	"UUIDMatch":               {Name: "UUIDMatch", Normalize: normalizeCaseIgnore},
}

// normalizeIdentity returns the value unchanged.
func normalizeIdentity(value []byte) ([]byte, error) {
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// normalizeCaseIgnore lowercases the value and collapses insignificant
// whitespace (RFC 4518 case-ignore string preparation, simplified to ASCII).
func normalizeCaseIgnore(value []byte) ([]byte, error) {
	return collapseSpaces(bytes.ToLower(value)), nil
}

// normalizeSpaces collapses insignificant whitespace but preserves case.
func normalizeSpaces(value []byte) ([]byte, error) {
	return collapseSpaces(value), nil
}

// normalizeNumericString removes all spaces from a numeric string.
func normalizeNumericString(value []byte) ([]byte, error) {
	return stripBytes(value, " "), nil
}

// normalizeTelephoneNumber removes spaces and hyphens from a telephone
// number.
func normalizeTelephoneNumber(value []byte) ([]byte, error) {
	return stripBytes(value, " -"), nil
}

// collapseSpaces trims leading and trailing whitespace and collapses runs of
// internal whitespace into a single space.
func collapseSpaces(value []byte) []byte {
	out := make([]byte, 0, len(value))
	inSpace := false
	for _, c := range value {
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			inSpace = true
			continue
		}
		if inSpace && len(out) > 0 {
			out = append(out, ' ')
		}
		inSpace = false
		out = append(out, c)
	}
	return out
}

package schema

import (
	"bytes"
	"strconv"
	"strings"
)

// ComparatorFor returns the comparator implementing the given matching rule,
// selected by the rule's primary name. Rules without a dedicated
// implementation fall back to exact octet comparison, which is always safe
// for equality checks even when ordering is meaningless.
func ComparatorFor(mr *MatchingRule) *Comparator {
	if cmp, ok := comparators[mr.Name]; ok {
		return cmp
	}
	return &Comparator{Name: mr.Name, Compare: compareOctetString}
}

// comparators maps matching rule names to their implementations.
var comparators = map[string]*Comparator{
	"objectIdentifierMatch":        {Name: "objectIdentifierMatch", Compare: compareCaseIgnore},
	"distinguishedNameMatch":       {Name: "distinguishedNameMatch", Compare: compareCaseIgnore},
	"caseIgnoreMatch":              {Name: "caseIgnoreMatch", Compare: compareCaseIgnore},
	"caseIgnoreOrderingMatch":      {Name: "caseIgnoreOrderingMatch", Compare: compareCaseIgnore},
	"caseExactMatch":               {Name: "caseExactMatch", Compare: compareOctetString},
	"caseExactOrderingMatch":       {Name: "caseExactOrderingMatch", Compare: compareOctetString},
	"caseIgnoreIA5Match":           {Name: "caseIgnoreIA5Match", Compare: compareCaseIgnore},
	"caseExactIA5Match":            {Name: "caseExactIA5Match", Compare: compareOctetString},
	"booleanMatch":                 {Name: "booleanMatch", Compare: compareOctetString},
	"integerMatch":                 {Name: "integerMatch", Compare: compareInteger},
	"integerOrderingMatch":         {Name: "integerOrderingMatch", Compare: compareInteger},
	"bitStringMatch":               {Name: "bitStringMatch", Compare: compareOctetString},
	"octetStringMatch":             {Name: "octetStringMatch", Compare: compareOctetString},
	"octetStringOrderingMatch":     {Name: "octetStringOrderingMatch", Compare: compareOctetString},
	"numericStringMatch":           {Name: "numericStringMatch", Compare: compareNumericString},
	"telephoneNumberMatch":         {Name: "telephoneNumberMatch", Compare: compareTelephoneNumber},
	"generalizedTimeMatch":         {Name: "generalizedTimeMatch", Compare: compareOctetString},
	"generalizedTimeOrderingMatch": {Name: "generalizedTimeOrderingMatch", Compare: compareOctetString},
	"uniqueMemberMatch":            {Name: "uniqueMemberMatch", Compare: compareCaseIgnore},
	"UUIDMatch":                    {Name: "UUIDMatch", Compare: compareCaseIgnore},
	"UUIDOrderingMatch":            {Name: "UUIDOrderingMatch", Compare: compareCaseIgnore},
}

// compareCaseIgnore performs case-insensitive comparison between two values.
// This is the default behavior for string attributes in LDAP.
func compareCaseIgnore(a, b []byte) int {
	if bytes.EqualFold(a, b) {
		return 0
	}
	return bytes.Compare(bytes.ToLower(a), bytes.ToLower(b))
}

// compareOctetString performs exact (case-sensitive) octet comparison.
func compareOctetString(a, b []byte) int {
	return bytes.Compare(a, b)
}

// compareInteger compares two values numerically. Values that do not parse
// as integers fall back to octet comparison so the result is still total.
func compareInteger(a, b []byte) int {
	ai, aerr := strconv.ParseInt(string(a), 10, 64)
	bi, berr := strconv.ParseInt(string(b), 10, 64)
	if aerr != nil || berr != nil {
		return bytes.Compare(a, b)
	}
	switch {
	case ai < bi:
		return -1
	case ai > bi:
		return 1
	default:
		return 0
	}
}

// compareNumericString compares numeric strings ignoring spaces (RFC 4518).
func compareNumericString(a, b []byte) int {
	return bytes.Compare(stripBytes(a, " "), stripBytes(b, " "))
}

// compareTelephoneNumber compares telephone numbers ignoring spaces and
// hyphens.
func compareTelephoneNumber(a, b []byte) int {
	return bytes.Compare(stripBytes(a, " -"), stripBytes(b, " -"))
}

// stripBytes removes every byte contained in cutset from value.
func stripBytes(value []byte, cutset string) []byte {
	out := make([]byte, 0, len(value))
	for _, c := range value {
		if strings.IndexByte(cutset, c) == -1 {
			out = append(out, c)
		}
	}
	return out
}

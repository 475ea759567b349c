package schema

// CompareFunc is an ordering/equality operation over two attribute values.
// It returns a negative number if a sorts before b, zero if the values are
// equivalent under the rule, and a positive number otherwise.
type CompareFunc func(a, b []byte) int

// Comparator is the comparison capability contributed by a matching rule.
// It is stored opaquely by the registries; nothing inspects it beyond
// calling Compare.
type Comparator struct {
	Name    string // matching rule name the comparator implements
	Compare CompareFunc
}

// NormalizeFunc canonicalizes an attribute value before comparison or
// indexing.
type NormalizeFunc func(value []byte) ([]byte, error)

// Normalizer is the canonicalization capability contributed by a matching
// rule. Like Comparator it is stored opaquely by the registries.
type Normalizer struct {
	Name      string
	Normalize NormalizeFunc
}

// MatchingRule defines how attribute values are compared for equality,
// ordering, and substring matching operations.
type MatchingRule struct {
	OID         string
	Name        string   // Primary name (e.g., "caseIgnoreMatch")
	Names       []string // Aliases
	Description string
	Syntax      string // Syntax OID this rule applies to
	Obsolete    bool
}

// NewMatchingRule creates a new MatchingRule with the given OID and name.
func NewMatchingRule(oid, name string) *MatchingRule {
	return &MatchingRule{
		OID:   oid,
		Name:  name,
		Names: []string{name},
	}
}

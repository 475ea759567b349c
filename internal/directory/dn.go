package directory

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oba-ldap/sema/internal/registry"
)

// DN parsing errors.
var (
	ErrEmptyDN           = errors.New("directory: DN cannot be empty")
	ErrInvalidRDN        = errors.New("directory: invalid RDN format")
	ErrEmptyRDNComponent = errors.New("directory: empty RDN component")
)

// caseIgnoreMatchOID is the matching rule whose normalizer canonicalizes
// directory string RDN values.
const caseIgnoreMatchOID = "2.5.13.2"

// DN is a distinguished name value. The zero DN is the empty name used by
// anonymous principals. A DN starts out as a raw parsed name; normalizing
// it against a schema view with WithSchema yields a schema-aware copy.
type DN struct {
	name        string   // name as supplied
	components  []string // RDNs in string order (leaf first)
	normName    string   // schema-normalized form, set by WithSchema
	schemaAware bool
}

// ParseDN parses a Distinguished Name string into a DN value. Escaped
// commas inside RDN values are honored.
//
// Example:
//
//	directory.ParseDN("uid=alice,ou=users,dc=example,dc=com")
func ParseDN(s string) (DN, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return DN{}, ErrEmptyDN
	}

	components := splitDN(trimmed)
	if len(components) == 0 {
		return DN{}, ErrEmptyDN
	}
	for _, comp := range components {
		if err := checkRDN(comp); err != nil {
			return DN{}, err
		}
	}

	return DN{name: trimmed, components: components}, nil
}

// String returns the DN as supplied.
func (d DN) String() string {
	return d.name
}

// NormName returns the schema-normalized form of the DN, or the raw form
// if the DN has not been normalized yet.
func (d DN) NormName() string {
	if d.schemaAware {
		return d.normName
	}
	return d.name
}

// IsEmpty reports whether this is the empty (anonymous) DN.
func (d DN) IsEmpty() bool {
	return len(d.components) == 0
}

// IsSchemaAware reports whether the DN has been validated and normalized
// against a schema view.
func (d DN) IsSchemaAware() bool {
	return d.schemaAware
}

// Components returns the RDNs in string order (leaf first).
func (d DN) Components() []string {
	out := make([]string, len(d.components))
	copy(out, d.components)
	return out
}

// WithSchema returns a copy of the DN validated and normalized against the
// given schema view: attribute types are lowercased and values are run
// through the case-ignore normalizer resolved from the manager's registry.
// The copy is marked schema aware. The receiver is unchanged.
func (d DN) WithSchema(mgr *registry.Manager) (DN, error) {
	if mgr == nil {
		return DN{}, errors.New("directory: schema manager cannot be nil")
	}
	if d.IsEmpty() {
		return DN{}, ErrEmptyDN
	}

	norm, err := mgr.Normalizers().Lookup(caseIgnoreMatchOID)
	if err != nil {
		return DN{}, fmt.Errorf("directory: schema view has no case-ignore rule: %w", err)
	}

	normalized := make([]string, len(d.components))
	for i, comp := range d.components {
		eq := strings.Index(comp, "=")
		attrType := strings.ToLower(strings.TrimSpace(comp[:eq]))
		value, err := norm.Normalize([]byte(strings.TrimSpace(comp[eq+1:])))
		if err != nil {
			return DN{}, fmt.Errorf("directory: normalizing %q: %w", comp, err)
		}
		normalized[i] = attrType + "=" + string(value)
	}

	return DN{
		name:        d.name,
		components:  d.components,
		normName:    strings.Join(normalized, ","),
		schemaAware: true,
	}, nil
}

// splitDN splits a DN into RDN components, honoring backslash escapes.
func splitDN(dn string) []string {
	var components []string
	var current strings.Builder
	escaped := false

	for i := 0; i < len(dn); i++ {
		c := dn[i]

		if escaped {
			current.WriteByte(c)
			escaped = false
			continue
		}

		if c == '\\' {
			current.WriteByte(c)
			escaped = true
			continue
		}

		if c == ',' {
			comp := strings.TrimSpace(current.String())
			if comp != "" {
				components = append(components, comp)
			}
			current.Reset()
			continue
		}

		current.WriteByte(c)
	}

	comp := strings.TrimSpace(current.String())
	if comp != "" {
		components = append(components, comp)
	}

	return components
}

// checkRDN validates that an RDN component has an attribute type, an equals
// sign and a value.
func checkRDN(rdn string) error {
	if rdn == "" {
		return ErrEmptyRDNComponent
	}
	eq := strings.Index(rdn, "=")
	if eq <= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidRDN, rdn)
	}
	if strings.TrimSpace(rdn[eq+1:]) == "" {
		return fmt.Errorf("%w: %q", ErrInvalidRDN, rdn)
	}
	return nil
}

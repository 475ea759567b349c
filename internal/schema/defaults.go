package schema

// Default LDAP schema definitions for matching rules and syntaxes.
// These are based on RFC 4512, RFC 4517, and common LDAP implementations,
// grouped by the schema that contributes them so the registries can report
// provenance.

// Definition is a raw schema element definition together with the name of
// the schema that contributed it.
type Definition struct {
	Schema string // contributing schema name (e.g., "system")
	Text   string // RFC 4512 definition text
}

// systemMatchingRules contains the X.500 matching rules every server ships
// with (RFC 4517).
var systemMatchingRules = []string{
	`( 2.5.13.0 NAME 'objectIdentifierMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.38 )`,
	`( 2.5.13.1 NAME 'distinguishedNameMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.12 )`,
	`( 2.5.13.2 NAME 'caseIgnoreMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )`,
	`( 2.5.13.3 NAME 'caseIgnoreOrderingMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )`,
	`( 2.5.13.5 NAME 'caseExactMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )`,
	`( 2.5.13.6 NAME 'caseExactOrderingMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )`,
	`( 2.5.13.8 NAME 'numericStringMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.36 )`,
	`( 2.5.13.13 NAME 'booleanMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.7 )`,
	`( 2.5.13.14 NAME 'integerMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.27 )`,
	`( 2.5.13.15 NAME 'integerOrderingMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.27 )`,
	`( 2.5.13.16 NAME 'bitStringMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.6 )`,
	`( 2.5.13.17 NAME 'octetStringMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.40 )`,
	`( 2.5.13.18 NAME 'octetStringOrderingMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.40 )`,
	`( 2.5.13.27 NAME 'generalizedTimeMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.24 )`,
	`( 2.5.13.28 NAME 'generalizedTimeOrderingMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.24 )`,
	`( 1.3.6.1.1.16.2 NAME 'UUIDMatch' SYNTAX 1.3.6.1.1.16.1 )`,
	`( 1.3.6.1.1.16.3 NAME 'UUIDOrderingMatch' SYNTAX 1.3.6.1.1.16.1 )`,
}

// coreMatchingRules contains matching rules from the core application
// schema (RFC 4519 territory).
var coreMatchingRules = []string{
	`( 2.5.13.20 NAME 'telephoneNumberMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.50 )`,
	`( 2.5.13.23 NAME 'uniqueMemberMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.34 )`,
}

// cosineMatchingRules contains the IA5 matching rules contributed by the
// cosine/inetOrgPerson schema family.
var cosineMatchingRules = []string{
	`( 1.3.6.1.4.1.1466.109.114.1 NAME 'caseExactIA5Match' SYNTAX 1.3.6.1.4.1.1466.115.121.1.26 )`,
	`( 1.3.6.1.4.1.1466.109.114.2 NAME 'caseIgnoreIA5Match' SYNTAX 1.3.6.1.4.1.1466.115.121.1.26 )`,
}

// defaultSyntaxes contains the standard LDAP syntax definitions.
var defaultSyntaxes = []string{
	`( 1.3.6.1.4.1.1466.115.121.1.6 DESC 'Bit String' )`,
	`( 1.3.6.1.4.1.1466.115.121.1.7 DESC 'Boolean' )`,
	`( 1.3.6.1.4.1.1466.115.121.1.12 DESC 'DN' )`,
	`( 1.3.6.1.4.1.1466.115.121.1.15 DESC 'Directory String' )`,
	`( 1.3.6.1.4.1.1466.115.121.1.24 DESC 'Generalized Time' )`,
	`( 1.3.6.1.4.1.1466.115.121.1.26 DESC 'IA5 String' )`,
	`( 1.3.6.1.4.1.1466.115.121.1.27 DESC 'INTEGER' )`,
	`( 1.3.6.1.4.1.1466.115.121.1.34 DESC 'Name And Optional UID' )`,
	`( 1.3.6.1.4.1.1466.115.121.1.36 DESC 'Numeric String' )`,
	`( 1.3.6.1.4.1.1466.115.121.1.38 DESC 'OID' )`,
	`( 1.3.6.1.4.1.1466.115.121.1.40 DESC 'Octet String' )`,
	`( 1.3.6.1.4.1.1466.115.121.1.44 DESC 'Printable String' )`,
	`( 1.3.6.1.4.1.1466.115.121.1.50 DESC 'Telephone Number' )`,
	`( 1.3.6.1.1.16.1 DESC 'UUID' )`,
}

// DefaultMatchingRuleDefinitions returns the built-in matching rule
// definitions with their contributing schema names. This is the static
// source the bootstrap registries are built from.
func DefaultMatchingRuleDefinitions() []Definition {
	defs := make([]Definition, 0, len(systemMatchingRules)+len(coreMatchingRules)+len(cosineMatchingRules))
	for _, text := range systemMatchingRules {
		defs = append(defs, Definition{Schema: "system", Text: text})
	}
	for _, text := range coreMatchingRules {
		defs = append(defs, Definition{Schema: "core", Text: text})
	}
	for _, text := range cosineMatchingRules {
		defs = append(defs, Definition{Schema: "cosine", Text: text})
	}
	return defs
}

// SyntaxFor returns the built-in syntax definition for the given OID, or
// nil if the syntax is unknown.
func SyntaxFor(oid string) *Syntax {
	return builtinSyntaxes[oid]
}

// builtinSyntaxes is the parsed form of defaultSyntaxes, indexed by OID.
var builtinSyntaxes = func() map[string]*Syntax {
	m := make(map[string]*Syntax, len(defaultSyntaxes))
	for _, def := range defaultSyntaxes {
		syn, err := ParseSyntax(def)
		if err != nil {
			panic("schema: bad built-in syntax definition: " + def)
		}
		m[syn.OID] = syn
	}
	return m
}()

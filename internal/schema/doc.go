// Package schema provides LDAP schema element definitions: matching rules
// with their value comparators and normalizers, syntaxes with value
// validators, and the RFC 4512 definition parser that feeds the registries.
//
// # Overview
//
// Every schema element is addressed by a numeric OID. A matching rule binds
// an OID to the behavior used when two attribute values are compared:
//
//	mr, err := schema.ParseMatchingRule(`( 2.5.13.2 NAME 'caseIgnoreMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )`)
//	cmp := schema.ComparatorFor(mr)
//	cmp.Compare([]byte("Alice"), []byte("alice")) // 0
//
// The built-in definitions in defaults.go form the bootstrap set that is
// always available before any runtime schema loading; each definition carries
// the name of the schema that contributed it (core, system, cosine).
//
// # Syntaxes
//
// Syntax definitions validate value format independent of comparison:
//
//	syn := schema.SyntaxFor(schema.SyntaxInteger)
//	syn.Validate([]byte("-42")) // true
//
// The registry layers that resolve these elements at runtime live in
// internal/registry.
package schema

// Package directory provides the identity values the directory core hands
// to authentication and authorization layers: distinguished names that can
// be normalized against a schema view, and the authenticated principal
// bound to one.
//
// A DN becomes schema aware by normalizing it against a registry.Manager:
//
//	dn, _ := directory.ParseDN("UID=Alice, OU=Users, DC=Example, DC=Com")
//	dn, err := dn.WithSchema(mgr)
//	dn.NormName() // "uid=alice,ou=users,dc=example,dc=com"
//
// Principals require a schema-aware DN at construction; an unbound name is
// rejected outright rather than carried around half-validated.
package directory

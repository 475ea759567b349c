// Package registry implements the layered schema-element registries that
// resolve comparison and normalization behavior for attribute types by OID.
//
// # Layering
//
// Each element kind has two layers. The bootstrap layer is an immutable
// catalog built once from the built-in schema definitions; it needs no
// locking and may be shared by any number of registries. The dynamic layer
// sits on top and holds elements registered at runtime (administratively
// added schema); lookups resolve against the dynamic layer first and fall
// back to the bootstrap on a miss.
//
//	boot := registry.NewComparatorBootstrap(entries)
//	reg, err := registry.NewComparatorRegistry(boot, logger)
//	if err := reg.Register("nis", "1.3.6.1.1.1.0.0", cmp); err != nil { ... }
//	cmp, err := reg.Lookup("2.5.13.2") // bootstrap hit
//
// An OID may exist in at most one layer: Register fails if the OID is
// already present in either, so a runtime registration can never shadow a
// bootstrap element and lookups stay deterministic.
//
// # Manager
//
// Manager owns a bootstrap source plus one dynamic registry per element
// kind (comparators and normalizers) and carries the schema-loading path
// that feeds them from LDIF schema entries. Construct one Manager per
// independent schema view; nothing in this package is process-global.
package registry

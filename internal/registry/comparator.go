package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/oba-ldap/sema/internal/logging"
	"github.com/oba-ldap/sema/internal/schema"
)

// ComparatorEntry is one (schema, OID, comparator) binding used to build a
// bootstrap catalog.
type ComparatorEntry struct {
	Schema     string
	OID        string
	Comparator *schema.Comparator
}

// ComparatorBootstrap is the immutable, preloaded comparator catalog.
// It is fixed at construction and therefore safe for unrestricted
// concurrent reads. Registries hold it by reference; one bootstrap may back
// any number of registries and outlives all of them.
type ComparatorBootstrap struct {
	comparators map[string]*schema.Comparator
	oidToSchema map[string]string
}

// NewComparatorBootstrap builds an immutable bootstrap catalog from the
// given entries. Later entries for a duplicate OID are ignored; the first
// binding wins.
func NewComparatorBootstrap(entries []ComparatorEntry) *ComparatorBootstrap {
	b := &ComparatorBootstrap{
		comparators: make(map[string]*schema.Comparator, len(entries)),
		oidToSchema: make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		if _, ok := b.comparators[e.OID]; ok {
			continue
		}
		b.comparators[e.OID] = e.Comparator
		b.oidToSchema[e.OID] = e.Schema
	}
	return b
}

// Has reports whether the bootstrap catalog contains the OID.
func (b *ComparatorBootstrap) Has(oid string) bool {
	_, ok := b.comparators[oid]
	return ok
}

// Lookup returns the comparator registered for the OID.
func (b *ComparatorBootstrap) Lookup(oid string) (*schema.Comparator, error) {
	cmp, ok := b.comparators[oid]
	if !ok {
		return nil, fmt.Errorf("%w: comparator %q", ErrNotFound, oid)
	}
	return cmp, nil
}

// SchemaName returns the name of the schema that contributed the OID.
func (b *ComparatorBootstrap) SchemaName(oid string) (string, error) {
	name, ok := b.oidToSchema[oid]
	if !ok {
		return "", fmt.Errorf("%w: comparator %q", ErrNotFound, oid)
	}
	return name, nil
}

// OIDs returns the sorted OIDs in the bootstrap catalog.
func (b *ComparatorBootstrap) OIDs() []string {
	oids := make([]string, 0, len(b.comparators))
	for oid := range b.comparators {
		oids = append(oids, oid)
	}
	sort.Strings(oids)
	return oids
}

// ComparatorRegistry is the dynamic comparator layer. It holds
// runtime-registered comparators and delegates to its bootstrap catalog on
// a miss. Safe for concurrent use: reads take a shared lock, Register takes
// the exclusive lock for the duration of the existence check plus insert,
// so readers observe either the pre- or post-registration state.
type ComparatorRegistry struct {
	mu          sync.RWMutex
	comparators map[string]*schema.Comparator
	oidToSchema map[string]string
	bootstrap   *ComparatorBootstrap
	log         logging.Logger
}

// NewComparatorRegistry creates a dynamic registry layered over bootstrap.
// The bootstrap reference is shared, not owned. A nil bootstrap is a
// configuration fault and fails with ErrNilBootstrap.
func NewComparatorRegistry(bootstrap *ComparatorBootstrap, log logging.Logger) (*ComparatorRegistry, error) {
	if bootstrap == nil {
		return nil, ErrNilBootstrap
	}
	if log == nil {
		log = logging.NewNop()
	}
	return &ComparatorRegistry{
		comparators: make(map[string]*schema.Comparator),
		oidToSchema: make(map[string]string),
		bootstrap:   bootstrap,
		log:         log,
	}, nil
}

// Register binds a comparator to an OID on behalf of the named schema.
// It fails with ErrAlreadyRegistered if the OID exists in either layer;
// the registry is left unchanged on failure.
func (r *ComparatorRegistry) Register(schemaName, oid string, cmp *schema.Comparator) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.comparators[oid]; ok || r.bootstrap.Has(oid) {
		return fmt.Errorf("%w: comparator %q", ErrAlreadyRegistered, oid)
	}

	r.oidToSchema[oid] = schemaName
	r.comparators[oid] = cmp
	r.log.Debug("registered comparator", "oid", oid, "rule", cmp.Name, "schema", schemaName)
	return nil
}

// Lookup returns the comparator for the OID, resolving the dynamic layer
// first and the bootstrap catalog second.
func (r *ComparatorRegistry) Lookup(oid string) (*schema.Comparator, error) {
	r.mu.RLock()
	cmp, ok := r.comparators[oid]
	r.mu.RUnlock()
	if ok {
		return cmp, nil
	}
	return r.bootstrap.Lookup(oid)
}

// Has reports whether the OID is present in either layer. Pure existence
// check with no side effects.
func (r *ComparatorRegistry) Has(oid string) bool {
	r.mu.RLock()
	_, ok := r.comparators[oid]
	r.mu.RUnlock()
	return ok || r.bootstrap.Has(oid)
}

// SchemaName returns the name of the schema that contributed the OID.
// The argument must be a numeric OID; symbolic names fail with
// ErrNotNumericOID.
func (r *ComparatorRegistry) SchemaName(oid string) (string, error) {
	if !schema.IsNumericOID(oid) {
		return "", fmt.Errorf("%w: %q", ErrNotNumericOID, oid)
	}

	r.mu.RLock()
	name, ok := r.oidToSchema[oid]
	r.mu.RUnlock()
	if ok {
		return name, nil
	}
	return r.bootstrap.SchemaName(oid)
}

// OIDs returns the sorted union of OIDs across both layers.
func (r *ComparatorRegistry) OIDs() []string {
	oids := r.bootstrap.OIDs()
	r.mu.RLock()
	for oid := range r.comparators {
		oids = append(oids, oid)
	}
	r.mu.RUnlock()
	sort.Strings(oids)
	return oids
}

package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/oba-ldap/sema/internal/logging"
	"github.com/oba-ldap/sema/internal/schema"
)

// NormalizerEntry is one (schema, OID, normalizer) binding used to build a
// bootstrap catalog.
type NormalizerEntry struct {
	Schema     string
	OID        string
	Normalizer *schema.Normalizer
}

// NormalizerBootstrap is the immutable, preloaded normalizer catalog,
// the normalizer counterpart of ComparatorBootstrap.
type NormalizerBootstrap struct {
	normalizers map[string]*schema.Normalizer
	oidToSchema map[string]string
}

// NewNormalizerBootstrap builds an immutable bootstrap catalog from the
// given entries. Later entries for a duplicate OID are ignored.
func NewNormalizerBootstrap(entries []NormalizerEntry) *NormalizerBootstrap {
	b := &NormalizerBootstrap{
		normalizers: make(map[string]*schema.Normalizer, len(entries)),
		oidToSchema: make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		if _, ok := b.normalizers[e.OID]; ok {
			continue
		}
		b.normalizers[e.OID] = e.Normalizer
		b.oidToSchema[e.OID] = e.Schema
	}
	return b
}

// Has reports whether the bootstrap catalog contains the OID.
func (b *NormalizerBootstrap) Has(oid string) bool {
	_, ok := b.normalizers[oid]
	return ok
}

// Lookup returns the normalizer registered for the OID.
func (b *NormalizerBootstrap) Lookup(oid string) (*schema.Normalizer, error) {
	n, ok := b.normalizers[oid]
	if !ok {
		return nil, fmt.Errorf("%w: normalizer %q", ErrNotFound, oid)
	}
	return n, nil
}

// SchemaName returns the name of the schema that contributed the OID.
func (b *NormalizerBootstrap) SchemaName(oid string) (string, error) {
	name, ok := b.oidToSchema[oid]
	if !ok {
		return "", fmt.Errorf("%w: normalizer %q", ErrNotFound, oid)
	}
	return name, nil
}

// OIDs returns the sorted OIDs in the bootstrap catalog.
func (b *NormalizerBootstrap) OIDs() []string {
	oids := make([]string, 0, len(b.normalizers))
	for oid := range b.normalizers {
		oids = append(oids, oid)
	}
	sort.Strings(oids)
	return oids
}

// NormalizerRegistry is the dynamic normalizer layer over a
// NormalizerBootstrap, with the same layering and concurrency contract as
// ComparatorRegistry.
type NormalizerRegistry struct {
	mu          sync.RWMutex
	normalizers map[string]*schema.Normalizer
	oidToSchema map[string]string
	bootstrap   *NormalizerBootstrap
	log         logging.Logger
}

// NewNormalizerRegistry creates a dynamic registry layered over bootstrap.
// A nil bootstrap fails with ErrNilBootstrap.
func NewNormalizerRegistry(bootstrap *NormalizerBootstrap, log logging.Logger) (*NormalizerRegistry, error) {
	if bootstrap == nil {
		return nil, ErrNilBootstrap
	}
	if log == nil {
		log = logging.NewNop()
	}
	return &NormalizerRegistry{
		normalizers: make(map[string]*schema.Normalizer),
		oidToSchema: make(map[string]string),
		bootstrap:   bootstrap,
		log:         log,
	}, nil
}

// Register binds a normalizer to an OID on behalf of the named schema.
// It fails with ErrAlreadyRegistered if the OID exists in either layer;
// the registry is left unchanged on failure.
func (r *NormalizerRegistry) Register(schemaName, oid string, n *schema.Normalizer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.normalizers[oid]; ok || r.bootstrap.Has(oid) {
		return fmt.Errorf("%w: normalizer %q", ErrAlreadyRegistered, oid)
	}

	r.oidToSchema[oid] = schemaName
	r.normalizers[oid] = n
	r.log.Debug("registered normalizer", "oid", oid, "rule", n.Name, "schema", schemaName)
	return nil
}

// Lookup returns the normalizer for the OID, dynamic layer first.
func (r *NormalizerRegistry) Lookup(oid string) (*schema.Normalizer, error) {
	r.mu.RLock()
	n, ok := r.normalizers[oid]
	r.mu.RUnlock()
	if ok {
		return n, nil
	}
	return r.bootstrap.Lookup(oid)
}

// Has reports whether the OID is present in either layer.
func (r *NormalizerRegistry) Has(oid string) bool {
	r.mu.RLock()
	_, ok := r.normalizers[oid]
	r.mu.RUnlock()
	return ok || r.bootstrap.Has(oid)
}

// SchemaName returns the name of the schema that contributed the OID.
// Symbolic names fail with ErrNotNumericOID.
func (r *NormalizerRegistry) SchemaName(oid string) (string, error) {
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
func (r *NormalizerRegistry) OIDs() []string {
	oids := r.bootstrap.OIDs()
	r.mu.RLock()
	for oid := range r.normalizers {
		oids = append(oids, oid)
	}
	r.mu.RUnlock()
	sort.Strings(oids)
	return oids
}

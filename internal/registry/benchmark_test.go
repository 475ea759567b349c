package registry

import (
	"fmt"
	"testing"

	"github.com/oba-ldap/sema/internal/schema"
)

// BenchmarkBootstrapLookup benchmarks a lookup resolved by the bootstrap
// layer.
func BenchmarkBootstrapLookup(b *testing.B) {
	mgr, err := NewManager(nil)
	if err != nil {
		b.Fatalf("failed to create manager: %v", err)
	}
	reg := mgr.Comparators()
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = reg.Lookup("2.5.13.2")
	}
}

// BenchmarkDynamicLookup benchmarks a lookup resolved by the dynamic layer.
func BenchmarkDynamicLookup(b *testing.B) {
	mgr, err := NewManager(nil)
	if err != nil {
		b.Fatalf("failed to create manager: %v", err)
	}
	reg := mgr.Comparators()
	cmp := &schema.Comparator{Name: "benchMatch", Compare: func(x, y []byte) int { return 0 }}
	if err := reg.Register("bench", "1.3.6.1.4.1.99999.1", cmp); err != nil {
		b.Fatalf("failed to register: %v", err)
	}
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = reg.Lookup("1.3.6.1.4.1.99999.1")
	}
}

// BenchmarkLookupMiss benchmarks a lookup that falls through both layers.
func BenchmarkLookupMiss(b *testing.B) {
	mgr, err := NewManager(nil)
	if err != nil {
		b.Fatalf("failed to create manager: %v", err)
	}
	reg := mgr.Comparators()
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = reg.Lookup("1.2.3.4.5.6.7")
	}
}

// BenchmarkRegister benchmarks dynamic registration of distinct OIDs.
func BenchmarkRegister(b *testing.B) {
	mgr, err := NewManager(nil)
	if err != nil {
		b.Fatalf("failed to create manager: %v", err)
	}
	reg := mgr.Comparators()
	cmp := &schema.Comparator{Name: "benchMatch", Compare: func(x, y []byte) int { return 0 }}
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = reg.Register("bench", fmt.Sprintf("1.3.6.1.4.1.99999.%d", i), cmp)
	}
}

// BenchmarkSchemaName benchmarks provenance resolution.
func BenchmarkSchemaName(b *testing.B) {
	mgr, err := NewManager(nil)
	if err != nil {
		b.Fatalf("failed to create manager: %v", err)
	}
	reg := mgr.Comparators()
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = reg.SchemaName("2.5.13.2")
	}
}

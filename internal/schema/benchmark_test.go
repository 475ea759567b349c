package schema

import "testing"

// BenchmarkCaseIgnoreCompare benchmarks the case-ignore comparator on
// equal-modulo-case values.
func BenchmarkCaseIgnoreCompare(b *testing.B) {
	cmp := comparators["caseIgnoreMatch"]
	x := []byte("Alice Adams")
	y := []byte("ALICE ADAMS")
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = cmp.Compare(x, y)
	}
}

// BenchmarkCaseIgnoreNormalize benchmarks case-ignore normalization.
func BenchmarkCaseIgnoreNormalize(b *testing.B) {
	norm := normalizers["caseIgnoreMatch"]
	value := []byte("  Alice   ADAMS  ")
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = norm.Normalize(value)
	}
}

// BenchmarkParseMatchingRule benchmarks matching rule definition parsing.
func BenchmarkParseMatchingRule(b *testing.B) {
	def := `( 2.5.13.2 NAME 'caseIgnoreMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )`
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = ParseMatchingRule(def)
	}
}

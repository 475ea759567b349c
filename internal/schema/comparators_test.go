package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparatorForKnownRule(t *testing.T) {
	mr := NewMatchingRule("2.5.13.2", "caseIgnoreMatch")
	cmp := ComparatorFor(mr)
	require.NotNil(t, cmp)
	assert.Equal(t, "caseIgnoreMatch", cmp.Name)
	assert.Zero(t, cmp.Compare([]byte("Alice"), []byte("alice")))
}

func TestComparatorForUnknownRuleFallsBack(t *testing.T) {
	mr := NewMatchingRule("1.3.6.1.1.1.30", "nisNetgroupTripleMatch")
	cmp := ComparatorFor(mr)
	require.NotNil(t, cmp)
	assert.Equal(t, "nisNetgroupTripleMatch", cmp.Name)
	assert.Zero(t, cmp.Compare([]byte("x"), []byte("x")))
	assert.NotZero(t, cmp.Compare([]byte("x"), []byte("X")))
}

func TestCompareCaseIgnore(t *testing.T) {
	tests := []struct {
		a, b string
		want int // sign only
	}{
		{"alice", "ALICE", 0},
		{"alice", "alice", 0},
		{"alice", "bob", -1},
		{"Bob", "alice", 1},
	}

	for _, tt := range tests {
		got := compareCaseIgnore([]byte(tt.a), []byte(tt.b))
		assert.Equal(t, tt.want, sign(got), "compareCaseIgnore(%q, %q)", tt.a, tt.b)
	}
}

func TestCompareInteger(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2", "10", -1},
		{"10", "2", 1},
		{"-3", "3", -1},
		{"42", "42", 0},
		{"+7", "7", 0},
	}

	for _, tt := range tests {
		got := compareInteger([]byte(tt.a), []byte(tt.b))
		assert.Equal(t, tt.want, sign(got), "compareInteger(%q, %q)", tt.a, tt.b)
	}
}

func TestCompareIntegerNonNumericFallsBack(t *testing.T) {
	assert.Zero(t, compareInteger([]byte("x"), []byte("x")))
	assert.NotZero(t, compareInteger([]byte("x"), []byte("y")))
}

func TestCompareNumericString(t *testing.T) {
	assert.Zero(t, compareNumericString([]byte("123 456"), []byte("123456")))
	assert.NotZero(t, compareNumericString([]byte("123"), []byte("124")))
}

func TestCompareTelephoneNumber(t *testing.T) {
	assert.Zero(t, compareTelephoneNumber([]byte("+1 555-0100"), []byte("+15550100")))
	assert.NotZero(t, compareTelephoneNumber([]byte("+15550100"), []byte("+15550101")))
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

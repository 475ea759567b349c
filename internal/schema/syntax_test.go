package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDirectoryString(t *testing.T) {
	assert.True(t, ValidateDirectoryString([]byte("hello")))
	assert.True(t, ValidateDirectoryString([]byte("héllo wörld")))
	assert.False(t, ValidateDirectoryString([]byte{}))
	assert.False(t, ValidateDirectoryString([]byte{0xff, 0xfe}))
}

func TestValidateInteger(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"0", true},
		{"42", true},
		{"-42", true},
		{"+7", true},
		{"", false},
		{"-", false},
		{"4.2", false},
		{"abc", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, ValidateInteger([]byte(tt.in)), "ValidateInteger(%q)", tt.in)
	}
}

func TestValidateBoolean(t *testing.T) {
	assert.True(t, ValidateBoolean([]byte("TRUE")))
	assert.True(t, ValidateBoolean([]byte("FALSE")))
	assert.False(t, ValidateBoolean([]byte("true")))
	assert.False(t, ValidateBoolean([]byte("maybe")))
}

func TestValidateIA5String(t *testing.T) {
	assert.True(t, ValidateIA5String([]byte("ascii only")))
	assert.False(t, ValidateIA5String([]byte("héllo")))
}

func TestValidatePrintableString(t *testing.T) {
	assert.True(t, ValidatePrintableString([]byte("John Q. Public (home)")))
	assert.False(t, ValidatePrintableString([]byte("tab\tchar")))
	assert.False(t, ValidatePrintableString([]byte("semi;colon")))
}

func TestValidateNumericString(t *testing.T) {
	assert.True(t, ValidateNumericString([]byte("123 456")))
	assert.False(t, ValidateNumericString([]byte("123a")))
}

func TestValidateTelephoneNumber(t *testing.T) {
	assert.True(t, ValidateTelephoneNumber([]byte("+1 (555) 010-0100")))
	assert.False(t, ValidateTelephoneNumber([]byte("")))
	assert.False(t, ValidateTelephoneNumber([]byte("call me")))
}

func TestValidateOIDSyntax(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"2.5.4.3", true},
		{"cn", true},
		{"commonName", true},
		{"x-custom-attr", true},
		{"2.5..3", false},
		{"-leading", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, ValidateOIDSyntax([]byte(tt.in)), "ValidateOIDSyntax(%q)", tt.in)
	}
}

func TestValidateUUID(t *testing.T) {
	assert.True(t, ValidateUUID([]byte("f81d4fae-7dec-11d0-a765-00a0c91e6bf6")))
	assert.False(t, ValidateUUID([]byte("not-a-uuid")))
}

func TestValidateBitString(t *testing.T) {
	assert.True(t, ValidateBitString([]byte("'0101'B")))
	assert.True(t, ValidateBitString([]byte("''B")))
	assert.False(t, ValidateBitString([]byte("0101")))
	assert.False(t, ValidateBitString([]byte("'0102'B")))
}

func TestSyntaxFor(t *testing.T) {
	syn := SyntaxFor(SyntaxInteger)
	require.NotNil(t, syn)
	assert.Equal(t, "INTEGER", syn.Description)
	assert.True(t, syn.Validate([]byte("-17")))

	assert.Nil(t, SyntaxFor("9.9.9.9.9"))
}

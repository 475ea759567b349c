package schema

import (
	"errors"
	"strings"
)

// Parser errors
var (
	ErrInvalidMatchingRule = errors.New("invalid matching rule definition")
	ErrInvalidSyntaxDef    = errors.New("invalid syntax definition")
	ErrMissingOID          = errors.New("missing OID in definition")
	ErrUnterminatedString  = errors.New("unterminated quoted string")
	ErrUnterminatedParens  = errors.New("unterminated parentheses")
)

// ParseMatchingRule parses an LDAP matching rule definition string.
// Format: ( OID NAME 'name' SYNTAX syntaxOID )
func ParseMatchingRule(s string) (*MatchingRule, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return nil, ErrInvalidMatchingRule
	}

	// Remove outer parentheses
	s = strings.TrimSpace(s[1 : len(s)-1])

	tokens, err := tokenize(s)
	if err != nil {
		return nil, err
	}

	if len(tokens) == 0 {
		return nil, ErrMissingOID
	}

	if err := ValidateOID(tokens[0]); err != nil {
		return nil, err
	}

	mr := &MatchingRule{
		OID: tokens[0],
	}

	i := 1
	for i < len(tokens) {
		keyword := strings.ToUpper(tokens[i])
		switch keyword {
		case "NAME":
			i++
			if i >= len(tokens) {
				return nil, ErrInvalidMatchingRule
			}
			names := parseNames(tokens[i])
			if len(names) > 0 {
				mr.Name = names[0]
				mr.Names = names
			}
		case "DESC":
			i++
			if i >= len(tokens) {
				return nil, ErrInvalidMatchingRule
			}
			mr.Description = unquote(tokens[i])
		case "OBSOLETE":
			mr.Obsolete = true
		case "SYNTAX":
			i++
			if i >= len(tokens) {
				return nil, ErrInvalidMatchingRule
			}
			mr.Syntax = parseSyntaxOID(tokens[i])
		}
		i++
	}

	return mr, nil
}

// ParseSyntax parses an LDAP syntax definition string.
// Format: ( OID DESC 'description' )
func ParseSyntax(s string) (*Syntax, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return nil, ErrInvalidSyntaxDef
	}

	// Remove outer parentheses
	s = strings.TrimSpace(s[1 : len(s)-1])

	tokens, err := tokenize(s)
	if err != nil {
		return nil, err
	}

	if len(tokens) == 0 {
		return nil, ErrMissingOID
	}

	syn := &Syntax{
		OID:       tokens[0],
		Validator: validatorFor(tokens[0]),
	}

	i := 1
	for i < len(tokens) {
		keyword := strings.ToUpper(tokens[i])
		switch keyword {
		case "DESC":
			i++
			if i >= len(tokens) {
				return nil, ErrInvalidSyntaxDef
			}
			syn.Description = unquote(tokens[i])
		}
		i++
	}

	return syn, nil
}

// tokenize splits a schema definition into tokens, handling quoted strings and parentheses.
func tokenize(s string) ([]string, error) {
	var tokens []string
	var current strings.Builder
	inQuote := false
	parenDepth := 0

	for i := 0; i < len(s); i++ {
		ch := s[i]

		if inQuote {
			current.WriteByte(ch)
			if ch == '\'' {
				inQuote = false
			}
			continue
		}

		switch ch {
		case '\'':
			inQuote = true
			current.WriteByte(ch)
		case '(':
			if parenDepth > 0 {
				current.WriteByte(ch)
			}
			parenDepth++
		case ')':
			parenDepth--
			if parenDepth > 0 {
				current.WriteByte(ch)
			} else if parenDepth == 0 && current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		case ' ', '\t', '\n', '\r':
			if parenDepth > 0 {
				current.WriteByte(ch)
			} else if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		case '$':
			if parenDepth > 0 {
				current.WriteByte(ch)
			}
		default:
			current.WriteByte(ch)
		}
	}

	if inQuote {
		return nil, ErrUnterminatedString
	}
	if parenDepth != 0 {
		return nil, ErrUnterminatedParens
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens, nil
}

// parseNames parses a NAME value which can be a single quoted string or a list.
// Examples: 'cn' or ( 'cn' 'commonName' )
func parseNames(s string) []string {
	s = strings.TrimSpace(s)

	if strings.Contains(s, "'") {
		var names []string
		inQuote := false
		var current strings.Builder

		for i := 0; i < len(s); i++ {
			ch := s[i]
			if ch == '\'' {
				if inQuote {
					if current.Len() > 0 {
						names = append(names, current.String())
						current.Reset()
					}
				}
				inQuote = !inQuote
			} else if inQuote {
				current.WriteByte(ch)
			}
		}
		return names
	}

	// Single unquoted name
	return []string{s}
}

// unquote removes surrounding single quotes from a string.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return s[1 : len(s)-1]
	}
	return s
}

// parseSyntaxOID extracts the OID from a syntax specification.
// Handles length constraints like "1.3.6.1.4.1.1466.115.121.1.15{256}"
func parseSyntaxOID(s string) string {
	s = unquote(s)
	if idx := strings.Index(s, "{"); idx != -1 {
		return s[:idx]
	}
	return s
}

package directory

// AuthenticationLevel describes how a principal proved its identity.
type AuthenticationLevel int

const (
	// AuthNone is the level of an anonymous principal.
	AuthNone AuthenticationLevel = iota
	// AuthUnauthenticated is a name-only bind without credentials.
	AuthUnauthenticated
	// AuthSimple is a simple (password) bind.
	AuthSimple
	// AuthStrong is a strong (certificate or SASL) bind.
	AuthStrong
)

// String returns the string representation of the AuthenticationLevel.
func (l AuthenticationLevel) String() string {
	switch l {
	case AuthNone:
		return "none"
	case AuthUnauthenticated:
		return "unauthenticated"
	case AuthSimple:
		return "simple"
	case AuthStrong:
		return "strong"
	default:
		return "unknown"
	}
}

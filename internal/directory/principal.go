package directory

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/oba-ldap/sema/internal/registry"
)

// ErrNotSchemaAware is returned when a principal is constructed with a DN
// that has not been normalized against a schema view.
var ErrNotSchemaAware = errors.New("directory: distinguished name is not schema aware")

// Principal is an authenticated directory user: its normalized
// distinguished name, the level at which it authenticated, and optional
// connection bookkeeping.
//
// The password is treated as a value: it is copied on the way in and on the
// way out, so no caller ever holds a slice aliasing the principal's copy.
type Principal struct {
	dn         DN
	authLevel  AuthenticationLevel
	password   []byte
	mgr        *registry.Manager
	clientAddr net.Addr
	serverAddr net.Addr
}

// NewPrincipal creates a principal for the given schema-aware DN. It fails
// with ErrNotSchemaAware if the DN has not been bound to a schema; callers
// must normalize first via DN.WithSchema.
func NewPrincipal(mgr *registry.Manager, dn DN, level AuthenticationLevel) (*Principal, error) {
	if !dn.IsSchemaAware() {
		return nil, ErrNotSchemaAware
	}
	return &Principal{
		dn:        dn,
		authLevel: level,
		mgr:       mgr,
	}, nil
}

// NewPrincipalWithPassword creates a principal holding a copy of the given
// password.
func NewPrincipalWithPassword(mgr *registry.Manager, dn DN, level AuthenticationLevel, password []byte) (*Principal, error) {
	p, err := NewPrincipal(mgr, dn, level)
	if err != nil {
		return nil, err
	}
	p.SetPassword(password)
	return p, nil
}

// NewAnonymousPrincipal creates the principal for the no-name anonymous
// user whose DN is empty.
func NewAnonymousPrincipal(mgr *registry.Manager) *Principal {
	return &Principal{
		authLevel: AuthNone,
		mgr:       mgr,
	}
}

// DN returns the principal's distinguished name.
func (p *Principal) DN() DN {
	return p.dn
}

// Name returns the normalized string form of the principal's DN.
func (p *Principal) Name() string {
	return p.dn.NormName()
}

// AuthenticationLevel returns the level at which the principal
// authenticated.
func (p *Principal) AuthenticationLevel() AuthenticationLevel {
	return p.authLevel
}

// Password returns a copy of the principal's password, or nil if none is
// set.
func (p *Principal) Password() []byte {
	if p.password == nil {
		return nil
	}
	out := make([]byte, len(p.password))
	copy(out, p.password)
	return out
}

// SetPassword stores a copy of the given password. A nil password clears
// the stored one.
func (p *Principal) SetPassword(password []byte) {
	if password == nil {
		p.password = nil
		return
	}
	p.password = make([]byte, len(password))
	copy(p.password, password)
}

// Manager returns the schema view the principal's DN is bound to.
func (p *Principal) Manager() *registry.Manager {
	return p.mgr
}

// Rebind re-validates and re-normalizes the principal's DN against a new
// schema view. On failure the principal is left unchanged and the error is
// returned to the caller; a name that no longer normalizes must not be
// silently kept.
func (p *Principal) Rebind(mgr *registry.Manager) error {
	if p.dn.IsEmpty() {
		p.mgr = mgr
		return nil
	}
	dn, err := p.dn.WithSchema(mgr)
	if err != nil {
		return fmt.Errorf("directory: rebinding %q: %w", p.dn.String(), err)
	}
	p.dn = dn
	p.mgr = mgr
	return nil
}

// Clone returns a deep copy of the principal. The password copy goes
// through SetPassword so the clone never aliases the original's bytes.
func (p *Principal) Clone() *Principal {
	clone := &Principal{
		dn:         p.dn,
		authLevel:  p.authLevel,
		mgr:        p.mgr,
		clientAddr: p.clientAddr,
		serverAddr: p.serverAddr,
	}
	clone.SetPassword(p.password)
	return clone
}

// ClientAddress returns the client end of the connection the principal
// bound on, or nil.
func (p *Principal) ClientAddress() net.Addr {
	return p.clientAddr
}

// SetClientAddress records the client end of the connection.
func (p *Principal) SetClientAddress(addr net.Addr) {
	p.clientAddr = addr
}

// ServerAddress returns the server end of the connection the principal
// bound on, or nil.
func (p *Principal) ServerAddress() net.Addr {
	return p.serverAddr
}

// SetServerAddress records the server end of the connection.
func (p *Principal) SetServerAddress(addr net.Addr) {
	p.serverAddr = addr
}

// String returns a diagnostic representation of the principal. Schema-aware
// names are marked with a "(n)" prefix.
func (p *Principal) String() string {
	var b strings.Builder

	if p.dn.IsSchemaAware() {
		b.WriteString("(n)")
	}

	b.WriteString("['")
	b.WriteString(p.dn.NormName())
	b.WriteString("'")

	if p.clientAddr != nil {
		b.WriteString(", client@")
		b.WriteString(p.clientAddr.String())
	}
	if p.serverAddr != nil {
		b.WriteString(", server@")
		b.WriteString(p.serverAddr.String())
	}

	b.WriteString("]")
	return b.String()
}

package registry

import "errors"

// Registry errors.
var (
	// ErrNilBootstrap is returned when a registry is constructed without a
	// bootstrap layer. This is a configuration fault; the owning subsystem
	// must not start.
	ErrNilBootstrap = errors.New("registry: bootstrap registry cannot be nil")

	// ErrAlreadyRegistered is returned by Register when the OID collides
	// with an existing element in either layer.
	ErrAlreadyRegistered = errors.New("registry: OID already registered")

	// ErrNotFound is returned when a lookup references an unknown OID.
	ErrNotFound = errors.New("registry: OID not found")

	// ErrNotNumericOID is returned when a symbolic name is passed where a
	// numeric OID is required.
	ErrNotNumericOID = errors.New("registry: not a numeric OID")
)

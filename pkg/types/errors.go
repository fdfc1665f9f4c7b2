package types

import "errors"

// Validation and session errors. Storage-level absence is not an error;
// stores signal it with an ok=false return instead.
var (
	ErrInvalidOwnerID = errors.New("owner id must be exactly 6 digits")
	ErrUnknownSection = errors.New("unknown report section")
	ErrUnknownField   = errors.New("unknown section field")
	ErrSessionClosed  = errors.New("editing session is closed")
)

// Reference table errors.
var (
	ErrTableUnknown = errors.New("unknown reference table")
)

// Credential store errors.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserInactive = errors.New("user is deactivated")
	ErrUserExists   = errors.New("user already exists")
	ErrBadPassword  = errors.New("wrong password")
)

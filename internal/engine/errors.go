package engine

import "errors"

// Sentinel is substituted for a value that carries the encryption prefix
// but cannot be decrypted (wrong key, tampering, truncation).
const Sentinel = "[Encrypted]"

var (
	// ErrNotUnlocked is returned when a value has to be encrypted or
	// decrypted while no key is held.
	ErrNotUnlocked = errors.New("encryption engine is locked")

	// ErrEmptyPassphrase is returned by Unlock for an empty passphrase.
	ErrEmptyPassphrase = errors.New("passphrase must not be empty")

	// ErrDerivationFailure is returned by Unlock when the key cannot be
	// derived. The engine stays locked.
	ErrDerivationFailure = errors.New("key derivation failed")

	// ErrSaltUnavailable is returned by Unlock when the persisted salt can
	// be neither loaded nor created. The engine stays locked.
	ErrSaltUnavailable = errors.New("encryption salt unavailable")

	// ErrInvalidSalt is returned by Unlock when the persisted salt has the
	// wrong size for the current scheme.
	ErrInvalidSalt = errors.New("persisted encryption salt is invalid")

	// ErrDecryptionFailure is carried in [Decrypted.Cause] and
	// [FieldError]. Decrypt itself never returns it.
	ErrDecryptionFailure = errors.New("value could not be decrypted")
)

// FieldError reports a record field that could not be decrypted.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return "field " + e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

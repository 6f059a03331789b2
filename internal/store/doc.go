// Package store persists the installation's encryption salt.
//
// Every backend stores the salt as a standard base64 string under the key
// [SaltKey] and treats it as write-once: [SaltStore.CreateSalt] reports
// [ErrSaltAlreadyExists] instead of replacing a stored salt, so replacing
// the salt (which would orphan every ciphertext) is impossible through
// this package.
package store

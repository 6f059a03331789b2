// Package engine implements client-side field-level encryption of PII.
//
// An [Engine] derives an AES-256 key from a user passphrase and the
// installation's persisted salt, then encrypts or decrypts single values
// and named string fields of records. The engine starts locked and cycles
// between locked and unlocked for the life of the process; only the salt
// is durable.
//
// Values are encrypted into the self-describing wire form
//
//	ENC:v1:<base64(nonce || ciphertext || tag)>
//
// and anything without a registered prefix is treated as legacy plaintext
// and passed through unchanged. A value that carries the prefix but cannot
// be decrypted reads back as [Sentinel]. There is no passphrase check at
// unlock time: a wrong passphrase shows up only as sentinels on read.
package engine

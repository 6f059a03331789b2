package engine

// Status tells how a [Decrypted] result was produced.
type Status int

const (
	// StatusPlain means the input carried no encryption prefix and was
	// returned unchanged.
	StatusPlain Status = iota
	// StatusDecrypted means the input was decrypted and authenticated.
	StatusDecrypted
	// StatusFailed means the input carried the prefix but could not be
	// decrypted; Text holds [Sentinel].
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPlain:
		return "plain"
	case StatusDecrypted:
		return "decrypted"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Decrypted is the structured outcome of decrypting one value.
type Decrypted struct {
	Status Status
	// Text is the plaintext, the unchanged input, or [Sentinel].
	Text string
	// Cause wraps [ErrDecryptionFailure] when Status is StatusFailed.
	Cause error
}

// Failed reports whether the value could not be decrypted.
func (d Decrypted) Failed() bool {
	return d.Status == StatusFailed
}

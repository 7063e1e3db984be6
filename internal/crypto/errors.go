package crypto

import (
	"errors"
	"fmt"
)

// Kind identifies the category of failure without leaking implementation
// detail. It is an opaque label, not a Go type, so the same Kind can be
// produced by more than one code path.
type Kind string

const (
	// KindIo marks a failure reading from or writing to the underlying
	// source or sink.
	KindIo Kind = "io"

	// KindPemParse marks malformed key PEM.
	KindPemParse Kind = "pem_parse"

	// KindKeyGen marks an RSA key generation failure.
	KindKeyGen Kind = "key_gen"

	// KindRsaWrap marks a failure wrapping the symmetric key.
	KindRsaWrap Kind = "rsa_wrap"

	// KindRsaUnwrap marks a failure unwrapping the symmetric key
	// (tampering or the wrong private key).
	KindRsaUnwrap Kind = "rsa_unwrap"

	// KindAeadSeal marks an AEAD sealing failure. Should not occur with
	// correct inputs.
	KindAeadSeal Kind = "aead_seal"

	// KindAeadVerify marks a chunk that failed AEAD authentication.
	KindAeadVerify Kind = "aead_verify"

	// KindRngFail marks an unavailable or failing secure RNG.
	KindRngFail Kind = "rng_fail"

	// KindTruncated marks an unexpected end of stream, or a stream
	// missing its terminator chunk.
	KindTruncated Kind = "truncated"

	// KindTrailingData marks bytes found after the terminator chunk.
	KindTrailingData Kind = "trailing_data"

	// KindHeaderInvalid marks a header or chunk length field outside its
	// valid range.
	KindHeaderInvalid Kind = "header_invalid"

	// KindAfterClose marks a write attempted after the writer finalized.
	KindAfterClose Kind = "after_close"

	// KindTooManyChunks marks a chunk index that would overflow uint64.
	KindTooManyChunks Kind = "too_many_chunks"
)

// Error is the single error taxonomy used across the codec, the key pair,
// and the streaming reader/writer. It wraps an optional cause but never
// exposes a sub-reason beyond Kind: AeadVerify and RsaUnwrap, for
// instance, are distinct Kinds but carry no further detail about which
// verification step failed.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// newError wraps cause under kind. cause may be nil.
func newError(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Err: cause}
}

// Is reports whether err carries the given Kind, unwrapping as needed.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf extracts the Kind from err, if any.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

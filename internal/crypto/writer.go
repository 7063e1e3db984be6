package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"io"
	"math"
)

// symKeySize is the length in bytes of the AES-256 content key.
const symKeySize = 32

// Encryptor buffers plaintext up to a configured chunk size, seals each
// full chunk with AES-256-GCM under a nonce derived from the session's
// base nonce and the chunk index, and writes the framed result to an
// underlying sink. It owns its sink and its symmetric key material for
// the lifetime of the session.
//
// Encryptor is not safe for concurrent use; it assumes a single goroutine
// drives Write/Flush/Close in order, exactly like the sink it wraps.
type Encryptor struct {
	sink       io.Writer
	aead       cipher.AEAD
	baseNonce  [nonceSize]byte
	chunkSize  int
	buf        []byte
	index      uint64
	overflowed bool
	finalized  bool
	err        error
}

// NewEncryptor starts an encryption session: it samples a fresh AES-256
// key and a random base nonce, wraps the key under pub with RSA-OAEP, and
// writes the frame header to sink. chunkSize must be at least 1 and must
// match the value the corresponding Decryptor is constructed with; the
// frame itself carries no record of it.
func NewEncryptor(sink io.Writer, pub *KeyPair, chunkSize int) (*Encryptor, error) {
	return NewEncryptorWithRand(sink, pub, chunkSize, rand.Reader)
}

// NewEncryptorWithRand is NewEncryptor with an explicit entropy source,
// primarily for deterministic tests.
func NewEncryptorWithRand(sink io.Writer, pub *KeyPair, chunkSize int, rng io.Reader) (*Encryptor, error) {
	if chunkSize < 1 {
		return nil, errors.New("crypto: chunk size must be at least 1")
	}

	symKey := make([]byte, symKeySize)
	if err := randomBytes(rng, symKey); err != nil {
		return nil, err
	}

	var baseNonce [nonceSize]byte
	if err := randomBytes(rng, baseNonce[:]); err != nil {
		return nil, err
	}

	wrapped, err := pub.Wrap(symKey)
	if err != nil {
		return nil, err
	}

	aead, err := newAEAD(symKey)
	if err != nil {
		return nil, err
	}

	if err := putHeader(sink, wrapped, baseNonce); err != nil {
		return nil, err
	}

	return &Encryptor{
		sink:      sink,
		aead:      aead,
		baseNonce: baseNonce,
		chunkSize: chunkSize,
		buf:       make([]byte, 0, chunkSize),
	}, nil
}

func newAEAD(symKey []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(symKey)
	if err != nil {
		return nil, newError(KindAeadSeal, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, newError(KindAeadSeal, err)
	}
	return aead, nil
}

// Write appends p to the internal plaintext buffer, sealing and emitting
// one framed chunk every time the buffer fills to chunkSize. It always
// consumes the entire slice unless an error occurs partway through, in
// which case the returned count reflects how much was actually buffered
// or sealed before the failure.
func (e *Encryptor) Write(p []byte) (int, error) {
	if e.finalized {
		return 0, newError(KindAfterClose, nil)
	}
	if e.err != nil {
		return 0, e.err
	}

	written := 0
	for len(p) > 0 {
		space := e.chunkSize - len(e.buf)
		n := min(space, len(p))
		e.buf = append(e.buf, p[:n]...)
		p = p[n:]
		written += n

		if len(e.buf) == e.chunkSize {
			if err := e.sealChunk(); err != nil {
				e.err = err
				return written, err
			}
		}
	}
	return written, nil
}

// Flush asks the underlying sink to flush, if it supports that. It never
// emits a partial chunk of its own; short-chunk emission is the exclusive
// business of Close.
func (e *Encryptor) Flush() error {
	if f, ok := e.sink.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return newError(KindIo, err)
		}
	}
	return nil
}

// Close finalizes the session: it seals whatever remains in the plaintext
// buffer, even if empty, as the terminator chunk. Close is idempotent - a
// second call is a no-op - and any Write after a successful Close fails
// with KindAfterClose.
func (e *Encryptor) Close() error {
	if e.finalized {
		return nil
	}
	defer func() { e.finalized = true }()

	if e.err != nil {
		return e.err
	}
	if err := e.sealChunk(); err != nil {
		e.err = err
		return err
	}
	return nil
}

// sealChunk seals the current buffer contents under chunkNonce(index) and
// emits the framed chunk, then advances the chunk index (final chunks
// included - a terminator still occupies an index and a nonce). The
// buffer is reset to empty regardless of whether the chunk was full or
// short.
func (e *Encryptor) sealChunk() error {
	if e.overflowed {
		return newError(KindTooManyChunks, nil)
	}

	nonce := chunkNonce(e.baseNonce, e.index)
	sealed := e.aead.Seal(nil, nonce[:], e.buf, nil)

	if err := putChunk(e.sink, sealed); err != nil {
		return err
	}

	e.buf = e.buf[:0]

	if e.index == math.MaxUint64 {
		e.overflowed = true
	} else {
		e.index++
	}

	return nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

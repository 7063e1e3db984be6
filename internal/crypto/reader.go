package crypto

import (
	"crypto/cipher"
	"errors"
	"io"
)

// Decryptor reads a framed stream produced by Encryptor, unwraps the
// symmetric key with the supplied private key, and exposes the decrypted
// plaintext through Read. It verifies every chunk's AEAD tag before
// releasing any of that chunk's plaintext to the caller.
//
// Decryptor is not safe for concurrent use.
type Decryptor struct {
	src       io.Reader
	aead      cipher.AEAD
	baseNonce [nonceSize]byte
	chunkSize int
	index     uint64
	residue   []byte
	exhausted bool
	err       error
}

// NewDecryptor opens a decryption session: it reads the frame header from
// src, unwraps the symmetric key with priv, and prepares to decrypt
// chunks no larger than chunkSize plaintext bytes each. chunkSize must
// match the value the corresponding Encryptor was constructed with.
func NewDecryptor(src io.Reader, priv *KeyPair, chunkSize int) (*Decryptor, error) {
	if chunkSize < 1 {
		return nil, errors.New("crypto: chunk size must be at least 1")
	}

	wrapped, baseNonce, err := getHeader(src)
	if err != nil {
		return nil, err
	}

	symKey, err := priv.Unwrap(wrapped)
	if err != nil {
		return nil, err
	}

	aead, err := newAEAD(symKey)
	if err != nil {
		return nil, err
	}

	return &Decryptor{
		src:       src,
		aead:      aead,
		baseNonce: baseNonce,
		chunkSize: chunkSize,
	}, nil
}

// Read fills p with decrypted plaintext, fetching and verifying further
// chunks from the underlying source as needed. Like io.Reader, it returns
// (0, io.EOF) exactly when the stream has ended cleanly after its
// terminator chunk, and never partway through.
func (d *Decryptor) Read(p []byte) (int, error) {
	if d.err != nil {
		return 0, d.err
	}

	for len(d.residue) == 0 {
		if d.exhausted {
			return 0, io.EOF
		}
		if err := d.fetchChunk(); err != nil {
			d.err = err
			return 0, err
		}
	}

	n := copy(p, d.residue)
	d.residue = d.residue[n:]
	return n, nil
}

// fetchChunk reads, verifies, and decrypts the next chunk into d.residue.
// A chunk shorter than chunkSize (including empty) is the terminator: it
// marks the stream exhausted and eagerly checks for trailing bytes so
// that callers who stop reading immediately after draining the last
// chunk still observe KindTrailingData.
func (d *Decryptor) fetchChunk() error {
	if d.index == maxUint64 {
		return newError(KindTooManyChunks, nil)
	}

	payload, err := getChunk(d.src, d.chunkSize+d.aead.Overhead())
	if err != nil {
		return err
	}

	nonce := chunkNonce(d.baseNonce, d.index)
	plain, err := d.aead.Open(nil, nonce[:], payload, nil)
	if err != nil {
		return newError(KindAeadVerify, err)
	}
	d.index++

	d.residue = plain
	if len(plain) < d.chunkSize {
		d.exhausted = true
		return d.checkTrailingData()
	}
	return nil
}

// checkTrailingData peeks a single byte past the terminator chunk. Any
// byte found there means the frame was extended after it was sealed.
func (d *Decryptor) checkTrailingData() error {
	var b [1]byte
	n, err := d.src.Read(b[:])
	if n > 0 {
		return newError(KindTrailingData, nil)
	}
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return newError(KindIo, err)
}

const maxUint64 = ^uint64(0)

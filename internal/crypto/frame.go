package crypto

import (
	"encoding/binary"
	"errors"
	"io"
)

// Frame layout:
//
//	wrapped_key_len (uint16 BE) | wrapped_key | nonce_len (uint8) | base_nonce
//	{ chunk_len (uint32 BE) | payload }*
//
// putHeader/getHeader and putChunk/getChunk are the only places that know
// about this byte layout; everything above them deals in []byte.

// readFull reads exactly len(buf) bytes from r, mapping a clean or partial
// EOF to KindTruncated (the caller was expecting a complete field) and any
// other failure to KindIo.
func readFull(r io.Reader, buf []byte) error {
	_, err := io.ReadFull(r, buf)
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return newError(KindTruncated, err)
	}
	return newError(KindIo, err)
}

// readFullChunkBoundary is like readFull but distinguishes a clean EOF
// landing exactly on a chunk boundary (the only place a bare io.EOF is an
// expected signal) from everything else. It always returns KindTruncated
// for a short read; the distinction lives in the returned bool.
func readFullChunkBoundary(r io.Reader, buf []byte) (cleanEOF bool, err error) {
	n, rerr := io.ReadFull(r, buf)
	if rerr == nil {
		return false, nil
	}
	if n == 0 && errors.Is(rerr, io.EOF) {
		return true, newError(KindTruncated, rerr)
	}
	if errors.Is(rerr, io.EOF) || errors.Is(rerr, io.ErrUnexpectedEOF) {
		return false, newError(KindTruncated, rerr)
	}
	return false, newError(KindIo, rerr)
}

func writeAll(w io.Writer, buf []byte) error {
	if _, err := w.Write(buf); err != nil {
		return newError(KindIo, err)
	}
	return nil
}

// putHeader writes the wrapped symmetric key and base nonce to w.
func putHeader(w io.Writer, wrappedKey []byte, baseNonce [nonceSize]byte) error {
	if len(wrappedKey) == 0 || len(wrappedKey) > 0xFFFF {
		return newError(KindHeaderInvalid, errors.New("wrapped key length out of range"))
	}

	var lenBuf [2]byte
	binary.BigEndian.PutUint16(lenBuf[:], uint16(len(wrappedKey)))
	if err := writeAll(w, lenBuf[:]); err != nil {
		return err
	}
	if err := writeAll(w, wrappedKey); err != nil {
		return err
	}
	if err := writeAll(w, []byte{nonceSize}); err != nil {
		return err
	}
	return writeAll(w, baseNonce[:])
}

// getHeader parses the wrapped symmetric key and base nonce from r.
func getHeader(r io.Reader) (wrappedKey []byte, baseNonce [nonceSize]byte, err error) {
	var lenBuf [2]byte
	_, cleanErr := readFullChunkBoundary(r, lenBuf[:])
	if cleanErr != nil {
		return nil, baseNonce, cleanErr
	}

	wrappedKeyLen := binary.BigEndian.Uint16(lenBuf[:])
	if wrappedKeyLen == 0 {
		return nil, baseNonce, newError(KindHeaderInvalid, errors.New("wrapped_key_len is zero"))
	}

	wrappedKey = make([]byte, wrappedKeyLen)
	if err := readFull(r, wrappedKey); err != nil {
		return nil, baseNonce, err
	}

	var nonceLenBuf [1]byte
	if err := readFull(r, nonceLenBuf[:]); err != nil {
		return nil, baseNonce, err
	}
	if nonceLenBuf[0] != nonceSize {
		return nil, baseNonce, newError(KindHeaderInvalid, errors.New("unsupported nonce_len"))
	}

	if err := readFull(r, baseNonce[:]); err != nil {
		return nil, baseNonce, err
	}

	return wrappedKey, baseNonce, nil
}

// putChunk writes one length-prefixed chunk payload to w.
func putChunk(w io.Writer, payload []byte) error {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(payload)))
	if err := writeAll(w, lenBuf[:]); err != nil {
		return err
	}
	return writeAll(w, payload)
}

// getChunk reads one length-prefixed chunk payload from r. maxPayload
// bounds chunk_len as a defense against a corrupt or hostile length field;
// a chunk_len exceeding it is reported as KindHeaderInvalid.
func getChunk(r io.Reader, maxPayload int) (payload []byte, err error) {
	var lenBuf [4]byte
	_, err = readFullChunkBoundary(r, lenBuf[:])
	if err != nil {
		return nil, err
	}

	chunkLen := binary.BigEndian.Uint32(lenBuf[:])
	if maxPayload >= 0 && int64(chunkLen) > int64(maxPayload) {
		return nil, newError(KindHeaderInvalid, errors.New("chunk_len exceeds configured buffer size"))
	}

	payload = make([]byte, chunkLen)
	if err := readFull(r, payload); err != nil {
		return nil, err
	}
	return payload, nil
}

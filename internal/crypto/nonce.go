package crypto

import "encoding/binary"

// nonceSize is the length in bytes of both the base nonce and every
// derived chunk nonce (96 bits, the size AES-256-GCM expects).
const nonceSize = 12

// chunkNonce derives the per-chunk nonce from the session's base nonce and
// a 0-based chunk index. The low 8 bytes of base are read as a big-endian
// counter, advanced by index (wrapping modulo 2^64), and written back; the
// top 4 bytes of base are carried through unchanged.
//
// Every (symmetric key, chunkNonce) pair is unique for a single session as
// long as the session produces fewer than 2^64 chunks; callers must refuse
// to seal a chunk once the index would wrap.
func chunkNonce(base [nonceSize]byte, index uint64) [nonceSize]byte {
	counter := binary.BigEndian.Uint64(base[4:])
	counter += index

	var out [nonceSize]byte
	copy(out[:4], base[:4])
	binary.BigEndian.PutUint64(out[4:], counter)
	return out
}

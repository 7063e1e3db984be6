// Package crypto implements the hybrid RSA/AES-256-GCM streaming file
// format used by the keygen, encrypt, and decrypt commands.
//
// A session wraps a freshly generated 32-byte AES key under an RSA public
// key (RSA-OAEP, SHA-256), then splits the plaintext into fixed-size
// chunks and seals each one with AES-256-GCM under a nonce derived from a
// random base nonce and the chunk's index. The last chunk is always
// shorter than the configured chunk size (possibly empty) and serves as
// the sole end-of-stream marker; there is no other terminator.
//
// # Wire format
//
//	wrapped_key_len (2 bytes, BE) | wrapped_key | nonce_len (1 byte) | base_nonce (12 bytes)
//	{ chunk_len (4 bytes, BE) | ciphertext‖tag }*
//
// Encryptor and Decryptor are the streaming halves of the format; KeyPair
// manages RSA key material and PEM persistence. Every failure mode except
// an invalid chunk size passed to NewEncryptor or NewDecryptor (a plain
// error) is tagged with an opaque Kind (see errors.go) rather than a Go type, so
// callers can branch on Is(err, KindAeadVerify) without caring which
// internal step produced it.
package crypto

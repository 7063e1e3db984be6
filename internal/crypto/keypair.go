package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"io"
)

const (
	pemTypePrivateKey = "RSA PRIVATE KEY"
	pemTypePublicKey  = "RSA PUBLIC KEY"

	// MinKeyBits is the smallest RSA modulus Generate will produce. Wrap
	// does not check the modulus size of the key it is given.
	MinKeyBits = 2048
)

// KeyPair holds an RSA public key, an RSA private key, or both. It is
// immutable after construction: Generate, FromPEM, and the PEM accessors
// are the only ways to produce or read one. When both halves are present
// they are mathematically paired; KeyPair never checks this itself, since
// Generate and FromPEM both derive the public half from the private key.
type KeyPair struct {
	Public  *rsa.PublicKey
	Private *rsa.PrivateKey
}

// Generate creates a fresh RSA key pair of the given bit length using the
// operating system's secure RNG. bits must be at least MinKeyBits; 2048
// and 4096 are the two sizes this package is tuned for, but any size at
// or above the minimum is accepted.
func Generate(bits int) (*KeyPair, error) {
	if bits < MinKeyBits {
		return nil, newError(KindKeyGen, errors.New("key size below minimum of 2048 bits"))
	}
	priv, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, newError(KindKeyGen, err)
	}
	return &KeyPair{Public: &priv.PublicKey, Private: priv}, nil
}

// ToPEMPrivate encodes the private half as a PKCS#1 PEM block. It returns
// an error if this KeyPair holds no private key.
func (kp *KeyPair) ToPEMPrivate() ([]byte, error) {
	if kp.Private == nil {
		return nil, newError(KindPemParse, errors.New("key pair has no private half"))
	}
	block := &pem.Block{
		Type:  pemTypePrivateKey,
		Bytes: x509.MarshalPKCS1PrivateKey(kp.Private),
	}
	return pem.EncodeToMemory(block), nil
}

// ToPEMPublic encodes the public half as a PKCS#1 PEM block. It returns an
// error if this KeyPair holds no public key.
func (kp *KeyPair) ToPEMPublic() ([]byte, error) {
	if kp.Public == nil {
		return nil, newError(KindPemParse, errors.New("key pair has no public half"))
	}
	block := &pem.Block{
		Type:  pemTypePublicKey,
		Bytes: x509.MarshalPKCS1PublicKey(kp.Public),
	}
	return pem.EncodeToMemory(block), nil
}

// FromPEM parses a single PEM block, either a PKCS#1 "RSA PRIVATE KEY" or
// an "RSA PUBLIC KEY", into a KeyPair. A private key block yields both
// halves (the public key is derived from the private one); a public key
// block yields a public-only KeyPair.
func FromPEM(data []byte) (*KeyPair, error) {
	block, rest := pem.Decode(data)
	if block == nil {
		return nil, newError(KindPemParse, errors.New("no PEM block found"))
	}
	if len(rest) > 0 {
		// Trailing PEM blocks are ignored; only the first is meaningful
		// for a single key pair.
		_ = rest
	}

	switch block.Type {
	case pemTypePrivateKey:
		priv, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, newError(KindPemParse, err)
		}
		return &KeyPair{Public: &priv.PublicKey, Private: priv}, nil
	case pemTypePublicKey:
		pub, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, newError(KindPemParse, err)
		}
		return &KeyPair{Public: pub}, nil
	default:
		return nil, newError(KindPemParse, errors.New("unrecognized PEM block type: "+block.Type))
	}
}

// Wrap encrypts symKey under the public half using RSA-OAEP with SHA-256
// for both the mask and the label.
func (kp *KeyPair) Wrap(symKey []byte) ([]byte, error) {
	if kp.Public == nil {
		return nil, newError(KindRsaWrap, errors.New("key pair has no public half"))
	}
	wrapped, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, kp.Public, symKey, nil)
	if err != nil {
		return nil, newError(KindRsaWrap, err)
	}
	return wrapped, nil
}

// Unwrap decrypts a wrapped symmetric key using RSA-OAEP with SHA-256. It
// fails with KindRsaUnwrap both on genuine tampering and on the wrong
// private key; the two cases are indistinguishable by design.
func (kp *KeyPair) Unwrap(wrapped []byte) ([]byte, error) {
	if kp.Private == nil {
		return nil, newError(KindRsaUnwrap, errors.New("key pair has no private half"))
	}
	symKey, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, kp.Private, wrapped, nil)
	if err != nil {
		return nil, newError(KindRsaUnwrap, err)
	}
	return symKey, nil
}

// randomBytes fills buf from a cryptographically secure RNG, mapping any
// failure to KindRngFail.
func randomBytes(rng io.Reader, buf []byte) error {
	if _, err := io.ReadFull(rng, buf); err != nil {
		return newError(KindRngFail, err)
	}
	return nil
}

// Package keystore seals hot-wallet private keys at rest and mints new wallets.
package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"io"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/scrypt"
)

// KDF parameters. Scrypt first, then Argon2id over the scrypt output.
const (
	ScryptN      = 1 << 15
	ScryptR      = 8
	ScryptP      = 1
	ScryptKeyLen = 32

	Argon2Time    = 3
	Argon2Memory  = 64 * 1024 // KiB
	Argon2Threads = 4
	KeyLen        = 32
)

var (
	ErrInvalidCiphertext = errors.New("invalid ciphertext")
	ErrDecryptionFailed  = errors.New("decryption failed: authentication error")
	ErrInvalidKey        = errors.New("sealing key must be 32 bytes")
	ErrEmptyPassphrase   = errors.New("passphrase is required")
)

// Sealer encrypts key material with AES-256-GCM.
type Sealer struct {
	aead cipher.AEAD
}

// DeriveKey derives a sealing key from passphrase and salt.
func DeriveKey(passphrase, salt []byte) ([]byte, error) {
	if len(passphrase) == 0 {
		return nil, ErrEmptyPassphrase
	}
	scryptKey, err := scrypt.Key(passphrase, salt, ScryptN, ScryptR, ScryptP, ScryptKeyLen)
	if err != nil {
		return nil, err
	}
	return argon2.IDKey(scryptKey, salt, Argon2Time, Argon2Memory, Argon2Threads, KeyLen), nil
}

// NewSealer derives the sealing key from passphrase and salt.
func NewSealer(passphrase, salt string) (*Sealer, error) {
	key, err := DeriveKey([]byte(passphrase), []byte(salt))
	if err != nil {
		return nil, err
	}
	return NewSealerFromKey(key)
}

// NewSealerFromKey uses a raw 32-byte key.
func NewSealerFromKey(key []byte) (*Sealer, error) {
	if len(key) != KeyLen {
		return nil, ErrInvalidKey
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Sealer{aead: aead}, nil
}

// Seal returns nonce || ciphertext || tag.
func (s *Sealer) Seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return s.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open reverses Seal.
func (s *Sealer) Open(sealed []byte) ([]byte, error) {
	n := s.aead.NonceSize()
	if len(sealed) < n+s.aead.Overhead() {
		return nil, ErrInvalidCiphertext
	}
	plaintext, err := s.aead.Open(nil, sealed[:n], sealed[n:], nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

// NewWallet generates an ed25519 keypair. The address is the base58 public key and
// the private key is returned sealed.
func (s *Sealer) NewWallet() (string, []byte, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return "", nil, err
	}
	sealed, err := s.Seal(priv)
	if err != nil {
		return "", nil, err
	}
	return Address(priv), sealed, nil
}

// PrivateKey opens a sealed wallet key.
func (s *Sealer) PrivateKey(sealed []byte) (ed25519.PrivateKey, error) {
	raw, err := s.Open(sealed)
	if err != nil {
		return nil, err
	}
	if len(raw) != ed25519.PrivateKeySize {
		return nil, ErrInvalidCiphertext
	}
	return ed25519.PrivateKey(raw), nil
}

// Address returns the base58 address of a private key.
func Address(priv ed25519.PrivateKey) string {
	return base58.Encode(priv.Public().(ed25519.PublicKey))
}

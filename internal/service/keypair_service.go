package service

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"io"

	"global-crypto-wallet/internal/core/domain"
	"global-crypto-wallet/pkg/apperror"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	pemTypePublic    = "PUBLIC KEY"
	pemTypePrivate   = "PRIVATE KEY"
	pemTypeEncrypted = "ENCRYPTED WALLET KEY"

	// Argon2id parameters for private key export.
	keyKDFTime    = 2
	keyKDFMemory  = 64 * 1024 // 64MB
	keyKDFThreads = 1
	keyKDFSaltLen = 16

	// Upper bounds accepted on import; headers are attacker-controlled.
	keyKDFMaxTime    = 16
	keyKDFMaxMemory  = 1024 * 1024 // 1GB
	keyKDFMaxThreads = 16

	keyKDFName    = "argon2id"
	keyCipherName = "xchacha20-poly1305"

	minRSABits = 2048
)

// RSAKeyPairProvider implements ports.KeyPairProvider with RSA keys.
// Private keys are exported as PKCS#8; with a passphrase the DER is sealed
// with XChaCha20-Poly1305 under an Argon2id-derived key.
type RSAKeyPairProvider struct {
	bits int
	rand io.Reader
}

// NewRSAKeyPairProvider creates a provider generating keys of the given size.
func NewRSAKeyPairProvider(bits int) (*RSAKeyPairProvider, error) {
	if bits < minRSABits {
		return nil, fmt.Errorf("RSA key size must be at least %d bits, got %d", minRSABits, bits)
	}
	return &RSAKeyPairProvider{bits: bits, rand: rand.Reader}, nil
}

// Generate creates a fresh RSA keypair with public exponent 65537.
func (p *RSAKeyPairProvider) Generate() (domain.KeyPair, error) {
	key, err := rsa.GenerateKey(p.rand, p.bits)
	if err != nil {
		return domain.KeyPair{}, fmt.Errorf("generating RSA key: %w", err)
	}
	return domain.KeyPair{Private: key}, nil
}

// SerializePublic encodes the public key as SubjectPublicKeyInfo PEM.
func (p *RSAKeyPairProvider) SerializePublic(kp domain.KeyPair) (string, error) {
	if kp.Private == nil {
		return "", fmt.Errorf("keypair has no private key")
	}
	der, err := x509.MarshalPKIXPublicKey(kp.Public())
	if err != nil {
		return "", fmt.Errorf("marshaling public key: %w", err)
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: pemTypePublic, Bytes: der})), nil
}

// SerializePrivate encodes the private key as PKCS#8 PEM. A non-empty
// passphrase produces an encrypted block carrying its KDF parameters,
// salt and nonce as PEM headers.
func (p *RSAKeyPairProvider) SerializePrivate(kp domain.KeyPair, passphrase []byte) ([]byte, error) {
	if kp.Private == nil {
		return nil, fmt.Errorf("keypair has no private key")
	}
	der, err := x509.MarshalPKCS8PrivateKey(kp.Private)
	if err != nil {
		return nil, fmt.Errorf("marshaling private key: %w", err)
	}
	defer wipe(der)

	if len(passphrase) == 0 {
		return pem.EncodeToMemory(&pem.Block{Type: pemTypePrivate, Bytes: der}), nil
	}

	salt := make([]byte, keyKDFSaltLen)
	if _, err := io.ReadFull(p.rand, salt); err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}
	key := argon2.IDKey(passphrase, salt, keyKDFTime, keyKDFMemory, keyKDFThreads, chacha20poly1305.KeySize)
	defer wipe(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("creating AEAD: %w", err)
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(p.rand, nonce); err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}

	block := &pem.Block{
		Type: pemTypeEncrypted,
		Headers: map[string]string{
			"KDF":        keyKDFName,
			"KDF-Params": fmt.Sprintf("v=%d,m=%d,t=%d,p=%d", argon2.Version, keyKDFMemory, keyKDFTime, keyKDFThreads),
			"Salt":       base64.RawStdEncoding.EncodeToString(salt),
			"Cipher":     keyCipherName,
			"Nonce":      base64.RawStdEncoding.EncodeToString(nonce),
		},
		Bytes: aead.Seal(nil, nonce, der, []byte(pemTypeEncrypted)),
	}
	return pem.EncodeToMemory(block), nil
}

// ParsePrivate decodes a key produced by SerializePrivate. Any decoding or
// authentication failure is reported as KEY_002 without further detail.
func (p *RSAKeyPairProvider) ParsePrivate(data []byte, passphrase []byte) (domain.KeyPair, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return domain.KeyPair{}, apperror.ErrInvalidPassphrase()
	}

	var der []byte
	switch block.Type {
	case pemTypePrivate:
		der = block.Bytes
	case pemTypeEncrypted:
		if len(passphrase) == 0 {
			return domain.KeyPair{}, apperror.ErrInvalidPassphrase()
		}
		plain, err := openPrivateBlock(block, passphrase)
		if err != nil {
			return domain.KeyPair{}, apperror.ErrInvalidPassphrase()
		}
		defer wipe(plain)
		der = plain
	default:
		return domain.KeyPair{}, apperror.ErrInvalidPassphrase()
	}

	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return domain.KeyPair{}, apperror.ErrInvalidPassphrase()
	}
	signer, ok := parsed.(crypto.Signer)
	if !ok {
		return domain.KeyPair{}, apperror.ErrInvalidPassphrase()
	}
	return domain.KeyPair{Private: signer}, nil
}

func openPrivateBlock(block *pem.Block, passphrase []byte) ([]byte, error) {
	if block.Headers["KDF"] != keyKDFName || block.Headers["Cipher"] != keyCipherName {
		return nil, fmt.Errorf("unsupported key envelope")
	}

	var version int
	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(block.Headers["KDF-Params"], "v=%d,m=%d,t=%d,p=%d", &version, &memory, &time, &threads); err != nil {
		return nil, fmt.Errorf("parsing KDF params: %w", err)
	}
	if version != argon2.Version {
		return nil, fmt.Errorf("unsupported argon2 version %d", version)
	}
	if time == 0 || time > keyKDFMaxTime ||
		memory == 0 || memory > keyKDFMaxMemory ||
		threads == 0 || threads > keyKDFMaxThreads {
		return nil, fmt.Errorf("KDF params out of range: m=%d,t=%d,p=%d", memory, time, threads)
	}

	salt, err := base64.RawStdEncoding.DecodeString(block.Headers["Salt"])
	if err != nil {
		return nil, fmt.Errorf("decoding salt: %w", err)
	}
	nonce, err := base64.RawStdEncoding.DecodeString(block.Headers["Nonce"])
	if err != nil {
		return nil, fmt.Errorf("decoding nonce: %w", err)
	}

	key := argon2.IDKey(passphrase, salt, time, memory, threads, chacha20poly1305.KeySize)
	defer wipe(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("creating AEAD: %w", err)
	}
	if len(nonce) != aead.NonceSize() {
		return nil, fmt.Errorf("invalid nonce size")
	}
	return aead.Open(nil, nonce, block.Bytes, []byte(pemTypeEncrypted))
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

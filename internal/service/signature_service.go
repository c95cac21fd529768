package service

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"

	"global-crypto-wallet/internal/core/domain"
)

// RSAIntentSigner implements ports.IntentSigner using RSA-PSS over SHA-256.
// Verification also accepts ECDSA and Ed25519 public keys.
type RSAIntentSigner struct{}

// NewRSAIntentSigner creates a new intent signer.
func NewRSAIntentSigner() *RSAIntentSigner {
	return &RSAIntentSigner{}
}

var pssOptions = &rsa.PSSOptions{SaltLength: rsa.PSSSaltLengthEqualsHash, Hash: crypto.SHA256}

// Sign returns the base64 (std) signature of the canonical intent string.
func (s *RSAIntentSigner) Sign(kp domain.KeyPair, intent domain.TransactionIntent) (string, error) {
	if kp.Private == nil {
		return "", fmt.Errorf("keypair has no private key")
	}
	payload := []byte(BuildIntentCanonicalString(intent))

	var (
		sig []byte
		err error
	)
	switch kp.Private.(type) {
	case ed25519.PrivateKey:
		sig, err = kp.Private.Sign(rand.Reader, payload, crypto.Hash(0))
	case *rsa.PrivateKey:
		digest := sha256.Sum256(payload)
		sig, err = kp.Private.Sign(rand.Reader, digest[:], pssOptions)
	default:
		digest := sha256.Sum256(payload)
		sig, err = kp.Private.Sign(rand.Reader, digest[:], crypto.SHA256)
	}
	if err != nil {
		return "", fmt.Errorf("signing intent: %w", err)
	}
	return base64.StdEncoding.EncodeToString(sig), nil
}

// Verify checks signature against the canonical intent string.
func (s *RSAIntentSigner) Verify(pub crypto.PublicKey, intent domain.TransactionIntent, signature string) bool {
	sig, err := base64.StdEncoding.DecodeString(signature)
	if err != nil || len(sig) == 0 {
		return false
	}
	payload := []byte(BuildIntentCanonicalString(intent))
	digest := sha256.Sum256(payload)

	switch k := pub.(type) {
	case *rsa.PublicKey:
		return rsa.VerifyPSS(k, crypto.SHA256, digest[:], sig, pssOptions) == nil
	case *ecdsa.PublicKey:
		return ecdsa.VerifyASN1(k, digest[:], sig)
	case ed25519.PublicKey:
		return ed25519.Verify(k, payload, sig)
	default:
		return false
	}
}

// BuildIntentCanonicalString constructs the payload that is signed.
// Format: FROM|TO|CURRENCY|AMOUNT|TIMESTAMP
func BuildIntentCanonicalString(intent domain.TransactionIntent) string {
	return strings.Join([]string{
		intent.From,
		intent.To,
		intent.Currency,
		intent.Amount.String(),
		intent.ISOTimestamp(),
	}, "|")
}

package domain

import (
	"crypto"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// KeyPair is the asymmetric identity naming a wallet.
// Private is never serialized except through an explicit export.
type KeyPair struct {
	Private crypto.Signer
}

// Public returns the public half of the pair.
func (k KeyPair) Public() crypto.PublicKey {
	if k.Private == nil {
		return nil
	}
	return k.Private.Public()
}

// Balances maps a currency code to the amount held. A missing key means zero.
type Balances map[string]decimal.Decimal

// Get returns the balance for currency, or zero if absent.
func (b Balances) Get(currency string) decimal.Decimal {
	if v, ok := b[currency]; ok {
		return v
	}
	return decimal.Zero
}

// Clone returns an independent copy of b.
func (b Balances) Clone() Balances {
	out := make(Balances, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// WalletInfo is the public description of a wallet instance.
type WalletInfo struct {
	ID        uuid.UUID `json:"wallet_id"`
	PublicKey string    `json:"public_key"`
}

package domain

import (
	"github.com/mr-tron/base58"
)

// PublicKeyLength is the byte length of an ed25519 public key, which is
// what every Solana account address encodes.
const PublicKeyLength = 32

// Address is a base58 encoded Solana public key. Base58 is case-sensitive,
// so two addresses are equal only if their encodings are identical.
type Address string

func (a Address) String() string {
	return string(a)
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a == b
}

// Bytes decodes the address into its raw public key
func (a Address) Bytes() ([]byte, error) {
	b, err := base58.Decode(string(a))
	if err != nil {
		return nil, ErrInvalidAddress
	}
	if len(b) != PublicKeyLength {
		return nil, ErrInvalidAddress
	}
	return b, nil
}

// IsValid reports whether the address decodes to a 32 byte public key
func (a Address) IsValid() bool {
	_, err := a.Bytes()
	return err == nil
}

// ToPtr returns nil for an empty address, which is how an absent wallet is represented
func (a Address) ToPtr() *Address {
	if a.IsEmpty() {
		return nil
	}
	res := a
	return &res
}

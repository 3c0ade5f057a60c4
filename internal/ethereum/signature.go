package ethereum

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// VerifySignature reports whether signature is a personal_sign signature of
// message produced by claimedAddress. Only input that cannot be parsed as a
// 65 byte hex signature is an error; any other mismatch returns false.
func VerifySignature(message, signature, claimedAddress string) (bool, error) {
	claimed, err := ParseAddress(claimedAddress)
	if err != nil {
		return false, err
	}

	sig, err := hexutil.Decode("0x" + strings.TrimPrefix(strings.TrimSpace(signature), "0x"))
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrMalformedSignature, err)
	}
	if len(sig) != crypto.SignatureLength {
		return false, fmt.Errorf("%w: expected %d bytes, got %d", ErrMalformedSignature, crypto.SignatureLength, len(sig))
	}

	// wallets emit v as 27/28
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}
	if sig[crypto.RecoveryIDOffset] > 1 {
		return false, nil
	}

	pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return false, nil
	}

	return crypto.PubkeyToAddress(*pub) == claimed, nil
}

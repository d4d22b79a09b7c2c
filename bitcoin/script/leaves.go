// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package script

import (
	"errors"
	"fmt"
)

// xOnlyPubKeySize defines serialized x-only public key size in bytes.
const xOnlyPubKeySize = 32

// ErrInvalidPubKey defines that provided public key is not in x-only form.
var ErrInvalidPubKey = errors.New("public key must be 32-byte x-only")

// NewTimelockLeafScript builds the heir spending path locked until an
// absolute unix time:
// {<locktime> OP_CHECKLOCKTIMEVERIFY OP_DROP <heirPubKey> OP_CHECKSIG}.
func NewTimelockLeafScript(locktime uint32, heirPubKey []byte) ([]byte, error) {
	if len(heirPubKey) != xOnlyPubKeySize {
		return nil, fmt.Errorf("heir key: %w", ErrInvalidPubKey)
	}

	return NewBuilder().
		AddInt64(int64(locktime)).
		AddOp(OP_CHECKLOCKTIMEVERIFY).
		AddOp(OP_DROP).
		AddData(heirPubKey).
		AddOp(OP_CHECKSIG).
		Script()
}

// NewOracleLeafScript builds the oracle co-signature spending path requiring
// both the oracle and the heir signatures:
// {<oraclePubKey> OP_CHECKSIGVERIFY <heirPubKey> OP_CHECKSIG}.
func NewOracleLeafScript(oraclePubKey, heirPubKey []byte) ([]byte, error) {
	if len(oraclePubKey) != xOnlyPubKeySize {
		return nil, fmt.Errorf("oracle key: %w", ErrInvalidPubKey)
	}
	if len(heirPubKey) != xOnlyPubKeySize {
		return nil, fmt.Errorf("heir key: %w", ErrInvalidPubKey)
	}

	return NewBuilder().
		AddData(oraclePubKey).
		AddOp(OP_CHECKSIGVERIFY).
		AddData(heirPubKey).
		AddOp(OP_CHECKSIG).
		Script()
}

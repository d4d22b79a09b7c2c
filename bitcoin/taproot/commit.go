// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package taproot

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
)

// ErrInvalidInternalKey defines that internal key is not a valid x-only public key.
var ErrInvalidInternalKey = errors.New("invalid x-only internal key")

// ErrInvalidTweak defines that the tweak hash is not below the curve order.
// Cryptographically negligible, checked anyway.
var ErrInvalidTweak = errors.New("tweak is not a valid scalar")

// ErrPointAtInfinity defines that tweaking produced the point at infinity.
// Cryptographically negligible, checked anyway.
var ErrPointAtInfinity = errors.New("tweaked key is the point at infinity")

// Commitment defines the result of tweaking an internal key with a tap tree
// merkle root: the x-only output key plus the parity of its Y coordinate,
// needed later to build a control block for script-path spending.
type Commitment struct {
	OutputKey [32]byte
	Parity    byte // 0 - even Y, 1 - odd Y.
}

// Commit tweaks the x-only internal public key with the merkle root:
// Q = P + taggedHash("TapTweak", P || root)*G. Returns the x coordinate of Q
// with its parity bit. Pure function, no state is shared between calls.
func Commit(internalKey []byte, merkleRoot [32]byte) (Commitment, error) {
	// lifts the 32-byte x coordinate to the curve point with even Y.
	internalPubKey, err := schnorr.ParsePubKey(internalKey)
	if err != nil {
		return Commitment{}, fmt.Errorf("%w: %v", ErrInvalidInternalKey, err)
	}

	tweakHash := TaggedHash(TagTapTweak, internalKey, merkleRoot[:])

	var tweak btcec.ModNScalar
	if overflow := tweak.SetBytes(&tweakHash); overflow != 0 {
		return Commitment{}, ErrInvalidTweak
	}

	var internalPoint, tweakPoint, outputPoint btcec.JacobianPoint
	internalPubKey.AsJacobian(&internalPoint)
	btcec.ScalarBaseMultNonConst(&tweak, &tweakPoint)
	btcec.AddNonConst(&internalPoint, &tweakPoint, &outputPoint)

	if (outputPoint.X.IsZero() && outputPoint.Y.IsZero()) || outputPoint.Z.IsZero() {
		return Commitment{}, ErrPointAtInfinity
	}

	outputPoint.ToAffine()

	commitment := Commitment{OutputKey: *outputPoint.X.Bytes()}
	if outputPoint.Y.IsOdd() {
		commitment.Parity = 1
	}

	return commitment, nil
}

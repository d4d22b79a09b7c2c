// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package taproot

import (
	"github.com/emersonliuuu/btcpp-tapheir/bitcoin/script"
)

// WitnessVersion defines segwit witness version of taproot outputs.
const WitnessVersion byte = 1

// PayToTaprootScript returns the version-1 witness output script
// {OP_1 <32-byte output key>} committing to the tweaked key.
func PayToTaprootScript(outputKey [32]byte) []byte {
	// the only possible error is an oversized push, unreachable for a 32-byte key.
	pkScript, _ := script.NewBuilder().
		AddOp(script.OP_1).
		AddData(outputKey[:]).
		Script()

	return pkScript
}

// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package script_test

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btcd/txscript"
	"github.com/stretchr/testify/require"

	"github.com/emersonliuuu/btcpp-tapheir/bitcoin/script"
)

func TestLeafScripts(t *testing.T) {
	heirKey := bytes.Repeat([]byte{0x02}, 32)
	oracleKey := bytes.Repeat([]byte{0x03}, 32)

	t.Run("timelock leaf", func(t *testing.T) {
		const locktime uint32 = 1_700_000_000

		s, err := script.NewTimelockLeafScript(locktime, heirKey)
		require.NoError(t, err)

		expected, err := txscript.NewScriptBuilder().
			AddInt64(int64(locktime)).
			AddOp(txscript.OP_CHECKLOCKTIMEVERIFY).
			AddOp(txscript.OP_DROP).
			AddData(heirKey).
			AddOp(txscript.OP_CHECKSIG).
			Script()
		require.NoError(t, err)
		require.Equal(t, expected, s)
	})

	t.Run("oracle leaf", func(t *testing.T) {
		s, err := script.NewOracleLeafScript(oracleKey, heirKey)
		require.NoError(t, err)

		expected, err := txscript.NewScriptBuilder().
			AddData(oracleKey).
			AddOp(txscript.OP_CHECKSIGVERIFY).
			AddData(heirKey).
			AddOp(txscript.OP_CHECKSIG).
			Script()
		require.NoError(t, err)
		require.Equal(t, expected, s)
	})

	t.Run("rejects non x-only keys", func(t *testing.T) {
		compressed := append([]byte{0x02}, heirKey...)

		_, err := script.NewTimelockLeafScript(1_700_000_000, compressed)
		require.Error(t, err)
		require.ErrorIs(t, err, script.ErrInvalidPubKey)

		_, err = script.NewOracleLeafScript(compressed, heirKey)
		require.Error(t, err)
		require.ErrorIs(t, err, script.ErrInvalidPubKey)

		_, err = script.NewOracleLeafScript(oracleKey, nil)
		require.Error(t, err)
		require.ErrorIs(t, err, script.ErrInvalidPubKey)
	})
}

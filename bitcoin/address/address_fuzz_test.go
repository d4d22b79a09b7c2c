// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package address_test

import (
	"bytes"
	"testing"

	"github.com/emersonliuuu/btcpp-tapheir/bitcoin"
	"github.com/emersonliuuu/btcpp-tapheir/bitcoin/address"
)

func FuzzTaprootAddressRoundTrip(f *testing.F) {
	f.Add(make([]byte, 32))
	f.Add(bytes.Repeat([]byte{0xff}, 32))

	f.Fuzz(func(t *testing.T, keyBytes []byte) {
		if len(keyBytes) != 32 {
			t.Skip()
		}

		var outputKey [32]byte
		copy(outputKey[:], keyBytes)

		for _, network := range []bitcoin.Network{bitcoin.NetworkMain, bitcoin.NetworkTest} {
			addr := address.EncodeTaproot(network, outputKey)
			if !address.IsValidTaprootAddress(network, addr) {
				t.Errorf("produced address %q is not valid on %s", addr, network)
			}

			decodedNetwork, _, program, err := address.DecodeTaproot(addr)
			if err != nil {
				t.Errorf("decode %q: %v", addr, err)
				continue
			}
			if decodedNetwork != network || !bytes.Equal(program, outputKey[:]) {
				t.Errorf("round trip mismatch for %q", addr)
			}
		}
	})
}

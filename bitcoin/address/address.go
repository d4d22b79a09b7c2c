// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package address

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emersonliuuu/btcpp-tapheir/bitcoin"
	"github.com/emersonliuuu/btcpp-tapheir/bitcoin/taproot"
	"github.com/emersonliuuu/btcpp-tapheir/internal/bitgroups"
)

// ErrInvalidAddress defines that provided string is not a valid taproot address.
var ErrInvalidAddress = errors.New("invalid taproot address")

// EncodeTaproot returns the bech32m address of a 32-byte taproot output key
// on the given network, in canonical lowercase form.
func EncodeTaproot(network bitcoin.Network, outputKey [32]byte) string {
	// regrouping a fixed 32-byte program with padding cannot fail.
	program, _ := bitgroups.Regroup(outputKey[:], 8, 5, true)

	return encodeBech32m(network.Bech32HRP(), append([]byte{taproot.WitnessVersion}, program...))
}

// DecodeTaproot parses a taproot address back into its network, witness
// version and the 32-byte output key program. Checksum mismatch, foreign
// prefix, non-taproot witness version and malformed programs all fail with
// ErrInvalidAddress.
func DecodeTaproot(address string) (bitcoin.Network, byte, []byte, error) {
	hrp, data, err := decodeBech32m(address)
	if err != nil {
		return 0, 0, nil, err
	}

	network, err := bitcoin.NetworkFromBech32HRP(hrp)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("%w: prefix %q", ErrInvalidAddress, hrp)
	}

	if len(data) == 0 {
		return 0, 0, nil, fmt.Errorf("%w: missing witness version", ErrInvalidAddress)
	}
	version := data[0]
	if version != taproot.WitnessVersion {
		return 0, 0, nil, fmt.Errorf("%w: witness version %d", ErrInvalidAddress, version)
	}

	program, err := bitgroups.Regroup(data[1:], 5, 8, false)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if len(program) != 32 {
		return 0, 0, nil, fmt.Errorf("%w: program length %d", ErrInvalidAddress, len(program))
	}

	return network, version, program, nil
}

// IsValidTaprootAddress reports whether address is a canonical lowercase
// taproot address of the given network. Never fails: any malformed input is
// reported as not valid.
func IsValidTaprootAddress(network bitcoin.Network, address string) bool {
	if !strings.HasPrefix(address, network.TaprootAddressPrefix()) {
		return false
	}

	decodedNetwork, version, _, err := DecodeTaproot(address)

	return err == nil && decodedNetwork == network && version == taproot.WitnessVersion
}

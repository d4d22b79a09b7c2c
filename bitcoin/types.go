// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package bitcoin

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
)

// ErrUnknownNetwork defines that provided network is not supported.
var ErrUnknownNetwork = errors.New("unknown network")

// Network defines bitcoin network kind. It fixes the bech32 human-readable
// prefix, the taproot address prefix and the WIF private key version byte,
// and must be threaded explicitly through every address/key operation.
type Network byte

const (
	// NetworkMain defines bitcoin main network.
	NetworkMain Network = iota
	// NetworkTest defines bitcoin test network (testnet3).
	NetworkTest
)

// Bech32HRP returns bech32/bech32m human-readable prefix of the network.
func (network Network) Bech32HRP() string {
	if network == NetworkMain {
		return "bc"
	}

	return "tb"
}

// TaprootAddressPrefix returns expected prefix of taproot (witness v1) addresses
// in canonical lowercase form.
func (network Network) TaprootAddressPrefix() string {
	return network.Bech32HRP() + "1p"
}

// WIFNetID returns WIF private key version byte of the network.
func (network Network) WIFNetID() byte {
	return network.ChainParams().PrivateKeyID
}

// ChainParams returns btcd chain parameters of the network.
func (network Network) ChainParams() *chaincfg.Params {
	if network == NetworkMain {
		return &chaincfg.MainNetParams
	}

	return &chaincfg.TestNet3Params
}

// String returns Network as string.
func (network Network) String() string {
	switch network {
	case NetworkMain:
		return "mainnet"
	case NetworkTest:
		return "testnet"
	}

	return fmt.Sprintf("network(%d)", byte(network))
}

// NetworkFromBech32HRP parses Network from bech32 human-readable prefix if any.
func NetworkFromBech32HRP(hrp string) (Network, error) {
	switch hrp {
	case "bc":
		return NetworkMain, nil
	case "tb":
		return NetworkTest, nil
	}

	return 0, ErrUnknownNetwork
}

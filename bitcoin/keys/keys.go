// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package keys

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"

	"github.com/emersonliuuu/btcpp-tapheir/bitcoin"
)

const (
	// XOnlyPubKeySize defines serialized x-only public key size in bytes.
	XOnlyPubKeySize = 32
	// CompressedPubKeySize defines serialized compressed public key size in bytes.
	CompressedPubKeySize = 33
	// UncompressedPubKeySize defines serialized uncompressed public key size in bytes.
	UncompressedPubKeySize = 65
)

// ErrInvalidPublicKey defines that provided bytes are not a known public key encoding.
var ErrInvalidPublicKey = errors.New("invalid public key encoding")

// ErrWrongNetworkWIF defines that WIF version byte belongs to another network.
var ErrWrongNetworkWIF = errors.New("wif encoded for another network")

// GenerateKeyPair returns a fresh random private key. The public key is
// derivable from it; callers own the private key lifecycle and must never
// log or persist it in the clear.
func GenerateKeyPair() (*btcec.PrivateKey, error) {
	return btcec.NewPrivateKey()
}

// XOnly normalizes a serialized public key to its 32-byte x-only form:
// x-only input is returned as is, compressed and uncompressed encodings are
// stripped of their format prefix (and, for uncompressed, the Y coordinate).
func XOnly(pubKey []byte) ([]byte, error) {
	switch len(pubKey) {
	case XOnlyPubKeySize:
		normalized := make([]byte, XOnlyPubKeySize)
		copy(normalized, pubKey)

		return normalized, nil
	case CompressedPubKeySize, UncompressedPubKeySize:
		// parse to reject prefixes and points not on the curve.
		parsed, err := btcec.ParsePubKey(pubKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
		}

		return parsed.SerializeCompressed()[1:], nil
	}

	return nil, fmt.Errorf("%w: %d bytes", ErrInvalidPublicKey, len(pubKey))
}

// ExportWIF returns the private key in wallet import format for the given
// network, flagged for compressed public key derivation.
func ExportWIF(network bitcoin.Network, privateKey *btcec.PrivateKey) (string, error) {
	wif, err := btcutil.NewWIF(privateKey, network.ChainParams(), true)
	if err != nil {
		return "", err
	}

	return wif.String(), nil
}

// ImportWIF decodes a WIF string and checks its version byte against the
// given network. Returns raw private key material untouched.
func ImportWIF(network bitcoin.Network, encoded string) (*btcec.PrivateKey, error) {
	wif, err := btcutil.DecodeWIF(encoded)
	if err != nil {
		return nil, err
	}

	if !wif.IsForNet(network.ChainParams()) {
		return nil, ErrWrongNetworkWIF
	}

	return wif.PrivKey, nil
}

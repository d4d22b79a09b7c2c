// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package trust

import (
	"encoding/hex"
	"fmt"

	"github.com/emersonliuuu/btcpp-tapheir/bitcoin"
	"github.com/emersonliuuu/btcpp-tapheir/bitcoin/address"
	"github.com/emersonliuuu/btcpp-tapheir/bitcoin/keys"
	"github.com/emersonliuuu/btcpp-tapheir/bitcoin/script"
	"github.com/emersonliuuu/btcpp-tapheir/bitcoin/taproot"
)

// Params describes data needed to set up a taproot inheritance trust.
// Public keys are accepted in x-only, compressed or uncompressed form.
type Params struct {
	Network        bitcoin.Network
	InternalPubKey []byte // owner key the output commits to.
	HeirPubKey     []byte // key allowed to spend after the timelock.
	OraclePubKey   []byte // key co-signing the early spending path.
	LockTime       uint32 // absolute unix time of the heir path (BIP65).
}

// Trust describes an established taproot inheritance trust: a taproot output
// committing to the owner internal key and a two-leaf script tree with a
// timelocked heir path and an oracle co-signature path. Immutable once
// constructed.
type Trust struct {
	Network        bitcoin.Network
	InternalPubKey []byte // x-only.
	HeirPubKey     []byte // x-only.
	OraclePubKey   []byte // x-only.
	LockTime       uint32
	TimelockScript []byte
	OracleScript   []byte
	MerkleRoot     [32]byte
	OutputKey      [32]byte
	Parity         byte
	Address        string
	OutputScript   []byte // {OP_1 <output key>}.
}

// New assembles a trust from params: validates the locktime, normalizes all
// keys to x-only form, compiles both leaf scripts, commits the internal key
// to the script tree and renders the address. Any failure aborts the whole
// construction, no partial trust is ever returned.
func New(params Params) (*Trust, error) {
	if err := bitcoin.ValidateLockTime(params.LockTime); err != nil {
		return nil, err
	}

	internalKey, err := keys.XOnly(params.InternalPubKey)
	if err != nil {
		return nil, fmt.Errorf("internal key: %w", err)
	}

	heirKey, err := keys.XOnly(params.HeirPubKey)
	if err != nil {
		return nil, fmt.Errorf("heir key: %w", err)
	}

	oracleKey, err := keys.XOnly(params.OraclePubKey)
	if err != nil {
		return nil, fmt.Errorf("oracle key: %w", err)
	}

	timelockScript, err := script.NewTimelockLeafScript(params.LockTime, heirKey)
	if err != nil {
		return nil, err
	}

	oracleScript, err := script.NewOracleLeafScript(oracleKey, heirKey)
	if err != nil {
		return nil, err
	}

	tree, err := taproot.NewTree(
		taproot.NewBaseLeaf(timelockScript),
		taproot.NewBaseLeaf(oracleScript),
	)
	if err != nil {
		return nil, err
	}

	merkleRoot := tree.MerkleRoot()
	commitment, err := taproot.Commit(internalKey, merkleRoot)
	if err != nil {
		return nil, err
	}

	trust := &Trust{
		Network:        params.Network,
		InternalPubKey: internalKey,
		HeirPubKey:     heirKey,
		OraclePubKey:   oracleKey,
		LockTime:       params.LockTime,
		TimelockScript: timelockScript,
		OracleScript:   oracleScript,
		MerkleRoot:     merkleRoot,
		OutputKey:      commitment.OutputKey,
		Parity:         commitment.Parity,
		Address:        address.EncodeTaproot(params.Network, commitment.OutputKey),
		OutputScript:   taproot.PayToTaprootScript(commitment.OutputKey),
	}

	// the address must always decode back to the committed output key.
	if !address.IsValidTaprootAddress(params.Network, trust.Address) {
		return nil, fmt.Errorf("produced address failed validation: %s", trust.Address)
	}

	return trust, nil
}

// OutputScriptHex returns the output script as hex for embedding into a
// funding transaction by an external transaction builder.
func (trust *Trust) OutputScriptHex() string {
	return hex.EncodeToString(trust.OutputScript)
}

// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package taproot

import (
	"bytes"
	"errors"

	"github.com/emersonliuuu/btcpp-tapheir/internal/compactsize"
)

// BaseLeafVersion defines tapscript leaf version used for all trust leaves.
const BaseLeafVersion byte = 0xc0

// ErrEmptyTree defines that a tap tree was built without any leaves.
var ErrEmptyTree = errors.New("tap tree must have at least one leaf")

// ErrEmptyLeafScript defines that a tap leaf holds an empty script.
var ErrEmptyLeafScript = errors.New("tap leaf script must not be empty")

// ErrTooManyLeaves defines that more leaves were provided than the
// two-path trust layout supports.
var ErrTooManyLeaves = errors.New("tap tree supports at most two leaves")

// Leaf defines a single tapscript tree leaf: a script plus its leaf version.
type Leaf struct {
	Script  []byte
	Version byte
}

// NewBaseLeaf returns Leaf with the base tapscript version.
func NewBaseLeaf(script []byte) Leaf {
	return Leaf{Script: script, Version: BaseLeafVersion}
}

// Hash returns tagged leaf hash over {version || compactSize(script) || script}.
func (leaf Leaf) Hash() [32]byte {
	return TaggedHash(TagTapLeaf, []byte{leaf.Version}, compactsize.PrependTo(leaf.Script))
}

// Tree defines a tapscript tree of one or two leaves. The merkle root is a
// pure function of the leaf set: leaf insertion order does not affect it.
type Tree struct {
	leaves []Leaf
}

// NewTree is a constructor for Tree. The two-path trust layout never needs
// deeper trees, so leaf counts above two are rejected rather than merged
// into inner branches.
func NewTree(leaves ...Leaf) (*Tree, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyTree
	}
	if len(leaves) > 2 {
		return nil, ErrTooManyLeaves
	}

	for _, leaf := range leaves {
		if len(leaf.Script) == 0 {
			return nil, ErrEmptyLeafScript
		}
	}

	tree := &Tree{leaves: make([]Leaf, len(leaves))}
	copy(tree.leaves, leaves)

	return tree, nil
}

// Leaves returns a copy of tree leaves.
func (tree *Tree) Leaves() []Leaf {
	leaves := make([]Leaf, len(tree.leaves))
	copy(leaves, tree.leaves)

	return leaves
}

// MerkleRoot returns the tap tree merkle root. A single leaf is its own
// root; for two leaves the branch hash orders the children by raw byte
// comparison of their hashes, as BIP341 requires.
func (tree *Tree) MerkleRoot() [32]byte {
	if len(tree.leaves) == 1 {
		return tree.leaves[0].Hash()
	}

	left, right := tree.leaves[0].Hash(), tree.leaves[1].Hash()
	if bytes.Compare(right[:], left[:]) < 0 {
		left, right = right, left
	}

	return TaggedHash(TagTapBranch, left[:], right[:])
}

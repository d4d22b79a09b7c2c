// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package taproot

import (
	"crypto/sha256"
)

// Hash tags used by the BIP341 commitment scheme. Tagging derives a
// per-domain sha256 midstate so hashes from different contexts never collide.
const (
	// TagTapLeaf defines tag for hashing tap leaves.
	TagTapLeaf = "TapLeaf"
	// TagTapBranch defines tag for hashing pairs of tap tree nodes.
	TagTapBranch = "TapBranch"
	// TagTapTweak defines tag for hashing the internal key tweak.
	TagTapTweak = "TapTweak"
)

// TaggedHash computes sha256(sha256(tag) || sha256(tag) || data...) as
// defined by BIP340. The tag digest is computed fresh on every call.
func TaggedHash(tag string, data ...[]byte) [sha256.Size]byte {
	tagDigest := sha256.Sum256([]byte(tag))

	h := sha256.New()
	h.Write(tagDigest[:])
	h.Write(tagDigest[:])
	for _, chunk := range data {
		h.Write(chunk)
	}

	var digest [sha256.Size]byte
	copy(digest[:], h.Sum(nil))

	return digest
}

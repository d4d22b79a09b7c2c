// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package bitgroups

import (
	"errors"
	"fmt"
)

// ErrInvalidGroupSize defines that requested group size is out of byte range.
var ErrInvalidGroupSize = errors.New("group size must be in range [1, 8]")

// ErrInvalidPadding defines that the sequence ends with non-zero or oversized padding.
var ErrInvalidPadding = errors.New("invalid padding in bit sequence")

// Regroup re-expresses data given as fromBits-wide groups into toBits-wide
// groups, most significant bit first. With pad set, trailing bits are
// zero-padded into a final group; without it, trailing bits must be a valid
// zero padding left by the opposite conversion, otherwise an error is returned.
func Regroup(data []byte, fromBits, toBits byte, pad bool) ([]byte, error) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		return nil, ErrInvalidGroupSize
	}

	regrouped := make([]byte, 0, (len(data)*int(fromBits)+int(toBits)-1)/int(toBits))

	var acc uint32
	var bits byte
	maxValue := byte(1<<toBits - 1)
	for idx, value := range data {
		if value>>fromBits != 0 {
			return nil, fmt.Errorf("value %d at position %d exceeds %d bits", value, idx, fromBits)
		}

		acc = acc<<fromBits | uint32(value)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			regrouped = append(regrouped, byte(acc>>bits)&maxValue)
		}
	}

	if pad {
		if bits > 0 {
			regrouped = append(regrouped, byte(acc<<(toBits-bits))&maxValue)
		}
	} else if bits >= fromBits || byte(acc<<(toBits-bits))&maxValue != 0 {
		return nil, ErrInvalidPadding
	}

	return regrouped, nil
}

// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package compactsize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emersonliuuu/btcpp-tapheir/internal/compactsize"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		n        uint64
		expected []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{0xfc, []byte{0xfc}},
		{0xfd, []byte{0xfd, 0xfd, 0x00}},
		{0xffff, []byte{0xfd, 0xff, 0xff}},
		{0x10000, []byte{0xfe, 0x00, 0x00, 0x01, 0x00}},
		{0xffff_ffff, []byte{0xfe, 0xff, 0xff, 0xff, 0xff}},
		{0x1_0000_0000, []byte{0xff, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00}},
	}

	for _, test := range tests {
		require.Equal(t, test.expected, compactsize.Encode(test.n))
	}
}

func TestPrependTo(t *testing.T) {
	data := []byte{0xaa, 0xbb, 0xcc}
	require.Equal(t, []byte{0x03, 0xaa, 0xbb, 0xcc}, compactsize.PrependTo(data))

	require.Equal(t, []byte{0x00}, compactsize.PrependTo(nil))
}

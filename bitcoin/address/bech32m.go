// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package address

import (
	"fmt"
	"strings"
)

// charset defines the 32-symbol alphabet of bech32/bech32m data parts.
const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// bech32mConst defines the checksum constant distinguishing bech32m (BIP350)
// from the original bech32 encoding.
const bech32mConst uint32 = 0x2bc830a3

// checksumLength defines the number of 5-bit checksum groups.
const checksumLength = 6

// generator defines the coefficients of the bech32 BCH checksum polynomial.
var generator = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

// polymod computes the bech32 checksum residue over the given 5-bit groups.
func polymod(values []byte) uint32 {
	checksum := uint32(1)
	for _, value := range values {
		top := checksum >> 25
		checksum = (checksum&0x1ffffff)<<5 ^ uint32(value)
		for i := 0; i < 5; i++ {
			if (top>>uint(i))&1 == 1 {
				checksum ^= generator[i]
			}
		}
	}

	return checksum
}

// expandHRP returns the checksum pre-image groups of the human-readable prefix:
// high bits of every character, a zero separator, then the low bits.
func expandHRP(hrp string) []byte {
	expanded := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		expanded = append(expanded, hrp[i]>>5)
	}

	expanded = append(expanded, 0)
	for i := 0; i < len(hrp); i++ {
		expanded = append(expanded, hrp[i]&31)
	}

	return expanded
}

// createChecksum returns the six 5-bit checksum groups for hrp plus data.
func createChecksum(hrp string, data []byte) []byte {
	values := append(expandHRP(hrp), data...)
	values = append(values, make([]byte, checksumLength)...)

	residue := polymod(values) ^ bech32mConst

	checksum := make([]byte, checksumLength)
	for i := range checksum {
		checksum[i] = byte(residue>>uint(5*(5-i))) & 31
	}

	return checksum
}

// verifyChecksum reports whether the data part (checksum included) is
// consistent with hrp under the bech32m constant.
func verifyChecksum(hrp string, data []byte) bool {
	return polymod(append(expandHRP(hrp), data...)) == bech32mConst
}

// encodeBech32m assembles hrp, 5-bit data groups and checksum into an address string.
func encodeBech32m(hrp string, data []byte) string {
	var builder strings.Builder
	builder.WriteString(hrp)
	builder.WriteByte('1')
	for _, group := range data {
		builder.WriteByte(charset[group])
	}
	for _, group := range createChecksum(hrp, data) {
		builder.WriteByte(charset[group])
	}

	return builder.String()
}

// decodeBech32m splits an address into hrp and 5-bit data groups, verifying
// character set, uniform case and the bech32m checksum.
func decodeBech32m(address string) (string, []byte, error) {
	if len(address) > 90 {
		return "", nil, fmt.Errorf("%w: longer than 90 characters", ErrInvalidAddress)
	}
	if strings.ToLower(address) != address && strings.ToUpper(address) != address {
		return "", nil, fmt.Errorf("%w: mixed case", ErrInvalidAddress)
	}

	address = strings.ToLower(address)

	separator := strings.LastIndexByte(address, '1')
	if separator < 1 || separator+checksumLength+1 > len(address) {
		return "", nil, fmt.Errorf("%w: malformed separator", ErrInvalidAddress)
	}

	hrp := address[:separator]
	for i := 0; i < len(hrp); i++ {
		if hrp[i] < 33 || hrp[i] > 126 {
			return "", nil, fmt.Errorf("%w: invalid prefix character", ErrInvalidAddress)
		}
	}

	dataPart := address[separator+1:]
	data := make([]byte, len(dataPart))
	for i := 0; i < len(dataPart); i++ {
		value := strings.IndexByte(charset, dataPart[i])
		if value == -1 {
			return "", nil, fmt.Errorf("%w: invalid data character %q", ErrInvalidAddress, dataPart[i])
		}

		data[i] = byte(value)
	}

	if !verifyChecksum(hrp, data) {
		return "", nil, fmt.Errorf("%w: checksum mismatch", ErrInvalidAddress)
	}

	return hrp, data[:len(data)-checksumLength], nil
}

// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package script

import (
	"errors"
	"fmt"
)

// ErrNegativeInt defines that a negative integer was pushed. Locktimes and
// signature counters are never negative in trust scripts.
var ErrNegativeInt = errors.New("negative integer push")

// ErrPushTooLarge defines that a data push exceeds the single-byte length limit.
var ErrPushTooLarge = errors.New("data push exceeds single-byte length limit")

// Builder assembles a script from primitive operations. Methods collect
// operations and remember the first encoding error; Script returns the
// assembled bytes or that error. The zero value is ready to use.
type Builder struct {
	script []byte
	err    error
}

// NewBuilder is a constructor for Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddOp appends a single opcode.
func (b *Builder) AddOp(op byte) *Builder {
	if b.err != nil {
		return b
	}

	b.script = append(b.script, op)

	return b
}

// AddData appends a minimally-encoded data push: a single length byte
// followed by the data. Pushes above 75 bytes are rejected since no trust
// script produces them.
func (b *Builder) AddData(data []byte) *Builder {
	if b.err != nil {
		return b
	}

	if len(data) > maxSingleBytePushSize {
		b.err = fmt.Errorf("%w: %d bytes", ErrPushTooLarge, len(data))
		return b
	}

	b.script = append(b.script, byte(len(data)))
	b.script = append(b.script, data...)

	return b
}

// AddInt64 appends a minimally-encoded integer push: OP_0 for zero,
// OP_1 through OP_16 for small values, otherwise a data push of the
// number in signed little-endian form.
func (b *Builder) AddInt64(n int64) *Builder {
	if b.err != nil {
		return b
	}

	if n < 0 {
		b.err = fmt.Errorf("%w: %d", ErrNegativeInt, n)
		return b
	}

	if n == 0 {
		return b.AddOp(OP_0)
	}
	if n <= 16 {
		return b.AddOp(OP_1 + byte(n-1))
	}

	return b.AddData(scriptNumBytes(n))
}

// Script returns the assembled script, or the first error collected while
// adding operations.
func (b *Builder) Script() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}

	return b.script, nil
}

// scriptNumBytes returns the minimal signed little-endian encoding of a
// non-negative number: redundant high zero bytes are stripped and a zero
// sign-extension byte is appended when the high bit of the last data byte
// would otherwise flip the sign.
func scriptNumBytes(n int64) []byte {
	encoded := make([]byte, 0, 5)
	for n > 0 {
		encoded = append(encoded, byte(n&0xff))
		n >>= 8
	}

	if encoded[len(encoded)-1]&0x80 != 0 {
		encoded = append(encoded, 0x00)
	}

	return encoded
}

// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package script

// Opcodes used by trust leaf scripts. Values follow the bitcoin script
// specification.
const (
	// OP_0 pushes an empty byte array onto the stack.
	OP_0 = 0x00
	// OP_1 pushes the number 1 onto the stack. OP_2 through OP_16 follow
	// sequentially from this value.
	OP_1 = 0x51
	// OP_16 pushes the number 16 onto the stack.
	OP_16 = 0x60
	// OP_DROP removes the top stack item.
	OP_DROP = 0x75
	// OP_CHECKSIG verifies a signature against a public key.
	OP_CHECKSIG = 0xac
	// OP_CHECKSIGVERIFY is OP_CHECKSIG followed by OP_VERIFY.
	OP_CHECKSIGVERIFY = 0xad
	// OP_CHECKLOCKTIMEVERIFY fails the script if the transaction locktime
	// is below the top stack item (BIP65).
	OP_CHECKLOCKTIMEVERIFY = 0xb1
)

// maxSingleBytePushSize defines the largest data push encoded with a plain
// single-byte length prefix. Larger pushes need OP_PUSHDATA variants which
// no trust script requires.
const maxSingleBytePushSize = 75

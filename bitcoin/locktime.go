// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package bitcoin

import (
	"errors"
	"time"
)

// LockTimeThreshold defines the boundary between block-height and unix-time
// interpretation of absolute locktimes (BIP65). Values below it are treated
// by consensus as block heights, so time-based locks must stay above it.
const LockTimeThreshold uint32 = 500_000_000

// ErrInvalidLockTime defines that provided locktime is not an absolute unix time.
var ErrInvalidLockTime = errors.New("locktime is below unix-time threshold")

// ValidateLockTime checks that locktime is interpretable as absolute unix time.
func ValidateLockTime(locktime uint32) error {
	if locktime < LockTimeThreshold {
		return ErrInvalidLockTime
	}

	return nil
}

// LockTimeAfter returns absolute unix-time locktime at the given duration
// past now, truncated to whole seconds.
func LockTimeAfter(now time.Time, duration time.Duration) uint32 {
	return uint32(now.Add(duration).Unix())
}

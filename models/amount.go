// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"strconv"
)

// Amount is a value in millisatoshis, the smallest unit the wallet daemon
// reports. The terminal front-end always displays whole satoshis.
type Amount int64

// MaxSats is the largest satoshi value whose millisatoshi form fits in an
// [Amount].
const MaxSats = math.MaxInt64 / 1000

// AmountFromSats converts a satoshi value into an [Amount]. sats must be in
// [-MaxSats, MaxSats]; callers taking user input check [SatsInRange] first.
func AmountFromSats(sats int64) Amount {
	return Amount(sats * 1000)
}

// SatsInRange reports whether sats converts to an [Amount] without
// overflowing.
func SatsInRange(sats int64) bool {
	return sats >= -MaxSats && sats <= MaxSats
}

// Sats returns the amount truncated to whole satoshis.
func (a Amount) Sats() int64 {
	return int64(a) / 1000
}

// Msats returns the raw millisatoshi value.
func (a Amount) Msats() int64 {
	return int64(a)
}

// String formats the amount as "<sats> sats".
func (a Amount) String() string {
	return strconv.FormatInt(a.Sats(), 10) + " sats"
}

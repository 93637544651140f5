// Package count accumulates the numeric repeat prefix typed before a
// normal-mode action ("3l" moves right three times).
package count

import (
	"math"
	"strconv"
)

// Max caps the accumulated value. Larger prefixes are clamped.
const Max = 9999

// Buffer tracks count prefix accumulation.
// The zero value is an empty buffer.
type Buffer struct {
	value  int
	active bool
}

// Reset clears the buffer.
func (b *Buffer) Reset() {
	b.value = 0
	b.active = false
}

// Active reports whether any digit has been accumulated.
func (b *Buffer) Active() bool {
	return b.active
}

// Push adds a digit to the count.
// Returns true if the digit was accepted. A leading 0 is not a count
// and is rejected so that it can be looked up as an ordinary key.
func (b *Buffer) Push(digit int) bool {
	if digit < 0 || digit > 9 {
		return false
	}
	if !b.active && digit == 0 {
		return false
	}

	b.active = true

	// Guard against overflow before clamping
	if b.value > (math.MaxInt-digit)/10 {
		b.value = Max
		return true
	}

	b.value = b.value*10 + digit
	if b.value > Max {
		b.value = Max
	}
	return true
}

// Get returns the effective count (1 if no count was specified).
func (b *Buffer) Get() int {
	if b.value <= 0 {
		return 1
	}
	return b.value
}

// Take returns the effective count and resets the buffer.
func (b *Buffer) Take() int {
	n := b.Get()
	b.Reset()
	return n
}

// Pending returns the digits typed so far, or "" when empty.
func (b *Buffer) Pending() string {
	if !b.active {
		return ""
	}
	return strconv.Itoa(b.value)
}

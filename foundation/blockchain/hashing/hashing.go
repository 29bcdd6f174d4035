// Package hashing provides the digest functions used to link blocks and
// solve the proof of work puzzle.
package hashing

import (
	"crypto/sha256"
	"encoding/json"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ZeroHash represents a hash code of zeros. It is returned when a value
// can't be marshaled.
const ZeroHash string = "0x0000000000000000000000000000000000000000000000000000000000000000"

// =============================================================================

// Hash returns a unique string for the value. The value is marshaled to JSON
// first, so struct values hash their fields in declared order and two
// equal values always produce the same digest.
func Hash(value any) string {
	data, err := json.Marshal(value)
	if err != nil {
		return ZeroHash
	}

	return Sum(data)
}

// Sum returns the 0x prefixed hex encoding of the sha256 of the data.
func Sum(data []byte) string {
	hash := sha256.Sum256(data)
	return hexutil.Encode(hash[:])
}

// HexDigits strips the 0x prefix from a hash produced by this package.
func HexDigits(hash string) string {
	return strings.TrimPrefix(hash, "0x")
}

// HasLeadingZeros reports whether the hex digits of the hash begin with
// the specified number of zero characters.
func HasLeadingZeros(hash string, zeros uint16) bool {
	digits := HexDigits(hash)
	if int(zeros) > len(digits) {
		return false
	}

	for i := 0; i < int(zeros); i++ {
		if digits[i] != '0' {
			return false
		}
	}

	return true
}

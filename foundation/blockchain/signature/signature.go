// Package signature provides helper functions for handling the blockchain
// digest needs.
package signature

import (
	"crypto/sha256"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// HashLength is the number of hex characters in a digest produced by Hash.
const HashLength = sha256.Size * 2

// ZeroHash represents a hash code of zeros.
var ZeroHash = strings.Repeat("0", HashLength)

// =============================================================================

// Hash returns the lowercase hex encoded SHA-256 digest of the data. There is
// no 0x prefix so the first character of the result is the first nibble
// of the digest.
func Hash(data string) string {
	hash := sha256.Sum256([]byte(data))
	return common.Bytes2Hex(hash[:])
}

// IsHex reports whether the value is a lowercase hex digest of the
// length produced by Hash.
func IsHex(value string) bool {
	if len(value) != HashLength {
		return false
	}

	for _, c := range value {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		default:
			return false
		}
	}

	return true
}

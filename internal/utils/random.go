package utils

import (
	"crypto/rand"
	"math/big"
)

const pageIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// RandomPageID generates a short random identifier suitable for a memory
// page URL: 8 lowercase base-36 characters.
//
// Uses crypto/rand so generated ids are not guessable from previous ones.
// Collisions are handled by the storage layer's uniqueness constraint.
func RandomPageID() string {
	id := make([]byte, 8)
	max := big.NewInt(int64(len(pageIDAlphabet)))
	for i := range id {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken
			id[i] = pageIDAlphabet[0]
			continue
		}
		id[i] = pageIDAlphabet[n.Int64()]
	}
	return string(id)
}

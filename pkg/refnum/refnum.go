package refnum

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Prefixes for human-readable reference numbers.
const (
	PolicyPrefix = "SM"
	ClaimPrefix  = "CL"
)

// New returns a reference number like "SM-2025-0431": prefix, 4-digit year,
// 4-digit zero-padded random suffix. The suffix alone is not unique — callers
// must check the generated number against storage and retry on collision.
func New(prefix string, year int) string {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		// crypto/rand only fails if the OS entropy source is broken
		panic(err)
	}
	return fmt.Sprintf("%s-%04d-%04d", prefix, year, n.Int64())
}

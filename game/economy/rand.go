package economy

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// NewSeededRand returns a math/rand source seeded from crypto/rand.
// The engine only needs reproducibility under a scripted Rand in tests;
// production requests each get a fresh, unpredictable stream.
func NewSeededRand() *rand.Rand {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic("economy: cannot seed rng: " + err.Error())
	}
	return rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(b[:]))))
}

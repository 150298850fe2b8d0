package palette

import "math/rand/v2"

// RandSource supplies the disclosure tile draw
type RandSource interface {
	// IntN returns a uniform value in [0,n)
	IntN(n int) int
}

// NewRand returns a RandSource that always yields the same sequence for
// the same seed
func NewRand(seed uint64) RandSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	rand "math/rand/v2"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Shoes, bots and the simulator all derive their generators here so a
// single --seed reproduces a whole session.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seed returns seed when it is non-zero and otherwise draws a fresh seed from
// the operating system's entropy source.
func Seed(seed int64) int64 {
	for seed == 0 {
		var buf [8]byte
		_, _ = crand.Read(buf[:])
		seed = int64(binary.LittleEndian.Uint64(buf[:]))
	}
	return seed
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

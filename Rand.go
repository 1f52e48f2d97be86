package Rbst

import (
	"math/rand"
	_ "runtime"
	_ "unsafe"
)

//go:linkname cheapRandN runtime.fastrandn
//go:nosplit
func cheapRandN(n uint32) uint32

// Cheap draws from the runtime's per-thread generator, so it's cheap and
// thread-safe but not seedable. n mustn't exceed math.MaxUint32.
type Cheap struct{}

func (Cheap) Uintn(n uint) uint {
	return uint(cheapRandN(uint32(n)))
}

// LCG is a linear congruential generator with 32 bits of state; the value is
// the state, so the zero value is a valid seeded generator. Constants are from
// Numerical Recipes. The small state makes it fast but a poor choice for very
// large trees.
type LCG uint32

func (u *LCG) Uintn(n uint) uint {
	*u = *u*1664525 + 1013904223
	return uint(*u) % n
}

// Wrap r into a source usable by Trees. r is used unsynchronized.
func Wrap(r *rand.Rand) Seeded {
	return Seeded{r}
}

type Seeded struct {
	r *rand.Rand
}

func (u Seeded) Uintn(n uint) uint {
	return uint(u.r.Int63n(int64(n)))
}

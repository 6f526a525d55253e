package chip8

import (
	"math/rand"
	"time"
)

// RandomSource supplies the random bytes consumed by the RND
// instruction. It is a capability held by the CPU rather than a global
// generator so tests and scripted runs can substitute a deterministic
// sequence.
type RandomSource interface {
	Byte() uint8
}

type timeSeededSource struct {
	r *rand.Rand
}

// NewRandomSource returns the default time-seeded source.
func NewRandomSource() RandomSource {
	return &timeSeededSource{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *timeSeededSource) Byte() uint8 {
	return uint8(s.r.Uint32())
}

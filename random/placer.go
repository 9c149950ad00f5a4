// Package random places targets on free cells at random.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"

	"github.com/cmars/snekpath/snake"
)

// New returns a placer seeded with seed, or from crypto/rand when seed is 0.
func New(seed int64) snake.Placer {
	if seed == 0 {
		seed = reseed()
	}
	return &placer{rng: rand.New(rand.NewSource(seed))}
}

type placer struct {
	rng *rand.Rand
}

func reseed() int64 {
	var b [8]byte
	_, err := crand.Reader.Read(b[:])
	if err != nil {
		return time.Now().UTC().UnixNano()
	}
	seed, _ := binary.Varint(b[:])
	return seed
}

// Place picks uniformly among the cells the body does not cover.
func (p *placer) Place(g snake.Grid, b snake.Body) (snake.Cell, bool) {
	free := make([]snake.Cell, 0, g.Size*g.Size)
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			c := snake.Cell{X: x, Y: y}
			if snake.IsFree(g, b.Segments, c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return snake.Cell{}, false
	}
	return free[p.rng.Intn(len(free))], true
}

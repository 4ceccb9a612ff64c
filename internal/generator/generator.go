// Package generator picks random answers from a word list.
package generator

import (
	"math/rand"
	"slices"
	"time"

	"github.com/samber/lo"
)

// Generator selects words uniformly at random.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Pick returns a uniformly chosen word, or "" for an empty list.
func (g *Generator) Pick(words []string) string {
	if len(words) == 0 {
		return ""
	}
	return words[g.rnd.Intn(len(words))]
}

// PickExcluding picks from words that are not in exclude. When every word is
// excluded it picks from the full list and reports exhausted.
func (g *Generator) PickExcluding(words, exclude []string) (word string, exhausted bool) {
	if len(exclude) == 0 {
		return g.Pick(words), false
	}
	available := lo.Filter(words, func(w string, _ int) bool {
		return !slices.Contains(exclude, w)
	})
	if len(available) == 0 {
		return g.Pick(words), true
	}
	return g.Pick(available), false
}

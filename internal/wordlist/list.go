package wordlist

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/verte-zerg/tuidle/internal/game"
	"github.com/verte-zerg/tuidle/internal/generator"
)

// List is the playable vocabulary. It answers membership queries and picks
// targets, optionally skipping recently played answers.
type List struct {
	words   []string
	set     map[string]struct{}
	gen     *generator.Generator
	recent  []string
	window  int
}

// NewList keeps the valid game-length words. It fails with
// game.ErrConfiguration when none remain.
func NewList(words []string, gen *generator.Generator) (*List, error) {
	words = Normalize(words, FilterLength(game.WordLength))
	if len(words) == 0 {
		return nil, fmt.Errorf("no %d-letter words in list: %w", game.WordLength, game.ErrConfiguration)
	}
	if gen == nil {
		gen = generator.New()
	}
	return &List{
		words: words,
		set:   lo.Keyify(words),
		gen:   gen,
	}, nil
}

// Load builds a list from path, or from the embedded list when path is empty.
func Load(path string, gen *generator.Generator) (*List, error) {
	if path == "" {
		return NewList(DefaultWords(), gen)
	}
	words, err := LoadWords(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load word list %s: %w: %w", path, game.ErrConfiguration, err)
	}
	return NewList(words, gen)
}

// Contains reports whether word is playable.
func (l *List) Contains(word string) bool {
	_, ok := l.set[word]
	return ok
}

// SampleRandom picks a target, avoiding the recent answers while any other
// word remains. The pick itself joins the recent answers.
func (l *List) SampleRandom() string {
	word, _ := l.gen.PickExcluding(l.words, l.recent)
	l.remember(word)
	return word
}

// Len returns the number of playable words.
func (l *List) Len() int {
	return len(l.words)
}

// AvoidRecent makes SampleRandom skip the last n answers. recent seeds the
// window, newest first. n <= 0 turns avoidance off.
func (l *List) AvoidRecent(n int, recent []string) {
	l.window = max(n, 0)
	l.recent = l.recent[:0]
	for _, word := range recent {
		if len(l.recent) == l.window {
			break
		}
		l.recent = append(l.recent, word)
	}
}

func (l *List) remember(word string) {
	if l.window == 0 || word == "" {
		return
	}
	l.recent = append([]string{word}, l.recent...)
	if len(l.recent) > l.window {
		l.recent = l.recent[:l.window]
	}
}

package game

// Keyboard tracks the best verdict seen for each letter a-z.
type Keyboard struct {
	letters [26]Verdict
}

// Upgrade records v for letter unless a better verdict is already known.
// It reports whether the stored verdict changed.
func (k *Keyboard) Upgrade(letter rune, v Verdict) bool {
	idx, ok := letterIndex(letter)
	if !ok {
		return false
	}
	if v <= k.letters[idx] {
		return false
	}
	k.letters[idx] = v
	return true
}

// Get returns the verdict for letter, Unknown for anything outside a-z.
func (k Keyboard) Get(letter rune) Verdict {
	idx, ok := letterIndex(letter)
	if !ok {
		return Unknown
	}
	return k.letters[idx]
}

// Reset marks every letter Unknown.
func (k *Keyboard) Reset() {
	k.letters = [26]Verdict{}
}

func letterIndex(letter rune) (int, bool) {
	if letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	if letter < 'a' || letter > 'z' {
		return 0, false
	}
	return int(letter - 'a'), true
}

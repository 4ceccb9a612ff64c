package game

// WordSource answers membership queries and picks targets.
type WordSource interface {
	Contains(word string) bool
	SampleRandom() string
	Len() int
}

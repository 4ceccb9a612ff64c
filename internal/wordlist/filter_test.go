package wordlist

import (
	"reflect"
	"testing"
)

func TestFilterLength(t *testing.T) {
	filter := FilterLength(5)
	if !filter("hello") {
		t.Fatalf("expected hello to pass")
	}
	for _, word := range []string{"résumé", "naïve", "co-op", "four", "sixsix", "Hello"} {
		if filter(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize([]string{" Apple", "crane", "apple", "co-op", "speed "}, FilterLength(5))
	want := []string{"apple", "crane", "speed"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

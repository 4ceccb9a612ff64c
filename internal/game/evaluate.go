package game

// Evaluate scores guess against target. Exact matches are assigned first and
// consume their target letter; the remaining letters are Present only while
// unconsumed copies are left in the target. It returns nil when the lengths
// differ or either word contains anything other than a-z.
func Evaluate(guess, target string) []Verdict {
	if len(guess) != len(target) || !isLower(guess) || !isLower(target) {
		return nil
	}
	result := make([]Verdict, len(guess))
	var remaining [26]int
	for i := 0; i < len(target); i++ {
		if guess[i] == target[i] {
			result[i] = Correct
			continue
		}
		remaining[target[i]-'a']++
	}
	for i := 0; i < len(guess); i++ {
		if result[i] == Correct {
			continue
		}
		idx := guess[i] - 'a'
		if remaining[idx] > 0 {
			result[i] = Present
			remaining[idx]--
			continue
		}
		result[i] = Absent
	}
	return result
}

func isLower(word string) bool {
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
	}
	return true
}

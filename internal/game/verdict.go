// Package game implements the guessing session, scoring and keyboard state.
package game

// Verdict is the feedback for a single letter. Larger values win when
// verdicts for the same letter are merged.
type Verdict uint8

const (
	// Unknown means the letter has not been tried yet.
	Unknown Verdict = iota
	// Absent means the letter is not in the target (or all its copies are used up).
	Absent
	// Present means the letter is in the target at another position.
	Present
	// Correct means the letter is in the target at this position.
	Correct
)

func (v Verdict) String() string {
	switch v {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Correct:
		return "correct"
	default:
		return "unknown"
	}
}

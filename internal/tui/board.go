package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tuidle/internal/game"
)

var keyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

var (
	tileBase = lipgloss.NewStyle().
			Width(3).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(lipgloss.Color("#F0F0F0"))
	tileEmpty   = tileBase.Copy().Foreground(lipgloss.Color("#3A3A3C")).Background(lipgloss.Color("#121213"))
	tileTyped   = tileBase.Copy().Background(lipgloss.Color("#3A3A3C"))
	tileAbsent  = tileBase.Copy().Background(lipgloss.Color("#3A3A3C")).Foreground(lipgloss.Color("#8C8C8C"))
	tilePresent = tileBase.Copy().Background(lipgloss.Color("#B59F3B"))
	tileCorrect = tileBase.Copy().Background(lipgloss.Color("#538D4E"))
	keyUnknown  = tileBase.Copy().Background(lipgloss.Color("#565758"))
)

func verdictStyle(v game.Verdict) lipgloss.Style {
	switch v {
	case game.Correct:
		return tileCorrect
	case game.Present:
		return tilePresent
	case game.Absent:
		return tileAbsent
	default:
		return tileTyped
	}
}

func keyStyle(v game.Verdict) lipgloss.Style {
	if v == game.Unknown {
		return keyUnknown
	}
	return verdictStyle(v)
}

// renderBoard draws submitted rows, the row being typed and the empty rows left.
func renderBoard(s *game.Session) string {
	rows := s.Rows()
	lines := make([]string, 0, s.MaxAttempts())
	for _, row := range rows {
		tiles := make([]string, len(row.Word))
		for i := 0; i < len(row.Word); i++ {
			tiles[i] = verdictStyle(row.Verdicts[i]).Render(strings.ToUpper(row.Word[i : i+1]))
		}
		lines = append(lines, strings.Join(tiles, " "))
	}
	if !s.Status().Terminal() && len(lines) < s.MaxAttempts() {
		buf := s.Buffer()
		tiles := make([]string, game.WordLength)
		for i := range tiles {
			if i < len(buf) {
				tiles[i] = tileTyped.Render(strings.ToUpper(buf[i : i+1]))
				continue
			}
			tiles[i] = tileEmpty.Render("·")
		}
		lines = append(lines, strings.Join(tiles, " "))
	}
	for len(lines) < s.MaxAttempts() {
		tiles := make([]string, game.WordLength)
		for i := range tiles {
			tiles[i] = tileEmpty.Render("·")
		}
		lines = append(lines, strings.Join(tiles, " "))
	}
	return strings.Join(lines, "\n\n")
}

// renderKeyboard draws the letter keys colored by their best verdict.
func renderKeyboard(kb game.Keyboard) string {
	lines := make([]string, 0, len(keyboardRows)+1)
	for _, row := range keyboardRows {
		keys := make([]string, 0, len(row))
		for _, ch := range row {
			keys = append(keys, keyStyle(kb.Get(ch)).Render(strings.ToUpper(string(ch))))
		}
		lines = append(lines, strings.Join(keys, " "))
	}
	wide := keyUnknown.Copy().Width(0)
	enter := wide.Render(runewidth.FillRight(" ENTER", 8))
	back := wide.Render(runewidth.FillLeft("BACK ", 8))
	lines = append(lines, enter+"  "+back)
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

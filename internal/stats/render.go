package stats

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/verte-zerg/tuidle/internal/model"
)

const (
	terminalWidthBackup = 80
	minBarWidth         = 10
	historyDateLayout   = "2006-01-02 15:04"
)

// RenderReport prints the summary, distribution and history sections.
func RenderReport(w io.Writer, report Report) error {
	if err := RenderSummary(w, report); err != nil {
		return err
	}
	if err := RenderDistribution(w, report.Distribution, terminalWidth()); err != nil {
		return err
	}
	return RenderHistory(w, report.Games)
}

// RenderSummary prints the aggregate counters.
func RenderSummary(w io.Writer, report Report) error {
	st := report.Stats
	lines := []string{
		"Summary",
		fmt.Sprintf("Played: %d", st.GamesPlayed),
		fmt.Sprintf("Win %%: %.0f", WinRate(st)),
		fmt.Sprintf("Current Streak: %d", st.Streak),
		fmt.Sprintf("Max Streak: %d", st.BestStreak),
	}
	if report.AverageGuesses > 0 {
		lines = append(lines, fmt.Sprintf("Avg Guesses: %.2f", report.AverageGuesses))
	}
	if len(report.WinRateTrend) > 1 {
		lines = append(lines, "Win Trend: "+Sparkline(report.WinRateTrend))
	}
	lines = append(lines, "")
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderDistribution prints one bar per guess count, scaled to totalWidth.
func RenderDistribution(w io.Writer, dist []int, totalWidth int) error {
	if len(dist) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Guess Distribution"); err != nil {
		return err
	}
	maxCount := 0
	for _, n := range dist {
		maxCount = max(maxCount, n)
	}
	labelWidth := len(fmt.Sprint(len(dist)))
	countWidth := len(fmt.Sprint(maxCount))
	barWidth := BarWidthFor(totalWidth, labelWidth+countWidth+2)
	for i, n := range dist {
		size := 0
		if maxCount > 0 {
			size = n * barWidth / maxCount
		}
		if n > 0 && size == 0 {
			size = 1
		}
		line := fmt.Sprintf("%*d %s %*d", labelWidth, i+1, runewidth.FillRight(strings.Repeat("#", size), barWidth), countWidth, n)
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderHistory prints finished games as an aligned table.
func RenderHistory(w io.Writer, games []model.GameRecord) error {
	if len(games) == 0 {
		_, err := fmt.Fprintln(w, "No games found.")
		return err
	}
	if _, err := fmt.Fprintln(w, "History"); err != nil {
		return err
	}
	rows := make([][]string, 0, len(games))
	for _, g := range games {
		rows = append(rows, HistoryRow(g))
	}
	for _, line := range formatTable(historyColumns, rows) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// HistoryRow formats a game for tabular output.
func HistoryRow(g model.GameRecord) []string {
	result := "lost"
	guesses := "-"
	if g.Won {
		result = "won"
		guesses = fmt.Sprint(g.Attempts)
	}
	return []string{
		g.EndedAt.Local().Format(historyDateLayout),
		strings.ToUpper(g.Target),
		result,
		guesses,
	}
}

// BarWidthFor returns the bar width left after reserved columns.
func BarWidthFor(totalWidth, reserved int) int {
	if totalWidth <= 0 {
		totalWidth = terminalWidthBackup
	}
	return max(totalWidth-reserved, minBarWidth)
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

// Package tui provides the Bubble Tea game interface.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuidle/internal/game"
	statsPkg "github.com/verte-zerg/tuidle/internal/stats"
)

const (
	msgNotEnough     = "Not enough letters"
	msgUnknownWord   = "Not in word list"
	msgWon           = "You got it!"
	msgStatsNotSaved = "Stats not saved"
)

type messageKind int

const (
	messageNone messageKind = iota
	messageInfo
	messageError
)

// Model implements the Bubble Tea game UI.
type Model struct {
	ctx     context.Context
	ctrl    *game.Controller
	tracker *statsPkg.Tracker
	keys    keyMap
	help    help.Model

	width  int
	height int

	message     string
	messageKind messageKind
	storageNote string
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0F0F0"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Faint(true)
)

// NewModel constructs a game TUI model around a started controller.
func NewModel(ctx context.Context, ctrl *game.Controller, tracker *statsPkg.Tracker) *Model {
	return &Model{
		ctx:     ctx,
		ctrl:    ctrl,
		tracker: tracker,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Submit):
			m.handle(game.Event{Kind: game.EventSubmit})
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			m.handle(game.Event{Kind: game.EventDelete})
			return m, nil
		case key.Matches(msg, m.keys.NewGame):
			m.handle(game.Event{Kind: game.EventNewGame})
			return m, nil
		case msg.Type == tea.KeyRunes:
			for _, r := range msg.Runes {
				m.handle(game.Letter(r))
			}
			return m, nil
		default:
			return m, nil
		}
	default:
		return m, nil
	}
}

func (m *Model) handle(ev game.Event) {
	update, err := m.ctrl.Handle(m.ctx, ev)
	switch {
	case errors.Is(err, game.ErrIncompleteGuess):
		m.setMessage(msgNotEnough, messageError)
		return
	case errors.Is(err, game.ErrUnknownWord):
		m.setMessage(msgUnknownWord, messageError)
		return
	case errors.Is(err, game.ErrGameOver):
		return
	case errors.Is(err, game.ErrStorageUnavailable):
		m.storageNote = msgStatsNotSaved
	case err != nil:
		m.setMessage(err.Error(), messageError)
		return
	}

	switch {
	case update.NewGame:
		m.setMessage("", messageNone)
	case update.Outcome != nil:
		if update.Outcome.Won {
			m.setMessage(msgWon, messageInfo)
		} else {
			m.setMessage(gameOverMessage(update.Outcome.Target), messageInfo)
		}
	case update.Changed && m.messageKind == messageError:
		m.setMessage("", messageNone)
	}
}

func (m *Model) setMessage(text string, kind messageKind) {
	m.message = text
	m.messageKind = kind
}

func gameOverMessage(target string) string {
	return fmt.Sprintf("Game over! The word was %q.", strings.ToUpper(target))
}

// View implements tea.Model.
func (m *Model) View() string {
	session := m.ctrl.Session()
	sections := []string{
		titleStyle.Render("T U I D L E"),
		renderBoard(session),
		m.renderMessage(),
		renderKeyboard(session.Keyboard()),
		m.renderFooter(),
	}
	if session.Status().Terminal() {
		sections = append(sections, footerStyle.Render("ctrl+n new game · esc quit"))
	}
	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	helpView := m.help.View(m.keys)
	if m.width == 0 || m.height == 0 {
		return content + "\n" + helpView
	}
	bodyHeight := m.height - lipgloss.Height(helpView)
	if bodyHeight < 1 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	return body + "\n" + lipgloss.PlaceHorizontal(m.width, lipgloss.Center, helpView)
}

func (m *Model) renderMessage() string {
	switch m.messageKind {
	case messageInfo:
		return infoStyle.Render(m.message)
	case messageError:
		return errorStyle.Render(m.message)
	default:
		return " "
	}
}

func (m *Model) renderFooter() string {
	if m.tracker == nil {
		return ""
	}
	st := m.tracker.Stats()
	segments := []string{
		fmt.Sprintf("Played %d", st.GamesPlayed),
		fmt.Sprintf("Win %.0f%%", statsPkg.WinRate(st)),
		fmt.Sprintf("Streak %d", st.Streak),
		fmt.Sprintf("Best %d", st.BestStreak),
	}
	footer := footerStyle.Render(strings.Join(segments, "  "))
	if m.storageNote != "" {
		footer += "  " + warningStyle.Render(m.storageNote)
	}
	return footer
}

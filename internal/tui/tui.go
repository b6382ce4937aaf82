package tui

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/tatianab/trivial-maison/internal/engine"
	"github.com/tatianab/trivial-maison/internal/models"
)

type sessionState int

const (
	stateSetup sessionState = iota
	statePlaying
	stateError
)

const boardRowLength = 12

type model struct {
	state     sessionState
	catalog   *models.Catalog
	game      models.GameState
	roster    []string
	sessionID string
	random    func() float64
	textInput textinput.Model
	viewport  viewport.Model
	err       error
	notice    string
	gameLog   string
	width     int
	height    int
}

var (
	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	correctStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#76B041")).
			Bold(true)

	wrongStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E4572E")).
			Bold(true)

	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Width(4).
			Align(lipgloss.Center)
)

// NewModel builds the TUI in its setup screen. roster pre-fills the player
// names; random feeds the die and may be nil.
func NewModel(c *models.Catalog, roster []string, random func() float64) model {
	ti := textinput.New()
	ti.Placeholder = "Ada, Grace, ..."
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 40
	if len(roster) > 0 {
		ti.SetValue(strings.Join(roster, ", "))
	}

	return model{
		state:     stateSetup,
		catalog:   c,
		random:    random,
		textInput: ti,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

type diceRolledMsg struct {
	value int
}

// parseRoster splits comma-separated names and checks the roster size.
func parseRoster(input string) ([]string, error) {
	var names []string
	for _, name := range strings.Split(input, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	if len(names) < engine.MinPlayers || len(names) > engine.MaxPlayers {
		return nil, fmt.Errorf("enter between %d and %d names, got %d", engine.MinPlayers, engine.MaxPlayers, len(names))
	}
	return names, nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}
		if m.state == stateSetup && msg.Type == tea.KeyEnter {
			roster, err := parseRoster(m.textInput.Value())
			if err != nil {
				m.notice = err.Error()
				return m, nil
			}
			m.roster = roster
			m.startGame(engine.CreateInitialGameState(roster, m.catalog))
			return m, nil
		}
		if m.state == statePlaying {
			return m.handlePlayingKey(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = int(float64(msg.Width) * 0.70)
		m.viewport.Height = max(msg.Height-boardHeight(m.game)-14, 3)
		if m.state == statePlaying {
			m.viewport.SetContent(m.gameLog)
		}

	case diceRolledMsg:
		// A second press before the first roll lands, or a roll still in
		// flight after leaving the game, must not move anyone.
		if m.state != statePlaying || m.game.Phase != models.PhaseAwaitingRoll {
			return m, nil
		}
		next, err := engine.ApplyRoll(m.game, msg.value)
		if err != nil {
			log.Printf("game %s: %v", m.sessionID, err)
			m.err = err
			m.state = stateError
			return m, nil
		}
		m.game = next
		space := engine.CurrentSpace(next)
		category, _ := engine.CategoryByID(next, space.CategoryID)
		m.appendLog(fmt.Sprintf("%s rolled %d and landed on %s.", engine.CurrentPlayer(next).Name, msg.value, category.Name))
		return m, nil

	}

	if m.state == stateSetup {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) handlePlayingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+r":
		m.startGame(engine.ResetGame(m.game, m.roster, m.catalog))
		return m, nil
	case "ctrl+n":
		m.state = stateSetup
		m.gameLog = ""
		m.notice = ""
		m.textInput.SetValue(strings.Join(m.roster, ", "))
		return m, nil
	}

	switch m.game.Phase {
	case models.PhaseAwaitingRoll:
		if key := msg.String(); key == "r" || key == " " {
			return m, m.rollDie()
		}

	case models.PhaseQuestion:
		choice, err := strconv.Atoi(msg.String())
		if err != nil || choice < 1 || choice > len(m.game.ActiveQuestion.Options) {
			return m, nil
		}
		player := engine.CurrentPlayer(m.game)
		m.game = engine.AnswerQuestion(m.game, choice-1)
		if *m.game.WasAnswerCorrect {
			m.appendLog(correctStyle.Render(player.Name + " answered correctly."))
		} else {
			m.appendLog(wrongStyle.Render(player.Name + " answered wrong."))
		}
		if winner, ok := engine.Winner(m.game); ok {
			m.appendLog(titleStyle.Render(winner.Name + " collected every wedge and wins!"))
		}

	case models.PhaseFeedback:
		if msg.Type == tea.KeyEnter || msg.String() == "n" {
			m.game = engine.ProceedToNextTurn(m.game)
			m.appendLog(fmt.Sprintf("It is %s's turn.", engine.CurrentPlayer(m.game).Name))
		}
	}
	return m, nil
}

func (m *model) startGame(game models.GameState) {
	m.game = game
	m.state = statePlaying
	m.sessionID = uuid.NewString()
	m.notice = ""
	m.gameLog = ""
	logWidth := int(float64(m.width) * 0.70)
	if m.viewport.Width == 0 {
		m.viewport = viewport.New(logWidth, 0)
	}
	m.viewport.Height = max(m.height-boardHeight(game)-14, 3)
	names := make([]string, 0, len(game.Players))
	for _, p := range game.Players {
		names = append(names, p.Name)
	}
	log.Printf("game %s: started with %s", m.sessionID, strings.Join(names, ", "))
	m.appendLog(fmt.Sprintf("New game: %s. %s rolls first.", strings.Join(names, ", "), engine.CurrentPlayer(game).Name))
}

func (m *model) appendLog(line string) {
	log.Printf("game %s: %s", m.sessionID, line)
	m.gameLog += gameStyle.Render(line) + "\n"
	m.viewport.SetContent(m.gameLog)
	m.viewport.GotoBottom()
}

func (m model) View() string {
	var s string

	switch m.state {
	case stateSetup:
		s = fmt.Sprintf(
			"Welcome to Trivial Maison!\n\n%s\n\n%s",
			fmt.Sprintf("Who is playing? Enter %d to %d names separated by commas:", engine.MinPlayers, engine.MaxPlayers),
			m.textInput.View(),
		)
		if m.notice != "" {
			s += "\n\n" + wrongStyle.Render(m.notice)
		}

	case statePlaying:
		mainView := lipgloss.JoinHorizontal(lipgloss.Top,
			m.viewport.View(),
			m.renderScoreboard(),
		)

		s = lipgloss.JoinVertical(lipgloss.Left,
			m.renderBoard(),
			"\n"+mainView,
			"\n"+m.renderTurn(),
			"\n"+helpStyle.Render(m.help()),
		)

	case stateError:
		s = fmt.Sprintf("\n  Error: %v\n\nPress Esc to quit.", m.err)
	}

	return "\n" + s + "\n"
}

func boardHeight(game models.GameState) int {
	return (len(game.Board) + boardRowLength - 1) / boardRowLength
}

func (m model) renderBoard() string {
	colors := make(map[string]string, len(m.game.Categories))
	for _, c := range m.game.Categories {
		colors[c.ID] = c.Color
	}

	var rows []string
	var cells []string
	for _, space := range m.game.Board {
		label := "·"
		if space.IsWedge {
			label = "◆"
		}
		for i, p := range m.game.Players {
			if p.Position == space.Index {
				label = strconv.Itoa(i + 1)
				break
			}
		}
		cells = append(cells, cellStyle.Background(lipgloss.Color(colors[space.CategoryID])).Render(label))
		if len(cells) == boardRowLength {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
			cells = nil
		}
	}
	if len(cells) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m model) renderScoreboard() string {
	content := titleStyle.Render("PLAYERS") + "\n"
	for i, p := range m.game.Players {
		marker := "  "
		if i == m.game.CurrentPlayerIndex {
			marker = "▶ "
		}
		content += fmt.Sprintf("%s%d. %s  score %d\n   ", marker, i+1, p.Name, p.Score)
		for _, c := range m.game.Categories {
			if p.HasWedge(c.ID) {
				content += lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Render("◆")
			} else {
				content += "·"
			}
		}
		content += "\n"
	}

	content += "\n" + titleStyle.Render("CATEGORIES") + "\n"
	for _, c := range m.game.Categories {
		content += lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Render("■") + " " + c.Name + "\n"
	}

	stateWidth := int(float64(m.width) * 0.27)
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(content)
}

func (m model) renderTurn() string {
	player := engine.CurrentPlayer(m.game)

	switch m.game.Phase {
	case models.PhaseAwaitingRoll:
		return fmt.Sprintf("%s, press r to roll the die.", player.Name)

	case models.PhaseQuestion, models.PhaseFeedback:
		q := m.game.ActiveQuestion
		space := engine.CurrentSpace(m.game)
		category, _ := engine.CategoryByID(m.game, q.CategoryID)
		header := fmt.Sprintf("%s rolled %d: %s", player.Name, *m.game.DiceValue, category.Name)
		if space.IsWedge {
			header += " (wedge space)"
		}
		s := titleStyle.Render(header) + "\n" + q.Prompt + "\n"
		for i, option := range q.Options {
			line := fmt.Sprintf("  %d) %s", i+1, option)
			if m.game.Phase == models.PhaseFeedback {
				switch {
				case i == q.AnswerIndex:
					line = correctStyle.Render(line)
				case i == *m.game.SelectedAnswerIndex:
					line = wrongStyle.Render(line)
				}
			}
			s += line + "\n"
		}
		if m.game.Phase == models.PhaseFeedback {
			if *m.game.WasAnswerCorrect {
				s += correctStyle.Render("Correct!")
			} else {
				s += wrongStyle.Render("Wrong! The answer was " + q.Options[q.AnswerIndex] + ".")
			}
		}
		return s

	case models.PhaseFinished:
		winner, _ := engine.Winner(m.game)
		return titleStyle.Render(fmt.Sprintf("%s wins with %d points!", winner.Name, winner.Score))
	}
	return ""
}

func (m model) help() string {
	switch m.game.Phase {
	case models.PhaseQuestion:
		return "Press 1-" + strconv.Itoa(len(m.game.ActiveQuestion.Options)) + " to answer. ctrl+r restart, ctrl+n new players, esc quit."
	case models.PhaseFeedback:
		return "Press enter for the next turn. ctrl+r restart, ctrl+n new players, esc quit."
	case models.PhaseFinished:
		return "ctrl+r play again, ctrl+n new players, esc quit."
	}
	return "r roll, ctrl+r restart, ctrl+n new players, esc quit."
}

func (m model) rollDie() tea.Cmd {
	random := m.random
	return func() tea.Msg {
		return diceRolledMsg{engine.RollDie(random)}
	}
}

// Run starts the full-screen game on catalog c.
func Run(c *models.Catalog, roster []string, random func() float64) error {
	p := tea.NewProgram(NewModel(c, roster, random), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

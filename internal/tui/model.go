// Package tui implements the interactive terminal client. The model
// owns the single current game.Round value and replaces it with the
// engine's return values; it never reaches into the round to mutate
// fields, so every redraw renders a consistent state.
package tui

import (
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/randutil"
)

// dealerTickMsg paces the dealer's draws so the player can watch them
// land one at a time.
type dealerTickMsg struct{}

// Options configures the TUI session.
type Options struct {
	Seed        int64
	DealerDelay time.Duration
	Clock       quartz.Clock // defaults to the real clock
}

// Model is the Bubble Tea model for a blackjack session.
type Model struct {
	round  game.Round
	rng    *rand.Rand
	logger *log.Logger
	clock  quartz.Clock

	betInput    textinput.Model
	dealerDelay time.Duration

	errMsg string // last bet validation failure, cleared on input
	notice string // transient reshuffle notice

	width    int
	height   int
	quitting bool
}

// New creates a model ready to run under tea.NewProgram.
func New(logger *log.Logger, opts Options) *Model {
	ti := textinput.New()
	ti.Placeholder = "bet amount (10-500)"
	ti.CharLimit = 6
	ti.Width = 24
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.Prompt = "> "

	clock := opts.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	delay := opts.DealerDelay
	if delay <= 0 {
		delay = 600 * time.Millisecond
	}

	return &Model{
		round:       game.NewSession(),
		rng:         randutil.New(opts.Seed),
		logger:      logger.WithPrefix("tui"),
		clock:       clock,
		betInput:    ti,
		dealerDelay: delay,
	}
}

// Round exposes the current state for tests.
func (m *Model) Round() game.Round {
	return m.round
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case dealerTickMsg:
		return m.dealerStep()
	}

	if m.round.Phase == game.PhaseBetting {
		var cmd tea.Cmd
		m.betInput, cmd = m.betInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.round.Phase {
	case game.PhaseWelcome:
		if msg.String() == "q" {
			m.quitting = true
			return m, tea.Quit
		}
		m.startRound()
		return m, nil

	case game.PhaseBetting:
		switch msg.Type {
		case tea.KeyEnter:
			return m.submitBet()
		case tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		}
		m.errMsg = ""
		var cmd tea.Cmd
		m.betInput, cmd = m.betInput.Update(msg)
		return m, cmd

	case game.PhasePlaying:
		return m.handleAction(msg.String())

	case game.PhaseResult:
		switch msg.String() {
		case "q":
			m.quitting = true
			return m, tea.Quit
		default:
			m.startRound()
			return m, nil
		}

	case game.PhaseGameOver:
		m.quitting = true
		return m, tea.Quit
	}

	if msg.String() == "q" {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) startRound() {
	m.round = game.StartRound(m.round)
	m.notice = ""
	m.errMsg = ""
	m.betInput.SetValue("")
	m.betInput.Focus()
}

func (m *Model) submitBet() (tea.Model, tea.Cmd) {
	amount, err := game.ParseBet(m.betInput.Value())
	if err == nil {
		m.round, err = game.PlaceBet(m.round, amount)
	}
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.betInput.Blur()
	m.round = game.Deal(m.round, m.rng)
	if m.round.Reshuffled {
		m.notice = "Deck reshuffled"
	}
	m.logger.Info("dealt",
		"bet", m.round.Bet,
		"player", m.round.PlayerHand,
		"dealer", m.round.DealerHand,
		"reshuffled", m.round.Reshuffled)

	m.round = game.ResolveNaturals(m.round)
	if m.round.Phase == game.PhaseResult {
		m.logger.Info("naturals resolved",
			"outcome", m.round.Result.Outcome,
			"change", m.round.Result.ChipChange)
		m.round = game.CheckGameOver(m.round)
	}
	return m, nil
}

func (m *Model) handleAction(key string) (tea.Model, tea.Cmd) {
	actions := game.AvailableActions(m.round)

	if m.round.IsSplit() {
		switch key {
		case "h":
			m.round = game.SplitHit(m.round)
			m.logger.Info("split hit", "hand", m.round.ActiveHand)
		case "s":
			m.round = game.SplitStand(m.round)
			m.logger.Info("split stand", "hand", m.round.ActiveHand)
		case "q":
			m.quitting = true
			return m, tea.Quit
		default:
			return m, nil
		}
		return m, m.maybeDealerTurn()
	}

	switch key {
	case "h":
		if !offered(actions, game.ActionHit) {
			return m, nil
		}
		m.round = game.Hit(m.round)
		m.logger.Info("hit", "total", game.Evaluate(m.round.PlayerHand).Total)
	case "s":
		m.round = game.Stand(m.round)
		m.logger.Info("stand", "total", game.Evaluate(m.round.PlayerHand).Total)
	case "d":
		if !offered(actions, game.ActionDouble) {
			return m, nil
		}
		m.round = game.Double(m.round)
		m.logger.Info("double", "bet", m.round.Bet)
	case "p":
		if !offered(actions, game.ActionSplit) {
			return m, nil
		}
		m.round = game.Split(m.round)
		m.logger.Info("split", "chips", m.round.Chips)
	case "q":
		m.quitting = true
		return m, tea.Quit
	default:
		return m, nil
	}

	if m.round.Phase == game.PhaseResult {
		// Bust ends the round without a dealer turn.
		m.round = game.CheckGameOver(m.round)
		return m, nil
	}
	return m, m.maybeDealerTurn()
}

// maybeDealerTurn kicks off the paced dealer loop once the player side
// is fully resolved.
func (m *Model) maybeDealerTurn() tea.Cmd {
	if m.round.Phase != game.PhaseDealerTurn {
		return nil
	}
	return m.dealerTick()
}

func (m *Model) dealerTick() tea.Cmd {
	return func() tea.Msg {
		done := make(chan struct{})
		m.clock.AfterFunc(m.dealerDelay, func() { close(done) })
		<-done
		return dealerTickMsg{}
	}
}

func (m *Model) dealerStep() (tea.Model, tea.Cmd) {
	if m.round.Phase != game.PhaseDealerTurn {
		return m, nil
	}
	if !game.DealerDone(m.round) {
		m.round = game.DealerDraw(m.round)
		m.logger.Info("dealer draws", "total", game.Evaluate(m.round.DealerHand).Total)
		return m, m.dealerTick()
	}

	m.round = game.Settle(m.round)
	m.logger.Info("settled",
		"outcome", m.round.Result.Outcome,
		"change", m.round.Result.ChipChange,
		"chips", m.round.Chips)
	m.round = game.CheckGameOver(m.round)
	return m, nil
}

func offered(actions []game.Action, want game.Action) bool {
	for _, a := range actions {
		if a == want {
			return true
		}
	}
	return false
}

package tui

import (
	"context"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/game"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	return New(logger, Options{Seed: 42, DealerDelay: time.Millisecond})
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func typeString(m *Model, s string) {
	for _, r := range s {
		m.Update(keyRune(r))
	}
}

func TestInitialState(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, game.PhaseWelcome, m.Round().Phase)
	assert.Equal(t, game.StartingChips, m.Round().Chips)
	assert.Contains(t, m.View(), "Blackjack")
	assert.Contains(t, m.View(), "1000")
}

func TestWelcomeToBetting(t *testing.T) {
	m := newTestModel(t)
	m.Update(keyRune(' '))

	assert.Equal(t, game.PhaseBetting, m.Round().Phase)
	assert.Contains(t, m.View(), "Place your bet")
}

func TestInvalidBetReprompts(t *testing.T) {
	m := newTestModel(t)
	m.Update(keyRune(' '))

	typeString(m, "abc")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, game.PhaseBetting, m.Round().Phase)
	assert.NotEmpty(t, m.errMsg)
	assert.Contains(t, m.View(), m.errMsg)
}

func TestBetBelowMinimumReprompts(t *testing.T) {
	m := newTestModel(t)
	m.Update(keyRune(' '))

	typeString(m, "5")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, game.PhaseBetting, m.Round().Phase)
	assert.Equal(t, game.StartingChips, m.Round().Chips)
	assert.Contains(t, m.errMsg, "minimum")
}

func TestValidBetDeals(t *testing.T) {
	m := newTestModel(t)
	m.Update(keyRune(' '))

	typeString(m, "100")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	r := m.Round()
	require.Len(t, r.PlayerHand, 2)
	require.Len(t, r.DealerHand, 2)
	assert.Equal(t, 100, r.Bet)
	assert.True(t, r.Reshuffled, "first deal always reshuffles an empty shoe")

	// Either the hand plays out or a natural already ended it.
	assert.Contains(t, []game.Phase{game.PhasePlaying, game.PhaseResult}, r.Phase)
	if r.Phase == game.PhasePlaying {
		assert.Equal(t, 900, r.Chips)
	}
}

func TestDealerLoopSettles(t *testing.T) {
	m := newTestModel(t)
	m.round = game.Round{
		Deck: deck.Deck{
			deck.NewCard(deck.Clubs, deck.Two),
			deck.NewCard(deck.Hearts, deck.Five),
		},
		PlayerHand: []deck.Card{deck.NewCard(deck.Spades, deck.King), deck.NewCard(deck.Hearts, deck.Queen)},
		DealerHand: []deck.Card{deck.NewCard(deck.Clubs, deck.Ten), deck.NewCard(deck.Diamonds, deck.Two)},
		Chips:      900,
		Bet:        100,
		Phase:      game.PhaseDealerTurn,
		Stats:      game.Stats{PeakChips: 1000},
	}

	// Dealer at 12 draws the 5 to reach 17, then settles.
	for i := 0; i < 4 && m.Round().Phase == game.PhaseDealerTurn; i++ {
		m.Update(dealerTickMsg{})
	}

	r := m.Round()
	assert.Equal(t, game.PhaseResult, r.Phase)
	assert.Equal(t, game.OutcomeWin, r.Result.Outcome) // 20 beats 17
	assert.Equal(t, 1100, r.Chips)
	assert.Contains(t, m.View(), "You win")
}

func TestBustSkipsDealer(t *testing.T) {
	m := newTestModel(t)
	m.round = game.Round{
		Deck:       deck.Deck{deck.NewCard(deck.Clubs, deck.King)},
		PlayerHand: []deck.Card{deck.NewCard(deck.Spades, deck.King), deck.NewCard(deck.Hearts, deck.Queen)},
		DealerHand: []deck.Card{deck.NewCard(deck.Clubs, deck.Ten), deck.NewCard(deck.Diamonds, deck.Two)},
		Chips:      900,
		Bet:        100,
		Phase:      game.PhasePlaying,
		Stats:      game.Stats{PeakChips: 1000},
	}

	_, cmd := m.handleAction("h")

	assert.Nil(t, cmd, "bust should not schedule a dealer turn")
	assert.Equal(t, game.PhaseResult, m.Round().Phase)
	assert.Equal(t, game.OutcomeBust, m.Round().Result.Outcome)
	assert.Contains(t, m.View(), "Bust")
}

func TestIllegalKeysIgnored(t *testing.T) {
	m := newTestModel(t)
	m.round = game.Round{
		Deck:       deck.Deck{deck.NewCard(deck.Clubs, deck.Two)},
		PlayerHand: []deck.Card{deck.NewCard(deck.Spades, deck.King), deck.NewCard(deck.Hearts, deck.Queen), deck.NewCard(deck.Clubs, deck.Ace)},
		DealerHand: []deck.Card{deck.NewCard(deck.Clubs, deck.Ten), deck.NewCard(deck.Diamonds, deck.Two)},
		Chips:      900,
		Bet:        100,
		Phase:      game.PhasePlaying,
	}

	// Double and split are illegal on a three card hand; keys no-op.
	before := m.Round()
	m.handleAction("d")
	m.handleAction("p")

	assert.Equal(t, before.Chips, m.Round().Chips)
	assert.Equal(t, before.Bet, m.Round().Bet)
	assert.Len(t, m.Round().PlayerHand, 3)
}

func TestHoleCardHiddenDuringPlay(t *testing.T) {
	m := newTestModel(t)
	m.round = game.Round{
		PlayerHand: []deck.Card{deck.NewCard(deck.Spades, deck.King), deck.NewCard(deck.Hearts, deck.Five)},
		DealerHand: []deck.Card{deck.NewCard(deck.Clubs, deck.Ten), deck.NewCard(deck.Diamonds, deck.Nine)},
		Chips:      900,
		Bet:        100,
		Phase:      game.PhasePlaying,
	}

	view := m.View()
	assert.Contains(t, view, "??")
	assert.NotContains(t, view, "9♦")
}

func TestSplitHandsRendered(t *testing.T) {
	m := newTestModel(t)
	m.round = game.Round{
		SplitHands: []game.SplitHand{
			{Cards: []deck.Card{deck.NewCard(deck.Spades, deck.Eight), deck.NewCard(deck.Clubs, deck.Three)}, Bet: 100},
			{Cards: []deck.Card{deck.NewCard(deck.Hearts, deck.Eight), deck.NewCard(deck.Diamonds, deck.Two)}, Bet: 100},
		},
		DealerHand: []deck.Card{deck.NewCard(deck.Clubs, deck.Ten), deck.NewCard(deck.Diamonds, deck.Nine)},
		Chips:      800,
		Bet:        100,
		Phase:      game.PhasePlaying,
	}

	view := m.View()
	assert.Contains(t, view, "Hand 1")
	assert.Contains(t, view, "Hand 2")
}

func TestDealerTickPacedByClock(t *testing.T) {
	ctx := context.Background()
	mock := quartz.NewMock(t)
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	m := New(logger, Options{Seed: 1, DealerDelay: time.Second, Clock: mock})
	m.round = game.Round{
		DealerHand: []deck.Card{deck.NewCard(deck.Clubs, deck.Ten), deck.NewCard(deck.Diamonds, deck.Seven)},
		Chips:      900,
		Bet:        100,
		Phase:      game.PhaseDealerTurn,
	}

	cmd := m.maybeDealerTurn()
	require.NotNil(t, cmd)

	trap := mock.Trap().AfterFunc()
	defer trap.Close()

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	trap.MustWait(ctx).Release(ctx)
	mock.Advance(time.Second).MustWait(ctx)

	msg := <-done
	assert.IsType(t, dealerTickMsg{}, msg)
}

func TestGameOverScreen(t *testing.T) {
	m := newTestModel(t)
	m.round = game.Round{Chips: 5, Phase: game.PhaseGameOver, Stats: game.Stats{PeakChips: 1000}}

	assert.Contains(t, m.View(), "game over")

	_, cmd := m.handleKey(keyRune(' '))
	require.NotNil(t, cmd)
}

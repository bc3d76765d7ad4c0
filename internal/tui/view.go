package tui

import (
	"fmt"
	"strings"

	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/game"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(" ♠ ♥ Blackjack ♦ ♣ "))
	b.WriteString("\n\n")

	switch m.round.Phase {
	case game.PhaseWelcome:
		b.WriteString(fmt.Sprintf("You have %s chips. Table limits %d-%d.\n\n",
			ChipsStyle.Render(fmt.Sprintf("%d", m.round.Chips)), game.MinBet, game.MaxBet))
		b.WriteString(InfoStyle.Render("press any key to play, q to quit"))
		b.WriteString("\n")
		return b.String()

	case game.PhaseGameOver:
		b.WriteString(m.statusLine())
		b.WriteString(ErrorStyle.Render("Out of chips - game over"))
		b.WriteString("\n\n")
		b.WriteString(m.statsLine())
		b.WriteString(InfoStyle.Render("press any key to exit"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.statusLine())

	if m.notice != "" {
		b.WriteString(WarningStyle.Render(m.notice))
		b.WriteString("\n\n")
	}

	if len(m.round.DealerHand) > 0 {
		b.WriteString(m.dealerLine())
		b.WriteString("\n")
		b.WriteString(m.playerLines())
		b.WriteString("\n")
	}

	switch m.round.Phase {
	case game.PhaseBetting:
		b.WriteString("Place your bet:\n")
		b.WriteString(m.betInput.View())
		b.WriteString("\n")
		if m.errMsg != "" {
			b.WriteString(ErrorStyle.Render(m.errMsg))
			b.WriteString("\n")
		}

	case game.PhasePlaying:
		b.WriteString(ActionsStyle.Render(m.actionsLine()))
		b.WriteString("\n")

	case game.PhaseDealerTurn:
		b.WriteString(InfoStyle.Render("dealer drawing..."))
		b.WriteString("\n")

	case game.PhaseResult:
		b.WriteString(m.resultBanner())
		b.WriteString("\n\n")
		b.WriteString(m.statsLine())
		b.WriteString(InfoStyle.Render("press any key for the next hand, q to quit"))
		b.WriteString("\n")
	}

	return b.String()
}

func (m *Model) statusLine() string {
	line := fmt.Sprintf("Chips: %s", ChipsStyle.Render(fmt.Sprintf("%d", m.round.Chips)))
	if m.round.Bet > 0 {
		line += fmt.Sprintf("   Bet: %d", m.round.Bet)
	}
	return line + "\n\n"
}

func (m *Model) statsLine() string {
	s := m.round.Stats
	return InfoStyle.Render(fmt.Sprintf("hands %d  won %d  lost %d  pushed %d  blackjacks %d  peak %d",
		s.HandsPlayed, s.HandsWon, s.HandsLost, s.HandsPushed, s.Blackjacks, s.PeakChips)) + "\n"
}

// dealerLine renders the dealer's hand, hiding the hole card until the
// player side is resolved.
func (m *Model) dealerLine() string {
	holeHidden := m.round.Phase == game.PhasePlaying
	if holeHidden {
		up := formatCard(m.round.DealerHand[0])
		return fmt.Sprintf("Dealer:  %s %s", up, HiddenCardStyle.Render("[??]"))
	}
	total := game.Evaluate(m.round.DealerHand).Total
	return fmt.Sprintf("Dealer:  %s  %s", formatCards(m.round.DealerHand),
		HandInfoStyle.Render(fmt.Sprintf("(%d)", total)))
}

func (m *Model) playerLines() string {
	if !m.round.IsSplit() {
		hv := game.Evaluate(m.round.PlayerHand)
		return fmt.Sprintf("You:     %s  %s\n", formatCards(m.round.PlayerHand),
			HandInfoStyle.Render(formatValue(hv)))
	}

	var b strings.Builder
	for i, h := range m.round.SplitHands {
		marker := "  "
		if i == m.round.ActiveHand && m.round.Phase == game.PhasePlaying {
			marker = ActionsStyle.Render("▶ ")
		}
		hv := game.Evaluate(h.Cards)
		status := ""
		if h.Status != game.HandPlaying {
			status = InfoStyle.Render(" " + h.Status.String())
		}
		if h.Outcome != game.OutcomeNone {
			status = InfoStyle.Render(" " + h.Outcome.String())
		}
		b.WriteString(fmt.Sprintf("%sHand %d: %s  %s%s\n", marker, i+1,
			formatCards(h.Cards), HandInfoStyle.Render(formatValue(hv)), status))
	}
	return b.String()
}

func (m *Model) actionsLine() string {
	var keys []string
	for _, a := range game.AvailableActions(m.round) {
		switch a {
		case game.ActionHit, game.ActionSplitHit:
			keys = append(keys, "[h]it")
		case game.ActionStand, game.ActionSplitStand:
			keys = append(keys, "[s]tand")
		case game.ActionDouble:
			keys = append(keys, "[d]ouble")
		case game.ActionSplit:
			keys = append(keys, "s[p]lit")
		case game.ActionQuit:
			keys = append(keys, "[q]uit")
		}
	}
	return strings.Join(keys, "  ")
}

func (m *Model) resultBanner() string {
	res := m.round.Result
	switch res.Outcome {
	case game.OutcomeBlackjack:
		return SuccessStyle.Render(fmt.Sprintf("Blackjack! +%d chips", res.ChipChange))
	case game.OutcomeWin:
		return SuccessStyle.Render(fmt.Sprintf("You win +%d chips", res.ChipChange))
	case game.OutcomePush:
		return WarningStyle.Render("Push - bet returned")
	case game.OutcomeBust:
		return ErrorStyle.Render(fmt.Sprintf("Bust! %d chips", res.ChipChange))
	case game.OutcomeLose:
		return ErrorStyle.Render(fmt.Sprintf("Dealer wins %d chips", res.ChipChange))
	case game.OutcomeSplit:
		if res.ChipChange > 0 {
			return SuccessStyle.Render(fmt.Sprintf("Split hands net +%d chips", res.ChipChange))
		}
		if res.ChipChange < 0 {
			return ErrorStyle.Render(fmt.Sprintf("Split hands net %d chips", res.ChipChange))
		}
		return WarningStyle.Render("Split hands break even")
	default:
		return ""
	}
}

func formatValue(hv game.HandValue) string {
	if hv.Soft {
		return fmt.Sprintf("(soft %d)", hv.Total)
	}
	return fmt.Sprintf("(%d)", hv.Total)
}

func formatCard(c deck.Card) string {
	if c.IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

func formatCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = formatCard(c)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

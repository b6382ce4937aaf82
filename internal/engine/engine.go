// Package engine holds the turn and game-state rules of Trivial Maison.
//
// Every exported transition takes the current GameState and returns the
// next one. Inputs are never modified; unchanged branches of the state may
// be shared with the result. Calling a transition in the wrong phase returns
// the input state unchanged.
package engine

import (
	"fmt"
	"maps"
	"math"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/tatianab/trivial-maison/internal/catalog"
	"github.com/tatianab/trivial-maison/internal/models"
)

const (
	// MinPlayers is the smallest roster a game is created with; shorter
	// rosters are padded with placeholder names.
	MinPlayers = 2

	// MaxPlayers is the largest roster the setup screen accepts. The engine
	// itself does not enforce it.
	MaxPlayers = 6

	// DieSides is the number of faces on the die RollDie simulates.
	DieSides = 6
)

// EmptyDeckError means a category had no question to draw even after its
// discard pile was shuffled back in. It points at a catalog with an empty
// category.
type EmptyDeckError struct {
	CategoryID string
}

func (e *EmptyDeckError) Error() string {
	return fmt.Sprintf("no questions available for category %s", e.CategoryID)
}

// createPlayers builds fresh players, one per name, at the start space.
// Blank names become "Player N" for their seat.
func createPlayers(names []string) []models.PlayerState {
	players := make([]models.PlayerState, 0, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("Player %d", i+1)
		}
		players = append(players, models.PlayerState{
			ID:     fmt.Sprintf("player-%d", i+1),
			Name:   name,
			Wedges: []string{},
		})
	}
	return players
}

func sanitizeNames(names []string) []string {
	var sanitized []string
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			sanitized = append(sanitized, name)
		}
	}
	for len(sanitized) < MinPlayers {
		sanitized = append(sanitized, fmt.Sprintf("Player %d", len(sanitized)+1))
	}
	return sanitized
}

// CreateInitialGameState starts a new game for playerNames on the board and
// decks derived from c. Nothing in the result is shared with c or with any
// other game.
func CreateInitialGameState(playerNames []string, c *models.Catalog) models.GameState {
	deck := catalog.QuestionDeck(c)
	discard := make(map[string][]models.Question, len(deck))
	for categoryID := range deck {
		discard[categoryID] = []models.Question{}
	}

	return models.GameState{
		Players:      createPlayers(sanitizeNames(playerNames)),
		Board:        catalog.BoardSpaces(c),
		Categories:   catalog.Categories(c),
		QuestionDeck: deck,
		DiscardPile:  discard,
		Phase:        models.PhaseAwaitingRoll,
	}
}

// RollDie turns a uniform [0,1) sample into a die face. A nil random uses
// math/rand. Out-of-range samples clamp to 1..6; NaN counts as 1.
func RollDie(random func() float64) int {
	if random == nil {
		random = rand.Float64
	}
	r := random()
	switch {
	case math.IsNaN(r), r < 0:
		return 1
	case r >= 1:
		return DieSides
	}
	value := int(math.Floor(r*DieSides)) + 1
	return max(1, min(DieSides, value))
}

func clonePiles(piles map[string][]models.Question) map[string][]models.Question {
	if piles == nil {
		return make(map[string][]models.Question)
	}
	return maps.Clone(piles)
}

// drawQuestion takes the front question of categoryID's deck, recycling the
// discard pile into the deck (oldest first) when the deck is empty.
func drawQuestion(state models.GameState, categoryID string) (models.Question, map[string][]models.Question, map[string][]models.Question, error) {
	pile := state.QuestionDeck[categoryID]
	discarded := state.DiscardPile[categoryID]

	if len(pile) == 0 {
		if len(discarded) == 0 {
			return models.Question{}, nil, nil, &EmptyDeckError{CategoryID: categoryID}
		}
		pile = discarded
		discarded = []models.Question{}
	}

	deck := clonePiles(state.QuestionDeck)
	deck[categoryID] = slices.Clone(pile[1:])
	discard := clonePiles(state.DiscardPile)
	discard[categoryID] = slices.Clone(discarded)

	return pile[0], deck, discard, nil
}

// ApplyRoll moves the current player diceValue spaces around the board and
// draws a question from the category they land on.
func ApplyRoll(state models.GameState, diceValue int) (models.GameState, error) {
	if state.Phase != models.PhaseAwaitingRoll {
		return state, nil
	}

	boardSize := len(state.Board)
	players := slices.Clone(state.Players)
	current := players[state.CurrentPlayerIndex]
	current.Position = ((current.Position+diceValue)%boardSize + boardSize) % boardSize
	players[state.CurrentPlayerIndex] = current

	space := state.Board[current.Position]
	question, deck, discard, err := drawQuestion(state, space.CategoryID)
	if err != nil {
		return state, err
	}

	next := state
	next.Players = players
	next.DiceValue = &diceValue
	next.QuestionDeck = deck
	next.DiscardPile = discard
	next.ActiveQuestion = &question
	next.Phase = models.PhaseQuestion
	next.SelectedAnswerIndex = nil
	next.WasAnswerCorrect = nil
	return next, nil
}

func holdsAllWedges(player models.PlayerState, categories []models.Category) bool {
	for _, category := range categories {
		if !player.HasWedge(category.ID) {
			return false
		}
	}
	return true
}

// AnswerQuestion scores the current player's answer to the active question.
// A correct answer on a wedge space also wins that category's wedge. The
// question is discarded whether or not the answer was right.
func AnswerQuestion(state models.GameState, selectedIndex int) models.GameState {
	if state.Phase != models.PhaseQuestion || state.ActiveQuestion == nil {
		return state
	}

	question := *state.ActiveQuestion
	correct := selectedIndex == question.AnswerIndex

	players := slices.Clone(state.Players)
	current := players[state.CurrentPlayerIndex]
	if correct {
		current.Score++
		space := state.Board[current.Position]
		if space.IsWedge && !current.HasWedge(question.CategoryID) {
			current.Wedges = append(slices.Clone(current.Wedges), question.CategoryID)
		}
	}
	players[state.CurrentPlayerIndex] = current

	discard := clonePiles(state.DiscardPile)
	discard[question.CategoryID] = append(slices.Clone(state.DiscardPile[question.CategoryID]), question)

	next := state
	next.Players = players
	next.DiscardPile = discard
	next.WasAnswerCorrect = &correct
	next.SelectedAnswerIndex = &selectedIndex
	if correct && holdsAllWedges(current, state.Categories) {
		next.WinnerID = current.ID
		next.Phase = models.PhaseFinished
	} else {
		next.Phase = models.PhaseFeedback
	}
	return next
}

// ProceedToNextTurn hands the die to the next player once feedback has been
// shown. A finished game stays finished.
func ProceedToNextTurn(state models.GameState) models.GameState {
	if state.Phase != models.PhaseFeedback {
		return state
	}

	next := state
	next.CurrentPlayerIndex = (state.CurrentPlayerIndex + 1) % len(state.Players)
	next.Phase = models.PhaseAwaitingRoll
	next.DiceValue = nil
	next.ActiveQuestion = nil
	next.WasAnswerCorrect = nil
	next.SelectedAnswerIndex = nil
	return next
}

// ResetGame restarts from scratch. playerNames override the roster seat by
// seat: a blank name leaves that seat's placeholder, and the roster is padded
// to MinPlayers. With no names the current roster's names are kept.
func ResetGame(state models.GameState, playerNames []string, c *models.Catalog) models.GameState {
	if len(playerNames) == 0 {
		for _, p := range state.Players {
			playerNames = append(playerNames, p.Name)
		}
	}
	names := slices.Clone(playerNames)
	for len(names) < MinPlayers {
		names = append(names, "")
	}

	initial := CreateInitialGameState(playerNames, c)
	initial.Players = createPlayers(names)
	return initial
}

// CurrentPlayer returns the player whose turn it is.
func CurrentPlayer(state models.GameState) models.PlayerState {
	return state.Players[state.CurrentPlayerIndex]
}

// CurrentSpace returns the space the current player stands on.
func CurrentSpace(state models.GameState) models.Space {
	return state.Board[CurrentPlayer(state).Position]
}

// CategoryByID looks up one of the game's categories.
func CategoryByID(state models.GameState, id string) (models.Category, bool) {
	for _, c := range state.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}

// Winner returns the winning player once the game is finished.
func Winner(state models.GameState) (models.PlayerState, bool) {
	if state.WinnerID == "" {
		return models.PlayerState{}, false
	}
	for _, p := range state.Players {
		if p.ID == state.WinnerID {
			return p, true
		}
	}
	return models.PlayerState{}, false
}

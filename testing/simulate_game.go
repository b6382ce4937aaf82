package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"strings"

	"github.com/tatianab/trivial-maison/internal/catalog"
	"github.com/tatianab/trivial-maison/internal/config"
	"github.com/tatianab/trivial-maison/internal/engine"
	"github.com/tatianab/trivial-maison/internal/models"
)

const maxTurns = 500

func main() {
	seed := flag.Uint64("seed", 1, "seed for dice and answers")
	accuracy := flag.Float64("accuracy", 0.6, "chance that a simulated player answers correctly")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	questions, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Failed to load questions: %v", err)
	}

	players := cfg.Players
	if len(players) == 0 {
		players = []string{"Ada", "Grace", "Linus"}
	}

	rng := rand.New(rand.NewPCG(*seed, *seed))
	state := engine.CreateInitialGameState(players, questions)
	fmt.Printf("--- %s ---\n", strings.Join(playerNames(state), " vs "))

	for turn := 1; turn <= maxTurns; turn++ {
		player := engine.CurrentPlayer(state)
		dice := engine.RollDie(rng.Float64)

		state, err = engine.ApplyRoll(state, dice)
		if err != nil {
			log.Fatalf("Turn %d: %v", turn, err)
		}
		space := engine.CurrentSpace(state)
		category, _ := engine.CategoryByID(state, space.CategoryID)

		answer := pickAnswer(rng, *state.ActiveQuestion, *accuracy)
		state = engine.AnswerQuestion(state, answer)

		result := "wrong"
		if *state.WasAnswerCorrect {
			result = "correct"
		}
		wedge := ""
		if space.IsWedge {
			wedge = " (wedge)"
		}
		fmt.Printf("Turn %d: %s rolled %d -> %s%s, %s\n", turn, player.Name, dice, category.Name, wedge, result)

		if winner, ok := engine.Winner(state); ok {
			fmt.Printf("Game Ended: %s won after %d turns!\n", winner.Name, turn)
			printScores(state)
			return
		}
		state = engine.ProceedToNextTurn(state)
	}

	fmt.Printf("Game Ended: no winner after %d turns.\n", maxTurns)
	printScores(state)
}

// pickAnswer answers correctly with the given probability and otherwise
// picks one of the wrong options.
func pickAnswer(rng *rand.Rand, q models.Question, accuracy float64) int {
	if rng.Float64() < accuracy {
		return q.AnswerIndex
	}
	wrong := rng.IntN(len(q.Options) - 1)
	if wrong >= q.AnswerIndex {
		wrong++
	}
	return wrong
}

func playerNames(state models.GameState) []string {
	names := make([]string, 0, len(state.Players))
	for _, p := range state.Players {
		names = append(names, p.Name)
	}
	return names
}

func printScores(state models.GameState) {
	for _, p := range state.Players {
		fmt.Printf("%s: score=%d wedges=%v\n", p.Name, p.Score, p.Wedges)
	}
}

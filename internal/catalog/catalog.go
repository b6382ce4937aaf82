// Package catalog loads the trivia question document and derives the board,
// category list and per-category decks from it.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/tatianab/trivial-maison/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed data/questions.yaml
var defaultCatalog []byte

// Laps is how many times the category sequence repeats around the board.
// Only the first lap holds wedge spaces.
const Laps = 4

// DataLoadError reports a catalog that is missing, unreadable or malformed.
type DataLoadError struct {
	Source string
	Err    error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("load catalog %s: %v", e.Source, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}

// Default returns the catalog embedded in the binary.
func Default() (*models.Catalog, error) {
	return Parse("embedded", defaultCatalog)
}

// Load reads a YAML or JSON catalog from path. An empty path loads the
// embedded catalog.
func Load(path string) (*models.Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DataLoadError{Source: path, Err: err}
	}
	return Parse(path, data)
}

// Parse decodes and validates a catalog document.
func Parse(source string, data []byte) (*models.Catalog, error) {
	var c models.Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, &DataLoadError{Source: source, Err: err}
	}
	if err := validate(&c); err != nil {
		return nil, &DataLoadError{Source: source, Err: err}
	}
	return &c, nil
}

func validate(c *models.Catalog) error {
	if len(c.Categories) == 0 {
		return errors.New("no categories")
	}
	seen := make(map[string]bool, len(c.Categories))
	for i, cat := range c.Categories {
		if cat.ID == "" {
			return fmt.Errorf("category %d has no id", i)
		}
		if seen[cat.ID] {
			return fmt.Errorf("duplicate category id %q", cat.ID)
		}
		seen[cat.ID] = true

		questionIDs := make(map[string]bool, len(cat.Questions))
		for j, q := range cat.Questions {
			if q.ID == "" {
				return fmt.Errorf("category %q: question %d has no id", cat.ID, j)
			}
			if questionIDs[q.ID] {
				return fmt.Errorf("category %q: duplicate question id %q", cat.ID, q.ID)
			}
			questionIDs[q.ID] = true
			if len(q.Options) < 2 {
				return fmt.Errorf("question %q: needs at least 2 options, got %d", q.ID, len(q.Options))
			}
			if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Options) {
				return fmt.Errorf("question %q: answer index %d out of range", q.ID, q.AnswerIndex)
			}
		}
	}
	return nil
}

// Categories returns the catalog's categories without their questions, in
// catalog order.
func Categories(c *models.Catalog) []models.Category {
	categories := make([]models.Category, 0, len(c.Categories))
	for _, cat := range c.Categories {
		categories = append(categories, models.Category{
			ID:    cat.ID,
			Name:  cat.Name,
			Color: cat.Color,
		})
	}
	return categories
}

// BoardSpaces lays the categories out Laps times in catalog order.
func BoardSpaces(c *models.Catalog) []models.Space {
	board := make([]models.Space, 0, Laps*len(c.Categories))
	for lap := 0; lap < Laps; lap++ {
		for _, cat := range c.Categories {
			board = append(board, models.Space{
				Index:      len(board),
				CategoryID: cat.ID,
				IsWedge:    lap == 0,
			})
		}
	}
	return board
}

// QuestionDeck returns each category's questions, tagged with the category
// id, in catalog order. The result shares no slices with c.
func QuestionDeck(c *models.Catalog) map[string][]models.Question {
	deck := make(map[string][]models.Question, len(c.Categories))
	for _, cat := range c.Categories {
		questions := make([]models.Question, 0, len(cat.Questions))
		for _, q := range cat.Questions {
			questions = append(questions, models.Question{
				ID:          q.ID,
				Prompt:      q.Prompt,
				Options:     append([]string(nil), q.Options...),
				AnswerIndex: q.AnswerIndex,
				CategoryID:  cat.ID,
			})
		}
		deck[cat.ID] = questions
	}
	return deck
}

package models

// Catalog is the raw question document the game is seeded from.
type Catalog struct {
	Categories []CatalogCategory `yaml:"categories"`
}

// CatalogCategory is a category as authored, questions included.
type CatalogCategory struct {
	ID        string            `yaml:"id"`
	Name      string            `yaml:"name"`
	Color     string            `yaml:"color"` // CSS-like, e.g. "#E4572E"
	Questions []CatalogQuestion `yaml:"questions"`
}

// CatalogQuestion is a question as authored, without its category.
type CatalogQuestion struct {
	ID          string   `yaml:"id"`
	Prompt      string   `yaml:"prompt"`
	Options     []string `yaml:"options"`
	AnswerIndex int      `yaml:"answerIndex"`
}

// Category is a board category stripped of its questions.
type Category struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// Space is one cell of the cyclic board.
type Space struct {
	Index      int    `yaml:"index"`
	CategoryID string `yaml:"category_id"`
	IsWedge    bool   `yaml:"is_wedge"`
}

// Question is a playable question tagged with its category.
type Question struct {
	ID          string   `yaml:"id"`
	Prompt      string   `yaml:"prompt"`
	Options     []string `yaml:"options"`
	AnswerIndex int      `yaml:"answer_index"`
	CategoryID  string   `yaml:"category_id"`
}

// PlayerState is a player's position and progress.
type PlayerState struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Position int      `yaml:"position"`
	Wedges   []string `yaml:"wedges"` // category ids, in the order they were won
	Score    int      `yaml:"score"`
}

// HasWedge reports whether the player holds the wedge for categoryID.
func (p PlayerState) HasWedge(categoryID string) bool {
	for _, w := range p.Wedges {
		if w == categoryID {
			return true
		}
	}
	return false
}

// Phase is the stage of the current turn.
type Phase string

const (
	PhaseAwaitingRoll Phase = "awaiting-roll"
	PhaseQuestion     Phase = "question"
	PhaseFeedback     Phase = "feedback"
	PhaseFinished     Phase = "finished"
)

// GameState is the whole game at one point in time. Values are never
// modified in place: every engine transition returns a new GameState.
type GameState struct {
	Players            []PlayerState         `yaml:"players"`
	CurrentPlayerIndex int                   `yaml:"current_player_index"`
	Board              []Space               `yaml:"board"`
	Categories         []Category            `yaml:"categories"`
	QuestionDeck       map[string][]Question `yaml:"question_deck"`
	DiscardPile        map[string][]Question `yaml:"discard_pile"`
	Phase              Phase                 `yaml:"phase"`

	// Set only in some phases; nil means unset.
	DiceValue           *int      `yaml:"dice_value,omitempty"`
	ActiveQuestion      *Question `yaml:"active_question,omitempty"`
	WasAnswerCorrect    *bool     `yaml:"was_answer_correct,omitempty"`
	SelectedAnswerIndex *int      `yaml:"selected_answer_index,omitempty"`
	WinnerID            string    `yaml:"winner_id,omitempty"`
}

package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const twoCategories = `
categories:
  - id: a
    name: Alpha
    color: red
    questions:
      - {id: a1, prompt: "A?", options: ["x", "y"], answerIndex: 0}
      - {id: a2, prompt: "A2?", options: ["x", "y", "z"], answerIndex: 2}
  - id: b
    name: Beta
    color: blue
    questions:
      - {id: b1, prompt: "B?", options: ["x", "y"], answerIndex: 1}
`

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default catalog failed to load: %v", err)
	}
	if len(c.Categories) == 0 {
		t.Fatalf("Expected categories in the default catalog")
	}
	for _, cat := range c.Categories {
		if len(cat.Questions) == 0 {
			t.Errorf("Category %s has no questions", cat.ID)
		}
	}
}

func TestBoardSpaces(t *testing.T) {
	c, err := Parse("test", []byte(twoCategories))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	board := BoardSpaces(c)
	if len(board) != Laps*2 {
		t.Fatalf("Expected %d spaces, got %d", Laps*2, len(board))
	}
	for i, space := range board {
		if space.Index != i {
			t.Errorf("Space %d has index %d", i, space.Index)
		}
		wantCategory := []string{"a", "b"}[i%2]
		if space.CategoryID != wantCategory {
			t.Errorf("Space %d: expected category %s, got %s", i, wantCategory, space.CategoryID)
		}
		if space.IsWedge != (i < 2) {
			t.Errorf("Space %d: expected IsWedge=%v", i, i < 2)
		}
	}
}

func TestCategoriesAndDeck(t *testing.T) {
	c, err := Parse("test", []byte(twoCategories))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	categories := Categories(c)
	if len(categories) != 2 || categories[0].ID != "a" || categories[1].Name != "Beta" {
		t.Errorf("Unexpected categories: %+v", categories)
	}

	deck := QuestionDeck(c)
	if got := len(deck["a"]); got != 2 {
		t.Fatalf("Expected 2 questions for a, got %d", got)
	}
	if deck["a"][0].ID != "a1" || deck["a"][1].ID != "a2" {
		t.Errorf("Deck order not preserved: %+v", deck["a"])
	}
	if deck["b"][0].CategoryID != "b" {
		t.Errorf("Expected question tagged with category b, got %q", deck["b"][0].CategoryID)
	}

	deck["a"][0].Options[0] = "changed"
	if c.Categories[0].Questions[0].Options[0] != "x" {
		t.Errorf("Deck shares option slices with the catalog")
	}
}

func TestParseMalformed(t *testing.T) {
	tests := map[string]string{
		"not yaml":         "categories: [",
		"empty":            "",
		"missing id":       "categories: [{name: x}]",
		"duplicate ids":    "categories: [{id: a}, {id: a}]",
		"one option":       `categories: [{id: a, questions: [{id: q, options: ["x"], answerIndex: 0}]}]`,
		"answer too large": `categories: [{id: a, questions: [{id: q, options: ["x", "y"], answerIndex: 2}]}]`,
		"negative answer":  `categories: [{id: a, questions: [{id: q, options: ["x", "y"], answerIndex: -1}]}]`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse("test", []byte(doc))
			var loadErr *DataLoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("Expected DataLoadError, got %v", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "questions.json")
	json := `{"categories":[{"id":"a","name":"A","color":"#fff","questions":[{"id":"q","prompt":"?","options":["x","y"],"answerIndex":1}]}]}`
	if err := os.WriteFile(path, []byte(json), 0644); err != nil {
		t.Fatalf("Failed to write catalog: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Categories[0].Questions[0].AnswerIndex != 1 {
		t.Errorf("Unexpected catalog: %+v", c)
	}

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	var loadErr *DataLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Expected DataLoadError for a missing file, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected the error to wrap os.ErrNotExist, got %v", err)
	}

	def, err := Load("")
	if err != nil || len(def.Categories) == 0 {
		t.Errorf("Expected empty path to load the embedded catalog, got %v", err)
	}
}

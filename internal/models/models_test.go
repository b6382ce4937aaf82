package models

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestCatalogYAML(t *testing.T) {
	doc := `
categories:
  - id: kitchen
    name: Kitchen
    color: "#E4572E"
    questions:
      - id: k1
        prompt: Which utensil flips pancakes?
        options: [Whisk, Spatula, Ladle]
        answerIndex: 1
  - id: garden
    name: Garden
    color: "#76B041"
`
	var catalog Catalog
	if err := yaml.Unmarshal([]byte(doc), &catalog); err != nil {
		t.Fatalf("Failed to unmarshal catalog: %v", err)
	}

	if len(catalog.Categories) != 2 {
		t.Fatalf("Expected 2 categories, got %d", len(catalog.Categories))
	}
	q := catalog.Categories[0].Questions[0]
	if q.AnswerIndex != 1 || len(q.Options) != 3 {
		t.Errorf("Unexpected question decoded: %+v", q)
	}
	if catalog.Categories[1].Color != "#76B041" {
		t.Errorf("Expected color #76B041, got %s", catalog.Categories[1].Color)
	}
	if len(catalog.Categories[1].Questions) != 0 {
		t.Errorf("Expected no questions for garden, got %d", len(catalog.Categories[1].Questions))
	}
}

func TestCatalogFromJSON(t *testing.T) {
	doc := `{"categories":[{"id":"attic","name":"Attic","color":"#888","questions":[{"id":"a1","prompt":"Dusty?","options":["Yes","No"],"answerIndex":0}]}]}`
	var catalog Catalog
	if err := yaml.Unmarshal([]byte(doc), &catalog); err != nil {
		t.Fatalf("Failed to unmarshal JSON catalog: %v", err)
	}
	if got := catalog.Categories[0].Questions[0].Prompt; got != "Dusty?" {
		t.Errorf("Expected prompt %q, got %q", "Dusty?", got)
	}
}

func TestPlayerStateHasWedge(t *testing.T) {
	p := PlayerState{Wedges: []string{"kitchen", "attic"}}
	if !p.HasWedge("attic") {
		t.Errorf("Expected player to hold the attic wedge")
	}
	if p.HasWedge("garden") {
		t.Errorf("Expected player not to hold the garden wedge")
	}
	if (PlayerState{}).HasWedge("kitchen") {
		t.Errorf("Expected empty player to hold no wedges")
	}
}

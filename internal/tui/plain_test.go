package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/mmcdole/mealfinder/internal/domain"
)

func TestRenderPlain(t *testing.T) {
	arrabiata := domain.Meal{
		ID:           "52771",
		Name:         "Spicy Arrabiata Penne",
		ThumbnailURL: "https://x/a.jpg",
		Instructions: "Bring a large pot\nof water to a boil.",
		Category:     "Vegetarian",
		Area:         "Italian",
	}
	plain := domain.Meal{ID: "1", Name: "Toast", ThumbnailURL: "https://x/t.jpg", Instructions: "Toast it."}

	tests := []struct {
		name  string
		state domain.SessionState
		want  string
	}{
		{"nothing searched", domain.SessionState{}, ""},
		{"no matches", settled("x", []domain.Meal{}), "No results found\n"},
		{"failure", domain.SessionState{Seq: 1, ErrorMessage: "HTTP 503"}, "Error: HTTP 503\n"},
		{
			"results",
			settled("penne", []domain.Meal{arrabiata, plain}),
			"Spicy Arrabiata Penne\n" +
				"  Vegetarian · Italian\n" +
				"  https://x/a.jpg\n" +
				"  Bring a large pot of water to a boil....\n" +
				"\n" +
				"Toast\n" +
				"  https://x/t.jpg\n" +
				"  Toast it....\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			if err := RenderPlain(&b, tt.state, 100, 0); err != nil {
				t.Fatalf("RenderPlain returned error: %v", err)
			}
			if b.String() != tt.want {
				t.Errorf("RenderPlain output:\n%q\nwant:\n%q", b.String(), tt.want)
			}
		})
	}
}

func TestRenderPlain_WrapsExcerpt(t *testing.T) {
	meal := domain.Meal{
		Name:         "Stew",
		ThumbnailURL: "https://x/s.jpg",
		Instructions: "one two three four five six seven eight nine ten",
	}
	var b strings.Builder
	if err := RenderPlain(&b, settled("stew", []domain.Meal{meal}), 100, 22); err != nil {
		t.Fatal(err)
	}
	for _, line := range strings.Split(strings.TrimRight(b.String(), "\n"), "\n") {
		if len(line) > 22 {
			t.Errorf("line %q wider than 22", line)
		}
	}
}

func TestRunPlain(t *testing.T) {
	session := &fakeSession{onSearch: func(f *fakeSession, query string) {
		f.set(settled(query, testMeals[:1]))
	}}

	var b strings.Builder
	if err := RunPlain(session, "tomato", &b, 100, 0); err != nil {
		t.Fatalf("RunPlain returned error: %v", err)
	}
	if len(session.queries) != 1 || session.queries[0] != "tomato" {
		t.Errorf("queries = %q", session.queries)
	}
	if !strings.HasPrefix(b.String(), "Tomato Soup\n") {
		t.Errorf("output = %q", b.String())
	}
}

func TestRunPlain_Failure(t *testing.T) {
	session := &fakeSession{onSearch: func(f *fakeSession, query string) {
		f.set(domain.SessionState{Query: query, Seq: 1, ErrorMessage: "Could not reach server"})
	}}

	var b strings.Builder
	err := RunPlain(session, "x", &b, 100, 0)
	if !errors.Is(err, ErrSearchFailed) {
		t.Fatalf("RunPlain error = %v, want ErrSearchFailed", err)
	}
	if b.String() != "Error: Could not reach server\n" {
		t.Errorf("output = %q", b.String())
	}
}

package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mmcdole/mealfinder/internal/domain"
	"github.com/mmcdole/mealfinder/internal/tui/components"
	"github.com/mmcdole/mealfinder/internal/tui/styles"
)

// ErrSearchFailed is returned by RunPlain when the search settled with an error
var ErrSearchFailed = errors.New("search failed")

// BlockingSearcher is a Searcher whose caller can wait for completion
type BlockingSearcher interface {
	Search(query string)
	Wait()
	State() domain.SessionState
}

// RunPlain performs one search, waits for it to settle and prints the
// result to w. It returns ErrSearchFailed if the search failed.
func RunPlain(session BlockingSearcher, query string, w io.Writer, excerptLen, width int) error {
	session.Search(query)
	session.Wait()

	state := session.State()
	if err := RenderPlain(w, state, excerptLen, width); err != nil {
		return err
	}
	if state.Failed() {
		return fmt.Errorf("%w: %s", ErrSearchFailed, state.ErrorMessage)
	}
	return nil
}

// RenderPlain writes a session state as uncolored text.
// Lines are wrapped at width; width <= 0 disables wrapping.
func RenderPlain(w io.Writer, state domain.SessionState, excerptLen, width int) error {
	var b strings.Builder

	switch {
	case state.Loading:
		fmt.Fprintf(&b, "Searching for %q...\n", state.Query)
	case state.Failed():
		fmt.Fprintf(&b, "Error: %s\n", state.ErrorMessage)
	case state.Empty():
		b.WriteString(NoResultsText + "\n")
	case state.Results == nil:
		// Nothing searched yet
	default:
		wrap := width - 2
		for i, meal := range state.Results {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(meal.Name + "\n")
			if sub := meal.Subtitle(); sub != "" {
				b.WriteString(indent(sub))
			}
			b.WriteString(indent(meal.ThumbnailURL))
			excerpt := strings.Join(strings.Fields(components.Excerpt(meal.Instructions, excerptLen)), " ")
			b.WriteString(indent(styles.WordWrap(excerpt, wrap)))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func indent(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}

package mealdb

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mmcdole/mealfinder/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL+"/api/json/v1/1", discardLogger())
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return c
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"empty uses default", "", DefaultBaseURL, false},
		{"adds trailing slash", "http://example.com/api", "http://example.com/api/", false},
		{"keeps trailing slash", "https://example.com/api/", "https://example.com/api/", false},
		{"drops query and fragment", "http://example.com/api/?x=1#top", "http://example.com/api/", false},
		{"rejects non http scheme", "ftp://example.com/", "", true},
		{"rejects missing host", "http:///api", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("normalizeBaseURL(%q) = %q, want error", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("normalizeBaseURL(%q) returned error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("normalizeBaseURL(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestClient_FindMealsMapsResponse(t *testing.T) {
	t.Parallel()

	var gotPath, gotAccept, gotUserAgent string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"meals":[{"idMeal":"1","strMeal":"Soup","strMealThumb":"http://x/y.jpg","strInstructions":"Boil water..."}]}`)
	})

	meals, err := c.FindMeals(context.Background(), "soup")
	if err != nil {
		t.Fatalf("FindMeals returned error: %v", err)
	}
	if len(meals) != 1 {
		t.Fatalf("FindMeals returned %d meals, want 1", len(meals))
	}
	want := domain.Meal{ID: "1", Name: "Soup", ThumbnailURL: "http://x/y.jpg", Instructions: "Boil water..."}
	got := meals[0]
	if got.ID != want.ID || got.Name != want.Name || got.ThumbnailURL != want.ThumbnailURL || got.Instructions != want.Instructions {
		t.Fatalf("meal = %#v, want %#v", got, want)
	}
	if got.HasDetails() {
		t.Fatalf("meal without optional fields reports details: %#v", got)
	}
	if gotPath != "/api/json/v1/1/search.php" {
		t.Errorf("path = %q, want /api/json/v1/1/search.php", gotPath)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q, want application/json", gotAccept)
	}
	if !strings.HasPrefix(gotUserAgent, "mealfinder/") {
		t.Errorf("User-Agent = %q, want mealfinder/*", gotUserAgent)
	}
}

func TestClient_FindMealsForwardsQueryUnmodified(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query   string
		wantRaw string
	}{
		{"", "s="},
		{"Arrabiata", "s=Arrabiata"},
		{"  beef stew ", "s=%20%20beef%20stew%20"},
		{"mac&cheese", "s=mac%26cheese"},
		{"1+1=2", "s=1%2B1%3D2"},
		{"crème brûlée", "s=cr%C3%A8me%20br%C3%BBl%C3%A9e"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var gotRaw string
			var gotValue string
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				gotRaw = r.URL.RawQuery
				gotValue = r.URL.Query().Get("s")
				_, _ = io.WriteString(w, `{"meals":null}`)
			})

			if _, err := c.FindMeals(context.Background(), tt.query); err != nil {
				t.Fatalf("FindMeals returned error: %v", err)
			}
			if gotRaw != tt.wantRaw {
				t.Errorf("raw query = %q, want %q", gotRaw, tt.wantRaw)
			}
			if gotValue != tt.query {
				t.Errorf("decoded query = %q, want %q", gotValue, tt.query)
			}
		})
	}
}

func TestClient_FindMealsNoMatches(t *testing.T) {
	t.Parallel()

	for _, body := range []string{`{"meals":null}`, `{}`, `{"meals":[]}`} {
		body := body
		t.Run(body, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, body)
			})

			meals, err := c.FindMeals(context.Background(), "zzz")
			if err != nil {
				t.Fatalf("FindMeals returned error: %v", err)
			}
			if meals == nil {
				t.Fatal("FindMeals returned nil slice, want empty non-nil slice")
			}
			if len(meals) != 0 {
				t.Fatalf("FindMeals returned %d meals, want 0", len(meals))
			}
		})
	}
}

func TestClient_FindMealsFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		body     string
		wantKind domain.FailureKind
		wantIs   error
	}{
		{"server error", http.StatusInternalServerError, `oops`, domain.FailureStatus, domain.ErrUnexpectedStatus},
		{"not found", http.StatusNotFound, `{"meals":null}`, domain.FailureStatus, domain.ErrUnexpectedStatus},
		{"malformed json", http.StatusOK, `{not-json`, domain.FailureParse, domain.ErrMalformedResponse},
		{"empty body", http.StatusOK, ``, domain.FailureParse, domain.ErrMalformedResponse},
		{"null body", http.StatusOK, `null`, domain.FailureParse, domain.ErrMalformedResponse},
		{"meals not a list", http.StatusOK, `{"meals":"Invalid"}`, domain.FailureParse, domain.ErrMalformedResponse},
		{"missing strMeal", http.StatusOK, `{"meals":[{"idMeal":"1","strMeal":"Soup","strMealThumb":"t","strInstructions":"i"},{"idMeal":"2","strMealThumb":"t","strInstructions":"i"}]}`, domain.FailureParse, domain.ErrMalformedResponse},
		{"null instructions", http.StatusOK, `{"meals":[{"idMeal":"1","strMeal":"Soup","strMealThumb":"t","strInstructions":null}]}`, domain.FailureParse, domain.ErrMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			meals, err := c.FindMeals(context.Background(), "soup")
			if err == nil {
				t.Fatalf("FindMeals returned %v, want error", meals)
			}
			if meals != nil {
				t.Errorf("FindMeals returned partial meals %v alongside error", meals)
			}

			var failure *domain.FetchFailure
			if !errors.As(err, &failure) {
				t.Fatalf("error %T is not *domain.FetchFailure", err)
			}
			if failure.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", failure.Kind, tt.wantKind)
			}
			if !errors.Is(err, tt.wantIs) {
				t.Errorf("errors.Is(err, %v) = false for %v", tt.wantIs, err)
			}
			if strings.TrimSpace(err.Error()) == "" {
				t.Error("error message is empty")
			}
		})
	}
}

func TestClient_FindMealsMissingFieldIsParseError(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"meals":[{"idMeal":"1","strMealThumb":"t","strInstructions":"i"}]}`)
	})

	_, err := c.FindMeals(context.Background(), "soup")
	if !domain.IsParseError(err) {
		t.Fatalf("IsParseError(%v) = false, want true", err)
	}
	if !strings.Contains(err.Error(), "strMeal") {
		t.Errorf("error %q does not name the missing field", err)
	}
	var missing *MissingFieldError
	if !errors.As(err, &missing) || missing.Index != 0 || missing.Field != "strMeal" {
		t.Errorf("MissingFieldError = %#v, want index 0 field strMeal", missing)
	}
}

func TestClient_FindMealsServerUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	addr := server.URL
	server.Close()

	c, err := NewClient(addr, discardLogger())
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FindMeals(context.Background(), "soup")
	var failure *domain.FetchFailure
	if !errors.As(err, &failure) || failure.Kind != domain.FailureTransport {
		t.Fatalf("error = %v, want transport FetchFailure", err)
	}
	if !errors.Is(err, domain.ErrServerOffline) {
		t.Errorf("errors.Is(err, ErrServerOffline) = false for %v", err)
	}
}

func TestClient_FindMealsHonorsContext(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	t.Cleanup(func() { close(release) })

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.FindMeals(ctx, "soup")
	var failure *domain.FetchFailure
	if !errors.As(err, &failure) || failure.Kind != domain.FailureTransport {
		t.Fatalf("error = %v, want transport FetchFailure", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("errors.Is(err, DeadlineExceeded) = false for %v", err)
	}
}

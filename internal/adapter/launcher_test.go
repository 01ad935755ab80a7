package adapter

import (
	"errors"
	"reflect"
	"testing"
)

type launchCall struct {
	name string
	args []string
}

func newTestLauncher(command string, args []string, goos string, installed ...string) (*Launcher, *[]launchCall) {
	var calls []launchCall
	l := NewLauncher(command, args, NullLogger())
	l.goos = goos
	l.lookPath = func(file string) (string, error) {
		for _, name := range installed {
			if name == file {
				return "/usr/bin/" + file, nil
			}
		}
		return "", errors.New("not found")
	}
	l.start = func(name string, args ...string) error {
		calls = append(calls, launchCall{name: name, args: args})
		return nil
	}
	return l, &calls
}

func TestLauncher_OpenImageConfigured(t *testing.T) {
	l, calls := newTestLauncher("eog", []string{"--fullscreen"}, "linux", "feh")

	if err := l.OpenImage("https://x/y.jpg"); err != nil {
		t.Fatalf("OpenImage returned error: %v", err)
	}
	want := []launchCall{{name: "eog", args: []string{"--fullscreen", "https://x/y.jpg"}}}
	if !reflect.DeepEqual(*calls, want) {
		t.Fatalf("calls = %#v, want %#v", *calls, want)
	}
}

func TestLauncher_OpenImageDetectsViewer(t *testing.T) {
	l, calls := newTestLauncher("", nil, "linux", "sxiv")

	if err := l.OpenImage("https://x/y.jpg"); err != nil {
		t.Fatalf("OpenImage returned error: %v", err)
	}
	want := []launchCall{{name: "sxiv", args: []string{"https://x/y.jpg"}}}
	if !reflect.DeepEqual(*calls, want) {
		t.Fatalf("calls = %#v, want %#v", *calls, want)
	}
}

func TestLauncher_OpenImageFallsBackToSystemDefault(t *testing.T) {
	tests := []struct {
		goos string
		want launchCall
	}{
		{"linux", launchCall{name: "xdg-open", args: []string{"https://x/y.jpg"}}},
		{"darwin", launchCall{name: "open", args: []string{"https://x/y.jpg"}}},
		{"windows", launchCall{name: "cmd", args: []string{"/c", "start", "", "https://x/y.jpg"}}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			l, calls := newTestLauncher("", nil, tt.goos)
			if err := l.OpenImage("https://x/y.jpg"); err != nil {
				t.Fatalf("OpenImage returned error: %v", err)
			}
			if len(*calls) != 1 || !reflect.DeepEqual((*calls)[0], tt.want) {
				t.Fatalf("calls = %#v, want %#v", *calls, tt.want)
			}
		})
	}
}

func TestLauncher_RejectsNonWebURLs(t *testing.T) {
	for _, raw := range []string{"", "   ", "file:///etc/passwd", "javascript:alert(1)", "y.jpg"} {
		l, calls := newTestLauncher("", nil, "linux", "feh")
		if err := l.OpenImage(raw); err == nil {
			t.Errorf("OpenImage(%q) returned nil error", raw)
		}
		if len(*calls) != 0 {
			t.Errorf("OpenImage(%q) launched %v", raw, *calls)
		}
	}
}

func TestLauncher_StartFailureIsReported(t *testing.T) {
	l, _ := newTestLauncher("viewer", nil, "linux")
	l.start = func(name string, args ...string) error { return errors.New("exec: not found") }

	if err := l.OpenImage("https://x/y.jpg"); err == nil {
		t.Fatal("OpenImage returned nil error when start failed")
	}
}

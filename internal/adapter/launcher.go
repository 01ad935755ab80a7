package adapter

import (
	"fmt"
	"log/slog"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// Launcher opens image and web URLs in an external program. It is the
// image-loading capability for thumbnails: the terminal never decodes images.
type Launcher struct {
	command string   // configured viewer command, empty for auto-detect
	args    []string // additional arguments for the viewer
	logger  *slog.Logger

	// Overridable for tests
	goos     string
	lookPath func(file string) (string, error)
	start    func(name string, args ...string) error
}

// candidateViewers lists viewers that accept an http(s) URL directly, in
// preference order per platform. Platforms without an entry go straight to the
// system default handler.
var candidateViewers = map[string][]string{
	"linux":   {"feh", "imv-wayland", "sxiv"},
	"freebsd": {"feh"},
}

// NewLauncher creates a Launcher. An empty command means auto-detect.
func NewLauncher(command string, args []string, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{
		command:  strings.TrimSpace(command),
		args:     args,
		logger:   logger,
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		start:    startDetached,
	}
}

// OpenImage opens an image URL (a meal thumbnail) in a viewer
func (l *Launcher) OpenImage(rawURL string) error {
	if err := validateURL(rawURL); err != nil {
		return err
	}

	// Tier 1: user configured a specific viewer
	if l.command != "" {
		args := append(append([]string{}, l.args...), rawURL)
		l.logger.Info("launching configured viewer", "command", l.command, "args", args)
		if err := l.start(l.command, args...); err != nil {
			return fmt.Errorf("failed to launch %s: %w", l.command, err)
		}
		return nil
	}

	// Tier 2: first installed candidate viewer
	for _, viewer := range candidateViewers[l.goos] {
		if _, err := l.lookPath(viewer); err != nil {
			l.logger.Debug("viewer not available", "viewer", viewer, "error", err)
			continue
		}
		if err := l.start(viewer, rawURL); err == nil {
			l.logger.Info("launched with detected viewer", "viewer", viewer)
			return nil
		}
	}

	// Tier 3: system default handler
	return l.OpenURL(rawURL)
}

// OpenURL opens a web URL (recipe source, video) with the system default handler
func (l *Launcher) OpenURL(rawURL string) error {
	if err := validateURL(rawURL); err != nil {
		return err
	}

	name, args := defaultOpener(l.goos, rawURL)
	l.logger.Info("launching with system default", "os", l.goos, "url", rawURL)
	if err := l.start(name, args...); err != nil {
		return fmt.Errorf("failed to open %s: %w", rawURL, err)
	}
	return nil
}

// defaultOpener returns the platform's "open this URL" command
func defaultOpener(goos, rawURL string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{rawURL}
	case "windows":
		return "cmd", []string{"/c", "start", "", rawURL}
	default:
		// Linux and other Unix-like systems
		return "xdg-open", []string{rawURL}
	}
}

// validateURL accepts only absolute http(s) URLs so nothing else is handed to
// a shell opener
func validateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return fmt.Errorf("no URL to open")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open non-web URL %q", rawURL)
	}
	return nil
}

// startDetached starts the command without waiting for it
func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait() // Reap the child when it exits
	return nil
}

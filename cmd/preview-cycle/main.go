// Command preview-cycle plays the ink ratio cycle in the terminal.
//
// Usage:
//
//	preview-cycle
//	preview-cycle -fps 15 -spring
//	preview-cycle -remember -easing quint   # saved and reused on the next -remember run
//
// Keys: space pause, ←/→ step, +/- speed, s spring, q quit.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	inkmotion "github.com/tphakala/go-ink-motion"
	"github.com/tphakala/go-ink-motion/internal/preset"
	"github.com/tphakala/go-ink-motion/internal/preview"
)

const appName = "ink-motion"

var errNoTerminal = errors.New("preview needs an interactive terminal; use render-cycle for files")

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	settingsFlags := preset.RegisterFlags(flag.CommandLine)
	width := flag.Int("width", preview.DefaultWidth, "Track width in cells")
	spring := flag.Bool("spring", false, "Smooth displayed positions with a spring")
	remember := flag.Bool("remember", false, "Start from and save the last used settings")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	if !isTerminal(os.Stdout.Fd()) {
		return errNoTerminal
	}

	var store *preset.Store
	base := preset.Default()
	if *remember {
		var err error
		if store, err = preset.OpenStore(appName); err != nil {
			return err
		}
		last, ok, err := store.LoadLast()
		if err != nil {
			return err
		}
		if ok {
			base = last
			if *verbose {
				log.Printf("Using saved settings")
			}
		}
	}

	settings, err := settingsFlags.Resolve(base)
	if err != nil {
		return err
	}

	final, err := play(&settings, *width, *spring)
	if err != nil {
		return err
	}

	if store != nil {
		settings.FPS = final.FPS()
		if err := store.SaveLast(settings); err != nil {
			return err
		}
		if *verbose {
			log.Printf("Saved settings: %d frames at %d fps", settings.Frames, settings.FPS)
		}
	}
	return nil
}

// play runs the preview until the user quits and returns its final state.
func play(s *preset.Settings, width int, spring bool) (preview.Model, error) {
	cfg := s.Config()
	model, err := inkmotion.New(&cfg)
	if err != nil {
		return preview.Model{}, fmt.Errorf("failed to create motion model: %w", err)
	}

	opts := preview.DefaultOptions()
	opts.FPS = s.FPS
	opts.Width = width
	opts.Spring = spring

	p, err := preview.New(model, opts)
	if err != nil {
		return preview.Model{}, err
	}

	final, err := tea.NewProgram(p, tea.WithAltScreen()).Run()
	if err != nil {
		return preview.Model{}, fmt.Errorf("preview failed: %w", err)
	}
	m, ok := final.(preview.Model)
	if !ok {
		return preview.Model{}, fmt.Errorf("preview returned unexpected model %T", final)
	}
	return m, nil
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

package main

import (
	"fmt"
	"io"

	"github.com/younwookim/focusnav/internal/application/replay"
	"github.com/younwookim/focusnav/internal/application/scene/menu"
	"github.com/younwookim/focusnav/internal/infrastructure/config"
)

// runReplay feeds a recording through a fresh menu without opening a window
// and writes the focus trail, one element per line.
func runReplay(cfg *config.NavigationConfig, loader *config.Loader, path string, w io.Writer) error {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}

	layout, err := loader.LoadLayout(data.Layout)
	if err != nil {
		return fmt.Errorf("failed to load replay layout: %w", err)
	}

	m, err := menu.New(cfg, layout, "")
	if err != nil {
		return err
	}

	replayer := replay.NewReplayer(*data)
	for {
		input, ok := replayer.GetInput()
		if !ok {
			break
		}
		m.Apply(input)
	}

	fmt.Fprintf(w, "replay %s: %d frames, layout %s\n", path, replayer.TotalFrames(), data.Layout)
	for i, id := range m.FocusTrail() {
		fmt.Fprintf(w, "%3d %s\n", i, id)
	}
	for _, id := range m.Activated() {
		fmt.Fprintf(w, "activated %s\n", id)
	}
	return nil
}

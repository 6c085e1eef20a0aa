package main

import (
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/focusnav/internal/application/game"
	"github.com/younwookim/focusnav/internal/application/scene/menu"
	"github.com/younwookim/focusnav/internal/infrastructure/config"
)

func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func main() {
	// Parse command line flags
	layoutFlag := flag.String("layout", "main_menu", "Layout to show (configs/layouts/<name>.yaml)")
	configFlag := flag.String("configs", "", "Read configs from this directory instead of the embedded ones")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play a recording headless and print the focus trail")
	flag.Parse()

	loader, err := newLoader(*configFlag)
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	cfg, err := loader.LoadNavigation()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *replayFlag != "" {
		if err := runReplay(cfg, loader, *replayFlag, os.Stdout); err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		return
	}

	layout, err := loader.LoadLayout(*layoutFlag)
	if err != nil {
		log.Fatalf("Failed to load layout: %v", err)
	}

	m, err := menu.New(cfg, layout, *recordFlag)
	if err != nil {
		log.Fatalf("Failed to create menu: %v", err)
	}
	g := game.New(m, cfg.Display)

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale,
		cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle("Focus Navigation - " + layout.Name)
	ebiten.SetTPS(cfg.Display.Framerate)

	// Run game
	err = ebiten.RunGame(g)
	g.Shutdown()
	if err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"os"
	"path/filepath"
	"strings"

	"floatme/internal/config"
	"floatme/internal/game"

	"github.com/charmbracelet/log"
)

func main() {
	// Assets and level.txt live next to deployed binaries. "go run" builds
	// into a temp go-build directory, so stay put there.
	if execPath, err := os.Executable(); err == nil {
		if execDir := filepath.Dir(execPath); !strings.Contains(execDir, "go-build") {
			if err := os.Chdir(execDir); err != nil {
				log.Warn("chdir failed", "dir", execDir, "err", err)
			}
		}
	}

	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		log.Fatal("config", "err", err)
	}
	if lvl, err := log.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(lvl)
	} else {
		log.Warn("unknown log level, using info", "level", cfg.Log.Level)
	}

	if err := game.New(cfg).Run(); err != nil {
		log.Fatal("game", "err", err)
	}
}

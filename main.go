// boundless is a terminal viewer for a procedurally generated 2D tile world.
// Arrow keys or hjkl pan, +/- or the mouse wheel zoom, left click digs and
// right click places dirt.
package main

import (
	"flag"
	"os"

	"boundless/internal/config"
	"boundless/internal/game"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	cfgPath := flag.String("config", "", "Path to a YAML/TOML/JSON config file")
	seed := flag.Int64("seed", 0, "Terrain seed (overrides world.seed when non-zero)")
	flag.Parse()

	// A missing .env is fine; BOUNDLESS_* variables may come from the shell.
	_ = godotenv.Load()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	if *seed != 0 {
		cfg.World.Seed = *seed
	}
	if cfg.Log.File == "" {
		// stderr belongs to the terminal while the screen is up.
		cfg.Log.Level = "error"
	}
	log, err := cfg.Log.NewLogger(os.Stderr)
	if err != nil {
		logrus.Fatalf("logger: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}
	screen.EnableMouse()

	if err := game.New(screen, game.OptionsFrom(cfg), log).Run(); err != nil {
		log.WithError(err).Fatal("viewer stopped")
	}
}

//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strconv"
	"strings"

	"duel-ca/internal/app"
	"duel-ca/internal/core"
	_ "duel-ca/internal/sims/duel"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Lookup(cfg.Sim)
	if !ok {
		log.Fatalf("unknown sim %q (have: %s)", cfg.Sim, strings.Join(core.Names(), ", "))
	}

	sim := factory(map[string]string{
		"w": strconv.Itoa(cfg.Width),
		"h": strconv.Itoa(cfg.Height),
	})
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.TPS, cfg.HUDWidth, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("duel-ca — " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

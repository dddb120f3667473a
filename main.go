package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/cardwalk/character"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	profile := flag.String("profile", "", "character profile for the player (profiles/<name>.yaml)")
	npcs := flag.Int("npcs", 3, "number of scripted wanderers")
	seed := flag.Int64("seed", 1, "seed for scenery and spawn placement")
	music := flag.Bool("music", true, "play background music")
	watch := flag.Bool("watch", false, "hot reload prefabs, profiles and scripts from ./prefabs")
	flag.Parse()

	character.SetDebug(*debug)

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("cardwalk")

	game, err := NewGame(Options{
		Debug:   *debug,
		Profile: *profile,
		NPCs:    max(*npcs, 0),
		Seed:    *seed,
		Music:   *music,
		Watch:   *watch,
	})
	if err != nil {
		log.Fatal(err)
	}

	defer game.Close()
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

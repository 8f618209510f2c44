// Command levelcheck loads a TMX level and reports its layers and the
// problems that would break a run through it.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	cfg "github.com/automoto/riftline/config"
	"github.com/automoto/riftline/shared/leveldata"
)

func main() {
	path := flag.String("map", "assets/levels/riftline.tmx", "TMX file to check")
	flag.Parse()

	level, err := leveldata.Load(os.DirFS(filepath.Dir(*path)), filepath.Base(*path))
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	fmt.Printf("%s: %dx%d px, %d solid tiles, %d special tiles\n",
		level.Name, level.Width, level.Height, len(level.Tiles), len(level.SpecialTiles))
	for _, name := range level.LayerNames() {
		fmt.Printf("  %-12s %d objects\n", name, len(level.Layer(name)))
	}

	problems := Check(level, cfg.Level.SpawnLayer, cfg.Level.EndCheckpointID)
	for _, p := range problems {
		fmt.Printf("problem: %s\n", p)
	}
	if len(problems) > 0 {
		os.Exit(1)
	}
}

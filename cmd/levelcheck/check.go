package main

import (
	"fmt"

	"github.com/automoto/riftline/shared/leveldata"
)

// Check reports the problems found in level. The checkpoint layer must hold
// unique ids including endID, and enemy wander points must parse.
func Check(level *leveldata.Level, spawnLayer string, endID int) []string {
	var problems []string

	if len(level.Layer(spawnLayer)) == 0 {
		problems = append(problems, fmt.Sprintf("layer %q has no player spawn", spawnLayer))
	}

	seen := map[int]bool{}
	for _, o := range level.Layer("checkpoints") {
		id := o.Int("id")
		if id != 0 && seen[id] {
			problems = append(problems, fmt.Sprintf("checkpoint id %d is used twice", id))
		}
		seen[id] = true
	}
	if !seen[endID] {
		problems = append(problems, fmt.Sprintf("no final checkpoint with id %d", endID))
	}

	for _, o := range level.Layer("enemies") {
		for _, key := range []string{"wander_point_a", "wander_point_b"} {
			if _, err := o.TilePoint(key); err != nil {
				problems = append(problems, fmt.Sprintf("enemy %q: %v", o.Name, err))
			}
		}
	}

	if len(level.Tiles) == 0 {
		problems = append(problems, "map has no solid tiles")
	}
	return problems
}

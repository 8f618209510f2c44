package config

import "github.com/yohamta/donburi/ecs"

// Draw layers for entities created through archetypes.
const (
	Default ecs.LayerID = iota
)

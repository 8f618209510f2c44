package components

import (
	"fmt"

	"github.com/automoto/riftline/shared/gamemath"
	"github.com/yohamta/donburi"
)

// EnemyKind is the object name used in the enemies layer.
type EnemyKind string

const (
	EnemyMovingWall     EnemyKind = "moving_wall"
	EnemyMovingPlatform EnemyKind = "moving_platform"
	EnemyUngrappleable  EnemyKind = "ungrappleable"
)

// ParseEnemyKind maps an enemies layer object name to its kind.
func ParseEnemyKind(name string) (EnemyKind, error) {
	switch k := EnemyKind(name); k {
	case EnemyMovingWall, EnemyMovingPlatform, EnemyUngrappleable:
		return k, nil
	default:
		return "", fmt.Errorf("unknown enemy kind %q", name)
	}
}

// Static kinds never move.
func (k EnemyKind) Static() bool {
	return k == EnemyUngrappleable
}

type EnemyData struct {
	Kind EnemyKind
	// BaseSpeed is the map speed before the dimension multiplier.
	BaseSpeed float64
	Patrol    gamemath.Patrol
}

var Enemy = donburi.NewComponentType[EnemyData]()

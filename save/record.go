// Package save persists player progress between runs.
package save

import dmath "github.com/yohamta/donburi/features/math"

// Record is the persisted progress. Scenes share one *Record and write to it
// directly; a Store flushes it to disk.
type Record struct {
	// LatestCheckpoint is the mid-bottom of the last reached checkpoint. The
	// zero value means the level's own spawn point.
	LatestCheckpoint     dmath.Vec2 `json:"latest_checkpoint"`
	LatestCheckpointID   int        `json:"latest_checkpoint_id"`
	LatestDimension      string     `json:"latest_dimension"`
	HasRing              bool       `json:"has_ring"`
	HasEasterEgg         bool       `json:"has_easter_egg"`
	NumExtraDimsUnlocked int        `json:"num_extra_dims_unlocked"`
	LastVolume           float64    `json:"last_volume"`
	FirstTime            bool       `json:"first_time"`
}

// DefaultDimension is where a fresh record starts.
const DefaultDimension = "parallel"

// DefaultVolume is the fresh-record volume as a fraction of full scale.
const DefaultVolume = 0.5

// Default returns the record of a player who has never played.
func Default() *Record {
	r := &Record{}
	r.Reset()
	return r
}

// Reset wipes progress in place so every holder of the pointer sees it.
func (r *Record) Reset() {
	*r = Record{
		LatestDimension: DefaultDimension,
		LastVolume:      DefaultVolume,
		FirstTime:       true,
	}
}

// HasCheckpoint reports whether a checkpoint position was ever recorded.
func (r *Record) HasCheckpoint() bool {
	return r.LatestCheckpoint != (dmath.Vec2{})
}

// ReachCheckpoint records a checkpoint as the respawn point.
func (r *Record) ReachCheckpoint(id int, midBottom dmath.Vec2) {
	r.LatestCheckpointID = id
	r.LatestCheckpoint = midBottom
}

// Volume clamps LastVolume to [0, 1].
func (r *Record) Volume() float64 {
	switch {
	case r.LastVolume < 0:
		return 0
	case r.LastVolume > 1:
		return 1
	default:
		return r.LastVolume
	}
}

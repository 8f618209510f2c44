package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Ratio is the remaining fraction of health.
func (h *HealthData) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	r := float64(h.Current) / float64(h.Max)
	if r < 0 {
		return 0
	}
	return r
}

// HealthBarData animates the white flash segment left behind when health
// changes.
type HealthBarData struct {
	// Flash is the number of frames the flash holds before shrinking.
	Flash int
	// FlashSize is the flash segment in HP units.
	FlashSize float64
	// Lost is set when the last change was a loss. A gain flashes inside the
	// bar instead of past its end.
	Lost bool
	Last int
}

var Health = donburi.NewComponentType[HealthData]()
var HealthBar = donburi.NewComponentType[HealthBarData]()

package components

import "github.com/yohamta/donburi"

// HealthData is clamped to [0, Max] by systems.TakeDamage.
type HealthData struct {
	Current int
	Max     int
}

// Fraction is Current over Max, 0 when Max is unset.
func (h *HealthData) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

// HealthBarData shows an enemy's bar after it is hit.
type HealthBarData struct {
	TimeToLive int // frames
}

var Health = donburi.NewComponentType[HealthData]()
var HealthBar = donburi.NewComponentType[HealthBarData]()

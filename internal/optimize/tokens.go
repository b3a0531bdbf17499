// Package optimize runs the four-stage prompt optimizer: Deconstruct,
// Diagnose, Develop and Deliver. Every stage is a pure function of the brief.
package optimize

// TokenStats holds token estimates for the original and optimized prompts.
type TokenStats struct {
	Before int `json:"before"`
	After  int `json:"after"`
}

// Added returns how many tokens the optimized prompt adds.
func (s TokenStats) Added() int {
	return s.After - s.Before
}

// PercentGrowth returns the size change relative to the original prompt.
func (s TokenStats) PercentGrowth() float64 {
	if s.Before == 0 {
		return 0
	}
	return float64(s.Added()) / float64(s.Before) * 100
}

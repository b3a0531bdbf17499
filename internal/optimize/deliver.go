package optimize

// Deliver turns the diagnosis into report lists and attaches the optimized
// prompt and scores.
func Deliver(optimized string, d *Diagnosis) *Report {
	return &Report{
		OptimizedPrompt:   optimized,
		Improvements:      improvements(d),
		Techniques:        appliedTechniques(d),
		ProTips:           proTips(d),
		Complexity:        d.ComplexityLevel,
		SpecificityScore:  d.SpecificityLevel,
		CompletenessScore: d.CompletenessLevel,
	}
}

func improvements(d *Diagnosis) []string {
	var out []string
	if d.hasGap(GapIntent) {
		out = append(out, ImprovementIntent)
	}
	if d.hasAmbiguity(AmbiguityAudience) {
		out = append(out, ImprovementPersona)
	}
	if d.SpecificityLevel < 70 {
		out = append(out, ImprovementSpecificity)
	}
	if d.CompletenessLevel < 80 {
		out = append(out, ImprovementCompleteness)
	}
	return append(out, ImprovementRole, ImprovementQA)
}

func appliedTechniques(d *Diagnosis) []string {
	out := append([]string(nil), baseTechniques...)
	if d.ComplexityLevel == ComplexityComplex {
		out = append(out, complexTechniques...)
	}
	if d.hasPriority(PrioritySpecificity) {
		out = append(out, specificityTechniques...)
	}
	return out
}

func proTips(d *Diagnosis) []string {
	var out []string
	if d.SpecificityLevel < 80 {
		out = append(out, TipSpecificity)
	}
	if d.CompletenessLevel < 90 {
		out = append(out, TipCompleteness)
	}
	return append(out, TipPortable, TipFollowUp)
}

package optimize

import (
	"math"
	"strings"
)

// Diagnose scores an Analysis with fixed rules.
func Diagnose(a *Analysis) *Diagnosis {
	return &Diagnosis{
		ClarityGaps:          clarityGaps(a),
		Ambiguities:          ambiguities(a),
		SpecificityLevel:     specificity(a),
		CompletenessLevel:    completeness(a),
		StructureNeeds:       structureNeeds(a.Context.WordCount),
		ComplexityLevel:      complexity(a),
		OptimizationPriority: priorities(a),
	}
}

func clarityGaps(a *Analysis) []string {
	var gaps []string
	if !strings.Contains(a.CoreIntent, "具体的") {
		gaps = append(gaps, GapIntent)
	}
	if len(a.KeyEntities) < 3 {
		gaps = append(gaps, GapEntities)
	}
	if len(a.MissingElements) > 2 {
		gaps = append(gaps, GapMissing)
	}
	return gaps
}

func ambiguities(a *Analysis) []string {
	var out []string
	if a.Context.Audience.Age == "" && a.Context.Audience.Occupation == "" {
		out = append(out, AmbiguityAudience)
	}
	if a.OutputRequirements.KeywordIntegration == 0 {
		out = append(out, AmbiguityKeywords)
	}
	return out
}

// specificity awards 25 points for each of four independent signals.
func specificity(a *Analysis) int {
	score := 0
	if len(a.KeyEntities) >= 3 {
		score += 25
	}
	if a.Context.Audience.Age != "" {
		score += 25
	}
	if hasPrimaryInfo(a.Context.PrimaryInfo) {
		score += 25
	}
	if len(a.ProvidedElements) >= 4 {
		score += 25
	}
	return score
}

func completeness(a *Analysis) int {
	ratio := float64(len(a.ProvidedElements)) / canonicalElementCount
	return clampScore(int(math.Round(ratio * 100)))
}

func structureNeeds(wordCount int) StructureNeed {
	switch {
	case wordCount >= 5000:
		return StructureComplex
	case wordCount >= 2000:
		return StructureStructured
	case wordCount <= 500:
		return StructureConcise
	default:
		return StructureStandard
	}
}

func complexity(a *Analysis) Complexity {
	points := 0
	if len(a.KeyEntities) > 5 {
		points++
	}
	if a.Context.WordCount > 3000 {
		points++
	}
	if len(a.Constraints) > 3 {
		points++
	}
	if len(a.MissingElements) < 2 {
		points++
	}

	switch {
	case points >= 3:
		return ComplexityComplex
	case points >= 2:
		return ComplexityModerate
	default:
		return ComplexitySimple
	}
}

func priorities(a *Analysis) []string {
	var out []string
	for _, p := range priorityForMissing {
		if a.HasMissing(p.missing) {
			out = append(out, p.priority)
		}
	}
	return out
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

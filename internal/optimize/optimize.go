package optimize

import (
	"github.com/HartBrook/moanote/internal/brief"
	"github.com/HartBrook/moanote/internal/textutil"
)

// Report is the result of an optimization pass.
type Report struct {
	OptimizedPrompt   string     `json:"optimizedPrompt"`
	Improvements      []string   `json:"improvements"`
	Techniques        []string   `json:"techniques"`
	ProTips           []string   `json:"proTips"`
	Complexity        Complexity `json:"complexity"`
	SpecificityScore  int        `json:"specificityScore"`
	CompletenessScore int        `json:"completenessScore"`

	// Display-only context.
	OriginalPrompt string        `json:"originalPrompt,omitempty"`
	RequestType    RequestType   `json:"requestType"`
	Stats          TokenStats    `json:"stats"`
	Anchors        *AnchorResult `json:"anchors,omitempty"`
	Analysis       *Analysis     `json:"analysis,omitempty"`
	Diagnosis      *Diagnosis    `json:"diagnosis,omitempty"`
}

// Optimize runs Deconstruct, Diagnose, Develop and Deliver over b.
// originalPrompt is carried into the report for display and token stats only.
// A nil brief is treated as empty.
func Optimize(originalPrompt string, b *brief.Brief) *Report {
	if b == nil {
		b = &brief.Brief{}
	}

	analysis := Deconstruct(b)
	diagnosis := Diagnose(analysis)
	optimized := Develop(analysis, diagnosis)

	report := Deliver(optimized, diagnosis)
	report.OriginalPrompt = originalPrompt
	report.RequestType = ClassifyRequest(analysis)
	report.Stats = TokenStats{
		Before: textutil.EstimateTokens(originalPrompt),
		After:  textutil.EstimateTokens(optimized),
	}
	report.Anchors = ValidateAnchors(b, optimized)
	report.Analysis = analysis
	report.Diagnosis = diagnosis
	return report
}

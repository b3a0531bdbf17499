package optimize

import "github.com/HartBrook/moanote/internal/brief"

// EntityType classifies a key entity.
type EntityType string

const (
	EntityKeyword        EntityType = "keyword"
	EntityTargetAudience EntityType = "target_audience"
	EntityWriterPersona  EntityType = "writer_persona"
)

// Entity is one salient term pulled from the brief.
type Entity struct {
	Type  EntityType `json:"type"`
	Value string     `json:"value"`
}

// Context is the writing situation with defaults applied.
type Context struct {
	Platform     string              `json:"platform"`
	ContentType  string              `json:"contentType"`
	WordCount    int                 `json:"wordCount"`
	WritingStyle string              `json:"writingStyle"`
	Tone         string              `json:"tone"`
	Audience     brief.ReaderPersona `json:"audience"`
	PrimaryInfo  brief.PrimaryInfo   `json:"primaryInfo"`
}

// OutputRequirements describes the expected deliverable.
type OutputRequirements struct {
	Format             string `json:"format"`
	Length             string `json:"length"`
	Structure          string `json:"structure"`
	Tone               string `json:"tone"`
	KeywordIntegration int    `json:"keywordIntegration"`
	CallToAction       string `json:"callToAction"`
}

// Analysis is the Deconstruct stage output.
type Analysis struct {
	CoreIntent         string             `json:"coreIntent"`
	KeyEntities        []Entity           `json:"keyEntities"`
	Context            Context            `json:"context"`
	OutputRequirements OutputRequirements `json:"outputRequirements"`
	Constraints        []string           `json:"constraints"`
	ProvidedElements   []string           `json:"providedElements"`
	MissingElements    []string           `json:"missingElements"`
}

// HasMissing reports whether name is among the missing elements.
func (a *Analysis) HasMissing(name string) bool {
	for _, m := range a.MissingElements {
		if m == name {
			return true
		}
	}
	return false
}

// Complexity buckets how demanding the brief is.
type Complexity string

const (
	ComplexitySimple   Complexity = "simple"
	ComplexityModerate Complexity = "moderate"
	ComplexityComplex  Complexity = "complex"
)

// StructureNeed buckets the article length.
type StructureNeed string

const (
	StructureComplex    StructureNeed = "complex"
	StructureStructured StructureNeed = "structured"
	StructureConcise    StructureNeed = "concise"
	StructureStandard   StructureNeed = "standard"
)

// Diagnosis is the Diagnose stage output.
type Diagnosis struct {
	ClarityGaps          []string      `json:"clarityGaps"`
	Ambiguities          []string      `json:"ambiguities"`
	SpecificityLevel     int           `json:"specificityLevel"`
	CompletenessLevel    int           `json:"completenessLevel"`
	StructureNeeds       StructureNeed `json:"structureNeeds"`
	ComplexityLevel      Complexity    `json:"complexityLevel"`
	OptimizationPriority []string      `json:"optimizationPriority"`
}

func (d *Diagnosis) hasGap(name string) bool       { return containsString(d.ClarityGaps, name) }
func (d *Diagnosis) hasAmbiguity(name string) bool { return containsString(d.Ambiguities, name) }
func (d *Diagnosis) hasPriority(name string) bool {
	return containsString(d.OptimizationPriority, name)
}

// RequestType classifies the article for technique selection.
type RequestType string

const (
	RequestCreative    RequestType = "creative"
	RequestTechnical   RequestType = "technical"
	RequestEducational RequestType = "educational"
	RequestComplex     RequestType = "complex"
)

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

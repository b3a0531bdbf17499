package optimize

import (
	"testing"

	"github.com/HartBrook/moanote/internal/brief"
	"github.com/stretchr/testify/assert"
)

func TestDeconstruct_CoreIntent(t *testing.T) {
	tests := []struct {
		name  string
		brief brief.Brief
		want  string
	}{
		{"purpose wins", brief.Brief{Purpose: "基本を伝える", Goal: brief.GoalBuy, Keywords: []string{"Go"}}, "記事作成: 基本を伝える"},
		{"blank purpose ignored", brief.Brief{Purpose: "  ", Goal: brief.GoalShare}, "読者のシェア・拡散を促進"},
		{"goal", brief.Brief{Goal: brief.GoalLearn, Keywords: []string{"Go"}}, "読者の学習・知識習得を促進"},
		{"unknown goal", brief.Brief{Goal: "sell"}, "読者との価値ある関係構築"},
		{"keyword", brief.Brief{Keywords: []string{"Go", "CLI"}}, "「Go」に関する価値ある情報提供"},
		{"nothing", brief.Brief{}, "読者に響く魅力的なコンテンツ作成"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Deconstruct(&tt.brief).CoreIntent)
		})
	}
}

func TestDeconstruct_Entities(t *testing.T) {
	a := Deconstruct(beginnerProgrammingBrief())

	assert.Equal(t, []Entity{
		{Type: EntityKeyword, Value: "プログラミング"},
		{Type: EntityTargetAudience, Value: "20代学生"},
		{Type: EntityWriterPersona, Value: "エンジニア (です・ます調)"},
	}, a.KeyEntities)
}

func TestDeconstruct_ContextDefaults(t *testing.T) {
	a := Deconstruct(&brief.Brief{})

	assert.Equal(t, "note/ブログ", a.Context.Platform)
	assert.Equal(t, "記事", a.Context.ContentType)
	assert.Equal(t, 3000, a.Context.WordCount)
	assert.Equal(t, "PREP", a.Context.WritingStyle)
	assert.Equal(t, "です・ます調", a.Context.Tone)

	assert.Equal(t, OutputRequirements{
		Format:             "記事形式",
		Length:             "3000文字",
		Structure:          "PREP法",
		Tone:               "です・ます調",
		KeywordIntegration: 0,
		CallToAction:       "engagement",
	}, a.OutputRequirements)
}

func TestDeconstruct_Constraints(t *testing.T) {
	assert.Empty(t, Deconstruct(&brief.Brief{}).Constraints)

	a := Deconstruct(&brief.Brief{
		Keywords:     []string{"React", "学習法"},
		WordCount:    2000,
		WritingStyle: brief.WritingStyle{EmojiFrequency: "none"},
	})
	assert.Equal(t, []string{
		"文字数: 2000文字以内",
		"必須キーワード: React, 学習法",
		"絵文字使用: none",
	}, a.Constraints)
}

func TestDeconstruct_Elements(t *testing.T) {
	a := Deconstruct(beginnerProgrammingBrief())
	assert.Equal(t, []string{ElemKeywords, ElemReader, ElemWriter, ElemPurpose, ElemTemplate}, a.ProvidedElements)
	assert.Equal(t, []string{MissingChallenges, MissingPrimaryInfo, MissingPsychology}, a.MissingElements)

	full := fullHowToBrief()
	full.PsychologyEffects.Authority = true
	a = Deconstruct(full)
	assert.Len(t, a.ProvidedElements, 6)
	assert.Empty(t, a.MissingElements)
}

func TestDeconstruct_BlankPurposeNotProvided(t *testing.T) {
	b := beginnerProgrammingBrief()
	b.Purpose = "  "

	a := Deconstruct(b)
	assert.NotContains(t, a.ProvidedElements, ElemPurpose)
	assert.Equal(t, []string{ElemKeywords, ElemReader, ElemWriter, ElemTemplate}, a.ProvidedElements)
}

func TestDiagnose_Rules(t *testing.T) {
	d := Diagnose(Deconstruct(beginnerProgrammingBrief()))

	assert.Equal(t, []string{GapIntent, GapMissing}, d.ClarityGaps)
	assert.Empty(t, d.Ambiguities)
	assert.Equal(t, StructureStandard, d.StructureNeeds)
	assert.Equal(t, []string{PriorityPersona, PrioritySpecificity}, d.OptimizationPriority)

	d = Diagnose(Deconstruct(&brief.Brief{}))
	assert.Equal(t, []string{GapIntent, GapEntities, GapMissing}, d.ClarityGaps)
	assert.Equal(t, []string{AmbiguityAudience, AmbiguityKeywords}, d.Ambiguities)
	assert.Equal(t, []string{PriorityPurpose, PriorityPersona, PrioritySpecificity}, d.OptimizationPriority)
}

func TestDiagnose_IntentWithConcreteWordHasNoGap(t *testing.T) {
	d := Diagnose(Deconstruct(&brief.Brief{Purpose: "具体的な手順を示す"}))
	assert.NotContains(t, d.ClarityGaps, GapIntent)
}

func TestStructureNeeds(t *testing.T) {
	tests := map[int]StructureNeed{
		8000: StructureComplex,
		5000: StructureComplex,
		4999: StructureStructured,
		2000: StructureStructured,
		1999: StructureStandard,
		501:  StructureStandard,
		500:  StructureConcise,
		140:  StructureConcise,
	}
	for wc, want := range tests {
		assert.Equal(t, want, structureNeeds(wc), "wordCount=%d", wc)
	}
}

func TestComplexity(t *testing.T) {
	a := &Analysis{Context: Context{WordCount: 3000}, MissingElements: []string{"a", "b"}}
	assert.Equal(t, ComplexitySimple, complexity(a))

	a.Context.WordCount = 3001
	a.MissingElements = []string{"a"}
	assert.Equal(t, ComplexityModerate, complexity(a))

	a.KeyEntities = make([]Entity, 6)
	assert.Equal(t, ComplexityComplex, complexity(a))
}

func TestClassifyRequest(t *testing.T) {
	tests := []struct {
		name  string
		brief brief.Brief
		want  RequestType
	}{
		{"primary info", brief.Brief{Keywords: []string{"技術"}, PrimaryInfo: brief.PrimaryInfo{Feelings: "嬉しい"}}, RequestCreative},
		{"technical keyword", brief.Brief{Keywords: []string{"Web開発"}}, RequestTechnical},
		{"educational goal", brief.Brief{Goal: brief.GoalLearn}, RequestEducational},
		{"many missing", brief.Brief{Keywords: []string{"料理"}}, RequestComplex},
		{
			"fallback",
			brief.Brief{
				Keywords:          []string{"料理"},
				Purpose:           "レシピを伝える",
				ReaderPersona:     brief.ReaderPersona{Challenges: []string{"時間がない"}},
				PsychologyEffects: brief.PsychologyEffects{Empathy: true},
			},
			RequestCreative,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyRequest(Deconstruct(&tt.brief)))
		})
	}
}

func TestTechniqueAndFramework(t *testing.T) {
	assert.Equal(t, "思考連鎖 + 体系的枠組み + 多層分析", Technique(RequestComplex))
	assert.Equal(t, "会話的アプローチ + 具体例重視", Technique("other"))

	assert.Contains(t, Framework("story"), "ストーリーテリング 強化版")
	assert.Equal(t, Framework("prep"), Framework("how-to"))
	assert.Equal(t, Framework("prep"), Framework("PREP"))
}

func TestDeliver(t *testing.T) {
	d := &Diagnosis{
		SpecificityLevel:     75,
		CompletenessLevel:    85,
		ComplexityLevel:      ComplexityComplex,
		OptimizationPriority: []string{PrioritySpecificity},
	}
	r := Deliver("prompt", d)

	assert.Equal(t, "prompt", r.OptimizedPrompt)
	assert.Equal(t, []string{ImprovementRole, ImprovementQA}, r.Improvements)
	assert.Len(t, r.Techniques, 7)
	assert.Equal(t, []string{TipSpecificity, TipCompleteness, TipPortable, TipFollowUp}, r.ProTips)
	assert.Equal(t, ComplexityComplex, r.Complexity)
	assert.Equal(t, 75, r.SpecificityScore)
	assert.Equal(t, 85, r.CompletenessScore)
}

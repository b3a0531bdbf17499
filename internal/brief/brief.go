// Package brief defines the article brief: every selection a user makes in the
// wizard (keywords, personas, style, goal, word count). The prompt generator and
// optimizer only ever read a Brief; they never mutate one.
package brief

import (
	"fmt"
	"strings"

	"github.com/HartBrook/moanote/internal/errors"
)

// Limits and defaults.
const (
	MaxKeywords      = 10
	DefaultWordCount = 3000
	DefaultTone      = "です・ます調"
	DefaultTemplate  = "prep"
	DefaultEmoji     = "moderate"

	// PlaceholderKeyword stands in for the main keyword when none was supplied.
	PlaceholderKeyword = "テーマ"
)

// Goal is the reader action the article aims for.
type Goal string

const (
	GoalLearn   Goal = "learn"
	GoalBuy     Goal = "buy"
	GoalThink   Goal = "think"
	GoalAction  Goal = "action"
	GoalShare   Goal = "share"
	GoalContact Goal = "contact"
)

// Goals lists the known goals in wizard order.
var Goals = []Goal{GoalLearn, GoalBuy, GoalThink, GoalAction, GoalShare, GoalContact}

// Templates lists the known structure templates.
var Templates = []string{"prep", "story", "problem-solution", "how-to", "comparison"}

// EmojiFrequencies lists the known emoji policies.
var EmojiFrequencies = []string{"none", "minimal", "moderate", "frequent"}

// ReaderPersona describes who the article is written for.
type ReaderPersona struct {
	Age          string   `yaml:"age,omitempty" json:"age,omitempty"`
	Occupation   string   `yaml:"occupation,omitempty" json:"occupation,omitempty"`
	ReadingStyle string   `yaml:"reading_style,omitempty" json:"readingStyle,omitempty"`
	Interests    []string `yaml:"interests,omitempty" json:"interests,omitempty"`
	Challenges   []string `yaml:"challenges,omitempty" json:"challenges,omitempty"`
}

// IsZero reports whether no reader field is set.
func (r ReaderPersona) IsZero() bool {
	return r.Age == "" && r.Occupation == "" && r.ReadingStyle == "" &&
		len(r.Interests) == 0 && len(r.Challenges) == 0
}

// WriterCharacter describes the voice the article is written in.
type WriterCharacter struct {
	Age           string   `yaml:"age,omitempty" json:"age,omitempty"`
	Occupation    string   `yaml:"occupation,omitempty" json:"occupation,omitempty"`
	Personalities []string `yaml:"personalities,omitempty" json:"personalities,omitempty"`
	Tone          string   `yaml:"tone,omitempty" json:"tone,omitempty"`
	Motivations   []string `yaml:"motivations,omitempty" json:"motivations,omitempty"`
}

// IsZero reports whether no writer field is set.
func (w WriterCharacter) IsZero() bool {
	return w.Age == "" && w.Occupation == "" && w.Tone == "" &&
		len(w.Personalities) == 0 && len(w.Motivations) == 0
}

// WritingStyle holds the structural and tonal switches.
type WritingStyle struct {
	Conversational bool   `yaml:"conversational,omitempty" json:"conversational,omitempty"`
	Template       string `yaml:"template,omitempty" json:"template,omitempty"`
	EmojiFrequency string `yaml:"emoji_frequency,omitempty" json:"emojiFrequency,omitempty"`
}

// PrimaryInfo is first-hand material supplied by the user.
type PrimaryInfo struct {
	Facts    string `yaml:"facts,omitempty" json:"facts,omitempty"`
	Feelings string `yaml:"feelings,omitempty" json:"feelings,omitempty"`
}

// HasAny reports whether either field has text.
func (p PrimaryInfo) HasAny() bool {
	return strings.TrimSpace(p.Facts) != "" || strings.TrimSpace(p.Feelings) != ""
}

// PsychologyEffects toggles persuasion techniques.
type PsychologyEffects struct {
	Empathy   bool `yaml:"empathy,omitempty" json:"empathy,omitempty"`
	Urgency   bool `yaml:"urgency,omitempty" json:"urgency,omitempty"`
	Authority bool `yaml:"authority,omitempty" json:"authority,omitempty"`
	Scarcity  bool `yaml:"scarcity,omitempty" json:"scarcity,omitempty"`
}

// Any reports whether at least one effect is enabled.
func (p PsychologyEffects) Any() bool {
	return p.Empathy || p.Urgency || p.Authority || p.Scarcity
}

// Brief is the full set of user-chosen parameters driving prompt generation.
// The zero value is a valid, empty brief.
type Brief struct {
	Keywords          []string          `yaml:"keywords,omitempty" json:"keywords,omitempty"`
	Purpose           string            `yaml:"purpose,omitempty" json:"purpose,omitempty"`
	ReaderPersona     ReaderPersona     `yaml:"reader_persona,omitempty" json:"readerPersona,omitempty"`
	WriterCharacter   WriterCharacter   `yaml:"writer_character,omitempty" json:"writerCharacter,omitempty"`
	WritingStyle      WritingStyle      `yaml:"writing_style,omitempty" json:"writingStyle,omitempty"`
	PrimaryInfo       PrimaryInfo       `yaml:"primary_info,omitempty" json:"primaryInfo,omitempty"`
	PsychologyEffects PsychologyEffects `yaml:"psychology_effects,omitempty" json:"psychologyEffects,omitempty"`
	ReferenceStyle    string            `yaml:"reference_style,omitempty" json:"referenceStyle,omitempty"`
	Goal              Goal              `yaml:"goal,omitempty" json:"goal,omitempty"`
	WordCount         int               `yaml:"word_count,omitempty" json:"wordCount,omitempty"`
	CustomPrompt      string            `yaml:"custom_prompt,omitempty" json:"customPrompt,omitempty"`
	UseCustomPrompt   bool              `yaml:"use_custom_prompt,omitempty" json:"useCustomPrompt,omitempty"`
}

// HasKeywords reports whether at least one keyword is set.
func (b *Brief) HasKeywords() bool {
	return len(b.Keywords) > 0
}

// MainKeyword returns the first keyword, or PlaceholderKeyword.
func (b *Brief) MainKeyword() string {
	if len(b.Keywords) == 0 {
		return PlaceholderKeyword
	}
	return b.Keywords[0]
}

// SubKeywords returns every keyword after the first.
func (b *Brief) SubKeywords() []string {
	if len(b.Keywords) < 2 {
		return nil
	}
	return b.Keywords[1:]
}

// HasPurpose reports whether a non-blank purpose was given.
func (b *Brief) HasPurpose() bool {
	return strings.TrimSpace(b.Purpose) != ""
}

// EffectiveWordCount returns WordCount, or DefaultWordCount when unset.
func (b *Brief) EffectiveWordCount() int {
	if b.WordCount <= 0 {
		return DefaultWordCount
	}
	return b.WordCount
}

// Tone returns the writer tone or DefaultTone.
func (b *Brief) Tone() string {
	if b.WriterCharacter.Tone == "" {
		return DefaultTone
	}
	return b.WriterCharacter.Tone
}

// TemplateName returns the structure template or DefaultTemplate.
func (b *Brief) TemplateName() string {
	if b.WritingStyle.Template == "" {
		return DefaultTemplate
	}
	return b.WritingStyle.Template
}

// EmojiFrequencyName returns the emoji policy or DefaultEmoji.
func (b *Brief) EmojiFrequencyName() string {
	if b.WritingStyle.EmojiFrequency == "" {
		return DefaultEmoji
	}
	return b.WritingStyle.EmojiFrequency
}

// CustomOverride returns the custom prompt when it is enabled and non-empty.
func (b *Brief) CustomOverride() (string, bool) {
	if b.UseCustomPrompt && strings.TrimSpace(b.CustomPrompt) != "" {
		return b.CustomPrompt, true
	}
	return "", false
}

// Validate checks the fields the wizard is expected to enforce before a brief
// reaches the generator. Unknown enum values are rejected here even though the
// generator itself would fall back to defaults.
func (b *Brief) Validate() error {
	if b == nil {
		return errors.BriefMissing()
	}

	var problems []string
	if len(b.Keywords) > MaxKeywords {
		problems = append(problems, fmt.Sprintf("at most %d keywords allowed, got %d", MaxKeywords, len(b.Keywords)))
	}
	for i, kw := range b.Keywords {
		if strings.TrimSpace(kw) == "" {
			problems = append(problems, fmt.Sprintf("keyword %d is empty", i+1))
		}
	}
	if b.WordCount < 0 {
		problems = append(problems, fmt.Sprintf("word_count must be positive, got %d", b.WordCount))
	}
	if t := b.WritingStyle.Template; t != "" && !contains(Templates, t) {
		problems = append(problems, fmt.Sprintf("unknown template %q (use %s)", t, strings.Join(Templates, ", ")))
	}
	if e := b.WritingStyle.EmojiFrequency; e != "" && !contains(EmojiFrequencies, e) {
		problems = append(problems, fmt.Sprintf("unknown emoji_frequency %q (use %s)", e, strings.Join(EmojiFrequencies, ", ")))
	}
	if b.Goal != "" && !IsKnownGoal(b.Goal) {
		problems = append(problems, fmt.Sprintf("unknown goal %q", b.Goal))
	}

	if len(problems) > 0 {
		return errors.BriefInvalid(problems)
	}
	return nil
}

// IsKnownGoal reports whether g is one of Goals.
func IsKnownGoal(g Goal) bool {
	for _, known := range Goals {
		if g == known {
			return true
		}
	}
	return false
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

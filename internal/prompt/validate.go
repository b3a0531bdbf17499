package prompt

import (
	"strings"

	"github.com/HartBrook/moanote/internal/brief"
	"github.com/HartBrook/moanote/internal/textutil"
)

// MinLength is the shortest prompt, in characters, considered detailed enough.
const MinLength = 1500

// RequiredHeaders must all appear in a well-formed prompt.
var RequiredHeaders = []string{
	HeaderRole,
	HeaderTarget,
	HeaderTone,
	HeaderKeyword,
	HeaderStructure,
}

// Validation is the outcome of a structural check.
type Validation struct {
	MissingHeaders []string
	MissingMarkers []string
	Length         int
}

// OK reports whether every check passed.
func (v Validation) OK() bool {
	return len(v.MissingHeaders) == 0 && len(v.MissingMarkers) == 0 && !v.TooShort()
}

// TooShort reports whether the prompt is under MinLength.
func (v Validation) TooShort() bool {
	return v.Length < MinLength
}

// Check inspects an already generated prompt. It never fails; problems are
// reported in the returned Validation.
func Check(text string) Validation {
	v := Validation{Length: textutil.CharCount(text)}
	for _, h := range RequiredHeaders {
		if !strings.Contains(text, h) {
			v.MissingHeaders = append(v.MissingHeaders, h)
		}
	}
	for _, m := range []string{MarkerKeywords, MarkerPurpose} {
		if !strings.Contains(text, m) {
			v.MissingMarkers = append(v.MissingMarkers, m)
		}
	}
	return v
}

// Validate regenerates the prompt for b and reports whether it passes Check.
func Validate(b *brief.Brief) bool {
	return Check(Generate(b)).OK()
}

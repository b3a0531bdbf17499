// Package errors provides typed errors for moanote.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrorCode identifies the type of error.
type ErrorCode string

const (
	ErrBriefMissing        ErrorCode = "BRIEF_MISSING"
	ErrBriefInvalid        ErrorCode = "BRIEF_INVALID"
	ErrConfigNotFound      ErrorCode = "CONFIG_NOT_FOUND"
	ErrConfigInvalid       ErrorCode = "CONFIG_INVALID"
	ErrProviderAuthFailed  ErrorCode = "PROVIDER_AUTH_FAILED"
	ErrUnsupportedProvider ErrorCode = "UNSUPPORTED_PROVIDER"
	ErrGenerationFailed    ErrorCode = "GENERATION_FAILED"
	ErrArticleTooShort     ErrorCode = "ARTICLE_TOO_SHORT"
	ErrTemplateNotFound    ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrGitHubAuthFailed    ErrorCode = "GITHUB_AUTH_FAILED"
	ErrGitHubFetchFailed   ErrorCode = "GITHUB_FETCH_FAILED"
	ErrInvalidRepo         ErrorCode = "INVALID_REPO"
)

// MoanoteError represents a typed error with user-friendly hints.
type MoanoteError struct {
	Code    ErrorCode
	Message string
	Hint    string
	Cause   error
}

func (e *MoanoteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *MoanoteError) Unwrap() error {
	return e.Cause
}

// HintText returns the hint. The CLI looks for this method when printing errors.
func (e *MoanoteError) HintText() string {
	return e.Hint
}

// New creates a new MoanoteError.
func New(code ErrorCode, message, hint string) *MoanoteError {
	return &MoanoteError{
		Code:    code,
		Message: message,
		Hint:    hint,
	}
}

// Wrap creates a new MoanoteError wrapping an existing error.
func Wrap(code ErrorCode, message, hint string, cause error) *MoanoteError {
	return &MoanoteError{
		Code:    code,
		Message: message,
		Hint:    hint,
		Cause:   cause,
	}
}

// HasCode reports whether err, or any error it wraps, is a MoanoteError
// with the given code.
func HasCode(err error, code ErrorCode) bool {
	var mErr *MoanoteError
	if !stderrors.As(err, &mErr) {
		return false
	}
	return mErr.Code == code
}

// BriefMissing returns an error for a nil brief handed to the core.
func BriefMissing() *MoanoteError {
	return &MoanoteError{
		Code:    ErrBriefMissing,
		Message: "no brief supplied",
		Hint:    "Pass a brief file with --brief or run `moanote init` to create one",
	}
}

// BriefInvalid returns an error for a brief that fails boundary checks.
func BriefInvalid(problems []string) *MoanoteError {
	return &MoanoteError{
		Code:    ErrBriefInvalid,
		Message: fmt.Sprintf("invalid brief: %s", strings.Join(problems, "; ")),
		Hint:    "Fix the listed fields in your brief file",
	}
}

// ConfigNotFound returns an error for missing config file.
func ConfigNotFound(path string) *MoanoteError {
	return &MoanoteError{
		Code:    ErrConfigNotFound,
		Message: fmt.Sprintf("config file not found: %s", path),
		Hint:    "Run `moanote init` to create a configuration",
	}
}

// ConfigInvalid returns an error for invalid config.
func ConfigInvalid(reason string) *MoanoteError {
	return &MoanoteError{
		Code:    ErrConfigInvalid,
		Message: fmt.Sprintf("invalid config: %s", reason),
		Hint:    "Check your config file at ~/.config/moanote/config.yaml",
	}
}

// ProviderAuthFailed returns an error when a provider has no usable API key.
func ProviderAuthFailed(provider, envVar string) *MoanoteError {
	return &MoanoteError{
		Code:    ErrProviderAuthFailed,
		Message: fmt.Sprintf("%s API authentication failed", provider),
		Hint:    fmt.Sprintf("Set the %s environment variable or add it to your env_file", envVar),
	}
}

// UnsupportedProvider returns an error for an unknown provider name.
func UnsupportedProvider(provider string) *MoanoteError {
	return &MoanoteError{
		Code:    ErrUnsupportedProvider,
		Message: fmt.Sprintf("unsupported provider: %s", provider),
		Hint:    "Use one of: openai, gemini, gemini-pro, anthropic, mock",
	}
}

// GenerationFailed returns an error for a failed article generation call.
func GenerationFailed(reason string, cause error) *MoanoteError {
	return &MoanoteError{
		Code:    ErrGenerationFailed,
		Message: fmt.Sprintf("article generation failed: %s", reason),
		Hint:    "Check your API key and provider, or use `moanote generate` to copy the prompt manually",
		Cause:   cause,
	}
}

// ArticleTooShort returns an error when a provider returns an unusably short article.
func ArticleTooShort(length, minimum int) *MoanoteError {
	return &MoanoteError{
		Code:    ErrArticleTooShort,
		Message: fmt.Sprintf("generated article is too short (%d chars, minimum %d)", length, minimum),
		Hint:    "Review your brief settings; a larger word_count usually helps",
	}
}

// TemplateNotFound returns an error for an unknown template or persona.
func TemplateNotFound(name string) *MoanoteError {
	return &MoanoteError{
		Code:    ErrTemplateNotFound,
		Message: fmt.Sprintf("template not found: %s", name),
		Hint:    "Run `moanote templates list` to see available templates",
	}
}

// GitHubAuthFailed returns an error when no GitHub token can be resolved.
func GitHubAuthFailed(cause error) *MoanoteError {
	return &MoanoteError{
		Code:    ErrGitHubAuthFailed,
		Message: "GitHub authentication failed",
		Hint:    "Run `gh auth login` or set MOANOTE_GITHUB_TOKEN",
		Cause:   cause,
	}
}

// GitHubFetchFailed returns an error for fetch failures.
func GitHubFetchFailed(repo string, cause error) *MoanoteError {
	return &MoanoteError{
		Code:    ErrGitHubFetchFailed,
		Message: fmt.Sprintf("failed to fetch from %s", repo),
		Hint:    "Check that the repository exists and you have access",
		Cause:   cause,
	}
}

// InvalidRepo returns an error for malformed repo strings.
func InvalidRepo(repo string) *MoanoteError {
	return &MoanoteError{
		Code:    ErrInvalidRepo,
		Message: fmt.Sprintf("invalid repository format: %s", repo),
		Hint:    "Use format: github.com/owner/repo or owner/repo",
	}
}

package tailor

import (
	"context"
	"errors"
)

// Client abstracts the generative endpoint that rewrites a resume against a
// job description. Implementations return the tailored resume as HTML.
type Client interface {
	Tailor(ctx context.Context, resumeText, jobDescription string) (string, error)
}

// ErrUpstream indicates the generative endpoint failed or returned an
// unusable response. The call is all-or-nothing: no partial results.
var ErrUpstream = errors.New("tailoring upstream failed")

// ErrNotConfigured is returned when no provider credentials are wired.
var ErrNotConfigured = errors.New("tailoring client not configured")

// PlaceholderClient is a stub implementation used when no provider is
// configured, e.g. local dev without credentials.
type PlaceholderClient struct{}

// Tailor returns ErrNotConfigured.
func (PlaceholderClient) Tailor(ctx context.Context, resumeText, jobDescription string) (string, error) {
	_ = ctx
	_ = resumeText
	_ = jobDescription
	return "", ErrNotConfigured
}

package imagegen

import (
	"context"
	"net/url"
	"strings"
)

// DefaultBaseURL is the public Pollinations prompt endpoint.
const DefaultBaseURL = "https://image.pollinations.ai/prompt"

// Pollinations builds image URLs that render the prompt on first fetch.
// No request is made here.
type Pollinations struct {
	baseURL string
}

func NewPollinations(baseURL string) *Pollinations {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Pollinations{baseURL: strings.TrimRight(baseURL, "/")}
}

func (p *Pollinations) Generate(_ context.Context, prompt string) (string, error) {
	return p.baseURL + "/" + url.PathEscape(prompt), nil
}

package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"resume-tailor/internal/tailor"
)

const (
	defaultAPIURL = "https://api.groq.com/openai/v1/chat/completions"

	maxTokens   = 1500
	temperature = float32(0.7)

	systemPrompt = "You are an expert resume tailoring specialist. Create professional, ATS-optimized resumes in clean HTML format."

	userPromptTemplate = "Please tailor this resume for the specific job:\n\n" +
		"RESUME CONTENT: %s\n\n" +
		"JOB DESCRIPTION: %s\n\n" +
		"Create a tailored resume in clean HTML format with:\n" +
		"- Professional summary highlighting relevant experience\n" +
		"- Skills section with job-relevant keywords\n" +
		"- Experience section emphasizing matching qualifications\n" +
		"- Clean, ATS-friendly formatting\n" +
		"- Use proper HTML tags like <h2>, <h3>, <p>, <ul>, <li>"
)

// Client implements tailor.Client using the Groq Chat Completions API.
type Client struct {
	apiKey     string
	model      string
	apiURL     string
	httpClient *http.Client
}

// NewClient constructs a new Groq client.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GROQ_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("GROQ_MODEL is required")
	}
	timeout := 120 * time.Second
	if raw := strings.TrimSpace(os.Getenv("GROQ_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		apiKey: apiKey,
		model:  model,
		apiURL: defaultAPIURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float32       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Tailor issues exactly one chat-completion call. No retry, no streaming: a
// transient upstream failure surfaces immediately as a terminal error for
// the request.
func (c *Client) Tailor(ctx context.Context, resumeText, jobDescription string) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf(userPromptTemplate, resumeText, jobDescription)},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return "", fmt.Errorf("%w: request timeout: %v", tailor.ErrUpstream, err)
		}
		return "", fmt.Errorf("%w: %v", tailor.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", tailor.ErrUpstream, err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: response parse: %v", tailor.ErrUpstream, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if parsed.Error != nil {
			return "", fmt.Errorf("%w: http status %d: %s (%s)", tailor.ErrUpstream, resp.StatusCode, parsed.Error.Message, parsed.Error.Type)
		}
		return "", fmt.Errorf("%w: http status %d", tailor.ErrUpstream, resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: response missing choices", tailor.ErrUpstream)
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("%w: response empty content", tailor.ErrUpstream)
	}
	return content, nil
}

var _ tailor.Client = (*Client)(nil)

package gemini

import (
	"context"
	"fmt"

	xhttp "TraderPulse/pkg/http"
)

// Client implements repository.TextGenerator against the Gemini
// generateContent REST API with structured JSON output requested.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	client  *xhttp.Client
}

// New creates a Gemini text generation client.
func New(apiKey, baseURL, model string, client *xhttp.Client) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		client:  client,
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateJSON sends prompt to the model and returns the raw JSON text of the
// first candidate.
func (c *Client) GenerateJSON(ctx context.Context, prompt string) ([]byte, error) {
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)

	req := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
		},
	}

	var resp generateResponse
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    url,
		Headers: map[string]string{
			"Content-Type":   "application/json",
			"x-goog-api-key": c.apiKey,
		},
		Body: req,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty candidates in response")
	}

	return []byte(resp.Candidates[0].Content.Parts[0].Text), nil
}

package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-pro"

	// kept close to the chat widget's needs: warm but short answers
	temperature     = 0.7
	maxOutputTokens = 500
)

const systemPreamble = "You are a helpful assistant for a student housing platform in India. " +
	"Students ask about paying-guest (PG) accommodations: rents, sharing types, food, amenities, " +
	"distance to colleges, safety and booking. Answer briefly and practically. If asked about a " +
	"specific property, suggest checking its page or contacting the owner."

var ErrEmptyCandidate = errors.New("model returned no candidates")

// GeminiClient calls the Generative Language REST API directly.
type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewGeminiClient(apiKey, model string, timeout time.Duration) *GeminiClient {
	if model == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// SetBaseURL points the client at a different API host. Tests use it to
// target a local stub server.
func (g *GeminiClient) SetBaseURL(u string) {
	g.baseURL = u
}

func (g *GeminiClient) Configured() bool {
	return g.apiKey != ""
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig geminiGenConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiClient) Generate(ctx context.Context, message string) (string, error) {
	if !g.Configured() {
		return "", errors.New("gemini api key not set")
	}

	payload := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: systemPreamble + "\n\nStudent: " + message}}},
		},
		GenerationConfig: geminiGenConfig{
			Temperature:     temperature,
			MaxOutputTokens: maxOutputTokens,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("gemini status %d: %s", resp.StatusCode, string(snippet))
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyCandidate
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

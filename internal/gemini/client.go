package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/gkoster9x/ApocalypseLogsApps/internal/journal"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client talks to the hosted Gemini API. One request per call, no retries;
// failures are surfaced to the caller who decides how to present them.
type Client struct {
	apiKey     string
	model      string
	imageModel string
	baseURL    string
	http       *http.Client
	validate   *validator.Validate
}

// Option tweaks a Client; used by tests to point at a local server.
type Option func(*Client)

func WithBaseURL(u string) Option { return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") } }

func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.http = h } }

// NewClient builds a live client. The key is required; run with Offline()
// when there is none.
func NewClient(apiKey, model, imageModel string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrOffline
	}
	c := &Client{
		apiKey:     apiKey,
		model:      model,
		imageModel: imageModel,
		baseURL:    defaultBaseURL,
		http:       &http.Client{Timeout: 60 * time.Second},
		validate:   validator.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Analyze requests the structured risk assessment. The decoded JSON is
// validated before it is handed to the domain: the provider enforces the
// schema, but the result still crosses a trust boundary.
func (c *Client) Analyze(ctx context.Context, entryText, location string) (journal.Analysis, error) {
	temp := 0.3 // keep analysis grounded
	req := generateContentRequest{
		Contents: []content{userTurn(fmt.Sprintf(analysisPromptTemplate, location, entryText))},
		GenerationConfig: &generationConfig{
			Temperature:      &temp,
			ResponseMIMEType: "application/json",
			ResponseSchema:   analysisSchema,
		},
	}
	text, err := c.generateContent(ctx, c.model, req)
	if err != nil {
		return journal.Analysis{}, err
	}
	if text == "" {
		return journal.Analysis{}, ErrNoAnalysis
	}
	var out journal.Analysis
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return journal.Analysis{}, errors.Wrap(err, "decode analysis")
	}
	if err := c.validate.Struct(out); err != nil {
		return journal.Analysis{}, errors.Wrap(err, "invalid analysis")
	}
	return out, nil
}

// GenerateImage synthesizes one 16:9 PNG and returns it as a data URI.
func (c *Client) GenerateImage(ctx context.Context, entryText string) (string, error) {
	req := predictRequest{
		Instances: []imageInstance{{Prompt: fmt.Sprintf(imagePromptTemplate, entryText)}},
		Parameters: imageParameters{
			SampleCount:    1,
			AspectRatio:    "16:9", // cinematic feel
			OutputMIMEType: "image/png",
		},
	}
	var resp predictResponse
	url := fmt.Sprintf("%s/models/%s:predict", c.baseURL, c.imageModel)
	if err := c.post(ctx, url, req, &resp); err != nil {
		return "", err
	}
	if len(resp.Predictions) == 0 || resp.Predictions[0].BytesBase64Encoded == "" {
		return "", ErrNoImage
	}
	return "data:image/png;base64," + resp.Predictions[0].BytesBase64Encoded, nil
}

// Craft asks whether the staged ingredients combine into something useful.
// The success flag passes through untouched; false is a legitimate answer.
func (c *Client) Craft(ctx context.Context, ingredients []string) (CraftResult, error) {
	req := generateContentRequest{
		Contents: []content{userTurn(fmt.Sprintf(craftPromptTemplate, strings.Join(ingredients, ", ")))},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   craftSchema,
		},
	}
	text, err := c.generateContent(ctx, c.model, req)
	if err != nil {
		return CraftResult{}, err
	}
	if text == "" {
		return CraftResult{}, errors.New("gemini: empty crafting response")
	}
	var out CraftResult
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return CraftResult{}, errors.Wrap(err, "decode crafting result")
	}
	return out, nil
}

// Chat recreates the stateless conversation from the full transcript, sends
// the new message, and degrades to the canned fallback on any failure.
func (c *Client) Chat(ctx context.Context, history []Message, newMessage string) string {
	contents := make([]content, 0, len(history)+1)
	for _, m := range history {
		contents = append(contents, content{Role: m.Role, Parts: []part{{Text: m.Text}}})
	}
	contents = append(contents, content{Role: "user", Parts: []part{{Text: newMessage}}})
	req := generateContentRequest{
		Contents:          contents,
		SystemInstruction: &content{Parts: []part{{Text: chatSystemInstruction}}},
	}
	text, err := c.generateContent(ctx, c.model, req)
	if err != nil || text == "" {
		return ChatFallback
	}
	return text
}

func (c *Client) generateContent(ctx context.Context, model string, req generateContentRequest) (string, error) {
	var resp generateContentResponse
	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, model)
	if err := c.post(ctx, url, req, &resp); err != nil {
		return "", err
	}
	return resp.text(), nil
}

func (c *Client) post(ctx context.Context, url string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "encode request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "call gemini")
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read response")
	}
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("gemini: status %d: %s", resp.StatusCode, truncate(string(payload), 200))
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return errors.Wrap(err, "decode response")
	}
	return nil
}

// userTurn wraps a single prompt string as a user turn.
func userTurn(prompt string) content {
	return content{Role: "user", Parts: []part{{Text: prompt}}}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

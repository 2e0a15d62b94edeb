package gemini

import (
	"context"

	"github.com/pkg/errors"

	"github.com/gkoster9x/ApocalypseLogsApps/internal/journal"
)

// Assistant is the interface the UI uses for every generative feature.
type Assistant interface {
	// Analyze requests a structured risk assessment of a journal draft.
	Analyze(ctx context.Context, content, location string) (journal.Analysis, error)
	// GenerateImage synthesizes one 16:9 concept-art frame for the draft and
	// returns it as a base64 PNG data URI.
	GenerateImage(ctx context.Context, content string) (string, error)
	// Craft asks the provider whether 2-3 ingredients combine into an item.
	// A response with Success=false is a valid negative outcome, not an error.
	Craft(ctx context.Context, ingredients []string) (CraftResult, error)
	// Chat rebuilds the whole conversation from the transcript on every call
	// and returns the reply, or a fixed fallback line on any failure. It
	// never returns an error to the caller.
	Chat(ctx context.Context, history []Message, newMessage string) string
}

// Message is one transcript line. Role is "user" or "model".
type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// CraftResult mirrors the crafting response schema verbatim.
type CraftResult struct {
	Success     bool   `json:"success"`
	ItemName    string `json:"itemName"`
	Description string `json:"description"`
	Utility     string `json:"utility"`
}

var (
	ErrNoAnalysis = errors.New("gemini: no analysis generated")
	ErrNoImage    = errors.New("gemini: no image generated")
	ErrOffline    = errors.New("gemini: assistant offline (no API key)")
)

// ChatFallback is appended to the transcript whenever the provider cannot be
// reached; the chat never surfaces a hard error.
const ChatFallback = "Kết nối bị gián đoạn... Nhiễu tín hiệu..."

// Offline returns an Assistant for running without an API key. Enrichment
// actions fail with ErrOffline and chat degrades to the canned fallback,
// keeping the rest of the app fully usable.
func Offline() Assistant { return offline{} }

type offline struct{}

func (offline) Analyze(ctx context.Context, content, location string) (journal.Analysis, error) {
	return journal.Analysis{}, ErrOffline
}

func (offline) GenerateImage(ctx context.Context, content string) (string, error) {
	return "", ErrOffline
}

func (offline) Craft(ctx context.Context, ingredients []string) (CraftResult, error) {
	return CraftResult{}, ErrOffline
}

func (offline) Chat(ctx context.Context, history []Message, newMessage string) string {
	return ChatFallback
}

package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func textResponse(t *testing.T, text string) []byte {
	t.Helper()
	raw, err := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"role": "model", "parts": []map[string]any{{"text": text}}}},
		},
	})
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return raw
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := NewClient("test-key", "gemini-2.5-flash", "imagen-4.0-generate-001", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

func TestAnalyzeDecodesStructuredResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req generateContentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.GenerationConfig == nil || req.GenerationConfig.ResponseMIMEType != "application/json" {
			t.Error("analysis request must constrain output to JSON")
		}
		payload := `{"riskLevel":72,"summary":"Khu vực nguy hiểm.","survivalTips":["Tránh đường lớn","Đi ban ngày","Mang theo nước"],"resourcesDetected":["nước","thuốc"]}`
		w.Write(textResponse(t, payload))
	})
	got, err := c.Analyze(context.Background(), "Nghe thấy tiếng gầm gừ gần siêu thị.", "Quận 7")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if got.RiskLevel != 72 || len(got.SurvivalTips) != 3 || got.ResourcesDetected[0] != "nước" {
		t.Fatalf("unexpected analysis: %+v", got)
	}
}

func TestAnalyzeRejectsOutOfRangeRisk(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(textResponse(t, `{"riskLevel":150,"summary":"x","survivalTips":[],"resourcesDetected":[]}`))
	})
	if _, err := c.Analyze(context.Background(), "nội dung", "nơi"); err == nil {
		t.Fatal("expected validation error for riskLevel 150")
	}
}

func TestAnalyzeFailsOnEmptyText(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"candidates":[]}`)
	})
	if _, err := c.Analyze(context.Background(), "nội dung", "nơi"); err == nil {
		t.Fatal("expected error when provider returns no text")
	}
}

func TestGenerateImageReturnsDataURI(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, ":predict") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"predictions":[{"bytesBase64Encoded":"aGVsbG8="}]}`)
	})
	uri, err := c.GenerateImage(context.Background(), "thành phố đổ nát")
	if err != nil {
		t.Fatalf("generate image: %v", err)
	}
	if uri != "data:image/png;base64,aGVsbG8=" {
		t.Fatalf("uri = %q", uri)
	}
}

func TestGenerateImageFailsWithoutBytes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"predictions":[]}`)
	})
	if _, err := c.GenerateImage(context.Background(), "x"); err == nil {
		t.Fatal("expected error when no image bytes are returned")
	}
}

func TestCraftPassesThroughNegativeResult(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(textResponse(t, `{"success":false,"itemName":"","description":"Hai nguyên liệu không tương thích.","utility":""}`))
	})
	res, err := c.Craft(context.Background(), []string{"nước", "xăng"})
	if err != nil {
		t.Fatalf("craft: %v", err)
	}
	if res.Success {
		t.Fatal("success=false must pass through, not be treated as an error")
	}
	if res.Description == "" {
		t.Fatal("provider explanation lost")
	}
}

func TestChatFallsBackOnServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	reply := c.Chat(context.Background(), nil, "xin chào")
	if reply != ChatFallback {
		t.Fatalf("reply = %q, want fallback", reply)
	}
}

func TestChatSendsFullTranscript(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req generateContentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.SystemInstruction == nil {
			t.Error("chat must carry the Watcher system instruction")
		}
		if len(req.Contents) != 3 {
			t.Errorf("contents = %d turns, want 3 (history + new message)", len(req.Contents))
		}
		w.Write(textResponse(t, "Đã ghi nhận."))
	})
	history := []Message{
		{Role: "model", Text: "Watcher AI kích hoạt."},
		{Role: "user", Text: "Tình hình thế nào?"},
	}
	reply := c.Chat(context.Background(), history, "Tôi cần nước sạch.")
	if reply != "Đã ghi nhận." {
		t.Fatalf("reply = %q", reply)
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient("", "m", "im"); err == nil {
		t.Fatal("expected error without API key")
	}
}

func TestOfflineAssistant(t *testing.T) {
	a := Offline()
	if _, err := a.Analyze(context.Background(), "x", "y"); err == nil {
		t.Fatal("offline analyze should fail")
	}
	if _, err := a.GenerateImage(context.Background(), "x"); err == nil {
		t.Fatal("offline image should fail")
	}
	if _, err := a.Craft(context.Background(), []string{"a", "b"}); err == nil {
		t.Fatal("offline craft should fail")
	}
	if got := a.Chat(context.Background(), nil, "x"); got != ChatFallback {
		t.Fatalf("offline chat = %q, want fallback", got)
	}
}

package marketing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	svc Service
	log *zap.Logger
}

func NewHandler(svc Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log.Named("http")}
}

func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Promoly AI Service is running"})
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "ai"})
}

// Generate serves ad copy with creative angles.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Prompt  string         `json:"prompt"`
		Context map[string]any `json:"context"`
	}
	if !h.decode(w, r, &payload) {
		return
	}
	if strings.TrimSpace(payload.Prompt) == "" {
		http.Error(w, "missing prompt", http.StatusBadRequest)
		return
	}

	res := h.svc.GenerateAdCopy(r.Context(), payload.Prompt, payload.Context)

	writeJSON(w, http.StatusOK, map[string]any{
		"content":     res.Content,
		"suggestions": nonNil(res.Suggestions),
	})
}

// Suggest serves optimization suggestions for a campaign.
func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Campaign    json.RawMessage `json:"campaign"`
		Performance json.RawMessage `json:"performance"`
	}
	if !h.decode(w, r, &payload) {
		return
	}

	campaign, err := decodeObject[Campaign](payload.Campaign)
	if err != nil {
		http.Error(w, "invalid campaign", http.StatusBadRequest)
		return
	}
	performance, err := decodeObject[PerformanceMetrics](payload.Performance)
	if err != nil {
		http.Error(w, "invalid performance", http.StatusBadRequest)
		return
	}

	res := h.svc.SuggestOptimizations(r.Context(), campaign, performance)

	suggestions := res.Suggestions
	if suggestions == nil {
		suggestions = []Suggestion{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}

// Query answers a question from the knowledge base.
func (h *Handler) Query(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Question string `json:"question"`
	}
	if !h.decode(w, r, &payload) {
		return
	}
	if strings.TrimSpace(payload.Question) == "" {
		http.Error(w, "missing question", http.StatusBadRequest)
		return
	}

	res := h.svc.QueryKnowledge(r.Context(), payload.Question)

	writeJSON(w, http.StatusOK, map[string]any{
		"answer":  res.Text,
		"sources": nonNil(res.Sources),
	})
}

// Chat serves a conversational reply plus follow-up suggestions.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Messages []ChatMessage `json:"messages"`
	}
	if !h.decode(w, r, &payload) {
		return
	}

	res := h.svc.Chat(r.Context(), payload.Messages)

	writeJSON(w, http.StatusOK, map[string]any{
		"response":    res.Response,
		"suggestions": nonNil(res.Suggestions),
	})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.log.Debug("request body rejected",
			zap.String("path", r.URL.Path),
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.Error(err),
		)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return false
		}
		http.Error(w, "invalid json", http.StatusBadRequest)
		return false
	}
	return true
}

// decodeObject treats an absent, null or empty JSON object as no data.
func decodeObject[T any](raw json.RawMessage) (*T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, nil
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type requestIDKey struct{}

// RequestID tags each request with a UUID, echoed in X-Request-Id.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

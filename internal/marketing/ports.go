package marketing

import (
	"context"
	"encoding/json"
)

// Service runs the four generation pipelines. No method returns an error:
// every failure is turned into a fallback and reported through Outcome.
type Service interface {
	GenerateAdCopy(ctx context.Context, prompt string, adContext map[string]any) AdCopy
	SuggestOptimizations(ctx context.Context, campaign *Campaign, performance *PerformanceMetrics) Optimization
	QueryKnowledge(ctx context.Context, question string) Answer
	Chat(ctx context.Context, history []ChatMessage) ChatReply
}

// Outcome tells an in-process caller whether the result came from the
// model or from a fallback. It is never serialised.
type Outcome struct {
	Degraded bool
	Cause    error
}

type AdCopy struct {
	Content     string
	Suggestions []string
	Outcome
}

type Optimization struct {
	Suggestions []Suggestion
	Outcome
}

type Answer struct {
	Text    string
	Sources []string
	Outcome
}

type ChatReply struct {
	Response    string
	Suggestions []string
	Outcome
}

type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

func (r ChatRole) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

type BudgetType string

const (
	BudgetDaily    BudgetType = "DAILY"
	BudgetLifetime BudgetType = "LIFETIME"
)

type Campaign struct {
	Name       string     `json:"name"`
	Objective  string     `json:"objective"`
	Budget     float64    `json:"budget"`
	BudgetType BudgetType `json:"budgetType"`
	Status     string     `json:"status"`
}

// PerformanceMetrics fields left out of a request stay zero.
type PerformanceMetrics struct {
	Reach       int64   `json:"reach"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Leads       int64   `json:"leads"`
	Spend       float64 `json:"spend"`
	CPM         float64 `json:"cpm"`
	CPC         float64 `json:"cpc"`
	CPL         float64 `json:"cpl"`
}

// UnmarshalJSON accepts any JSON number for the count fields, so clients
// sending 50.0 are not rejected. Fractions are truncated.
func (p *PerformanceMetrics) UnmarshalJSON(data []byte) error {
	var raw struct {
		Reach       float64 `json:"reach"`
		Impressions float64 `json:"impressions"`
		Clicks      float64 `json:"clicks"`
		Leads       float64 `json:"leads"`
		Spend       float64 `json:"spend"`
		CPM         float64 `json:"cpm"`
		CPC         float64 `json:"cpc"`
		CPL         float64 `json:"cpl"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = PerformanceMetrics{
		Reach:       int64(raw.Reach),
		Impressions: int64(raw.Impressions),
		Clicks:      int64(raw.Clicks),
		Leads:       int64(raw.Leads),
		Spend:       raw.Spend,
		CPM:         raw.CPM,
		CPC:         raw.CPC,
		CPL:         raw.CPL,
	}
	return nil
}

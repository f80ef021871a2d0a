package marketing

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const maxSuggestions = 5

type SuggestionType string

const (
	BudgetOptimization  SuggestionType = "BUDGET_OPTIMIZATION"
	AudienceTargeting   SuggestionType = "AUDIENCE_TARGETING"
	CreativeImprovement SuggestionType = "CREATIVE_IMPROVEMENT"
	BidAdjustment       SuggestionType = "BID_ADJUSTMENT"
	CampaignStructure   SuggestionType = "CAMPAIGN_STRUCTURE"
)

func (t SuggestionType) Valid() bool {
	switch t {
	case BudgetOptimization, AudienceTargeting, CreativeImprovement, BidAdjustment, CampaignStructure:
		return true
	}
	return false
}

type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// Suggestion is one optimization recommendation. Action is passed through
// untouched; its shape belongs to the consuming application.
type Suggestion struct {
	Type           SuggestionType  `json:"type"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Action         json.RawMessage `json:"action"`
	Priority       Priority        `json:"priority"`
	ExpectedImpact float64         `json:"expected_impact"`
}

var requiredFields = []string{"type", "title", "description", "action", "priority", "expected_impact"}

// ParseSuggestions decodes a model reply that should hold a JSON array of
// suggestions. Elements failing validation are returned in rejected and
// left out of the result, which is capped at five. A reply that is not a
// JSON array yields a *ParseError.
func ParseSuggestions(raw string) (valid []Suggestion, rejected []error, err error) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &items); err != nil {
		return nil, nil, &ParseError{Err: err}
	}
	if items == nil {
		return nil, nil, &ParseError{Err: errors.New("reply is not a JSON array")}
	}

	valid = make([]Suggestion, 0, len(items))
	for i, item := range items {
		s, err := decodeSuggestion(i, item)
		if err != nil {
			rejected = append(rejected, err)
			continue
		}
		valid = append(valid, s)
	}

	if len(valid) > maxSuggestions {
		valid = valid[:maxSuggestions]
	}
	return valid, rejected, nil
}

func decodeSuggestion(index int, raw json.RawMessage) (Suggestion, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return Suggestion{}, &ValidationError{Index: index, Reason: "not a JSON object"}
	}
	for _, f := range requiredFields {
		v, ok := fields[f]
		if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return Suggestion{}, &ValidationError{Index: index, Field: f, Reason: "missing"}
		}
	}

	var s Suggestion
	if err := json.Unmarshal(raw, &s); err != nil {
		return Suggestion{}, &ValidationError{Index: index, Reason: err.Error()}
	}
	if !s.Type.Valid() {
		return Suggestion{}, &ValidationError{Index: index, Field: "type", Reason: fmt.Sprintf("unknown value %q", s.Type)}
	}
	if !s.Priority.Valid() {
		return Suggestion{}, &ValidationError{Index: index, Field: "priority", Reason: fmt.Sprintf("unknown value %q", s.Priority)}
	}
	return s, nil
}

// stripCodeFence removes a markdown ``` fence the model sometimes wraps
// JSON in.
func stripCodeFence(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	nl := strings.IndexByte(t, '\n')
	if nl < 0 {
		return ""
	}
	t = strings.TrimSpace(t[nl+1:])
	return strings.TrimSpace(strings.TrimSuffix(t, "```"))
}

// RuleBasedSuggestions is the deterministic substitute used when the
// model path fails. A nil performance behaves as all zeros.
func RuleBasedSuggestions(performance *PerformanceMetrics) []Suggestion {
	var p PerformanceMetrics
	if performance != nil {
		p = *performance
	}

	out := make([]Suggestion, 0, 2)
	if p.CPL > 50 {
		out = append(out, Suggestion{
			Type:           BudgetOptimization,
			Title:          "Optimize for Lower Cost Per Lead",
			Description:    "Your cost per lead is high. Consider adjusting targeting or creative to improve efficiency.",
			Action:         json.RawMessage(`{"action_type":"optimize_targeting","reasoning":"High CPL indicates inefficient targeting"}`),
			Priority:       PriorityHigh,
			ExpectedImpact: 20,
		})
	}
	if p.Clicks < 100 {
		out = append(out, Suggestion{
			Type:           CreativeImprovement,
			Title:          "Improve Ad Creative",
			Description:    "Low click-through rate suggests creative improvements are needed.",
			Action:         json.RawMessage(`{"action_type":"test_creative","reasoning":"Low CTR indicates poor creative performance"}`),
			Priority:       PriorityMedium,
			ExpectedImpact: 15,
		})
	}
	return out
}

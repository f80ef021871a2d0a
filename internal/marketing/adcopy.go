package marketing

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Vovarama1992/promoly-ai/internal/ai"
)

const maxAdCopyAngles = 5

// GenerateAdCopy writes ad copy for prompt and, when that succeeds, asks
// for alternative creative angles. The angles call is best effort.
func (s *service) GenerateAdCopy(ctx context.Context, prompt string, adContext map[string]any) AdCopy {
	content, err := s.ai.Invoke(ctx, []ai.Message{
		ai.System(adCopySystemPrompt),
		ai.User(adCopyRequest(prompt, adContext)),
	}, creativeTemperature)
	if err != nil {
		return AdCopy{
			Content:     AdCopyFallback,
			Suggestions: []string{},
			Outcome:     s.degrade(ctx, "ad_copy", err),
		}
	}

	out := AdCopy{Content: content, Suggestions: []string{}}

	raw, err := s.ai.Invoke(ctx, []ai.Message{
		ai.User(fmt.Sprintf(adCopyAnglesPrompt, prompt)),
	}, creativeTemperature)
	if err != nil {
		out.Outcome = s.degrade(ctx, "ad_copy_angles", err)
		return out
	}

	out.Suggestions = parseLines(raw, maxAdCopyAngles)
	return out
}

func adCopyRequest(prompt string, adContext map[string]any) string {
	req := "\n\nUser request: " + prompt
	if len(adContext) == 0 {
		return req
	}

	b, err := json.Marshal(adContext)
	if err != nil {
		return fmt.Sprintf("\nContext: %v", adContext) + req
	}
	return "\nContext: " + string(b) + req
}

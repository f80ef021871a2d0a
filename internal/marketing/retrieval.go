package marketing

import (
	"context"
	"fmt"
	"strings"

	"github.com/Vovarama1992/promoly-ai/internal/ai"
)

const maxGroundingDocs = 3

// QueryKnowledge answers question grounded on the matching corpus
// documents. Without a match the model answers from general knowledge and
// the single source GeneralKnowledgeSource is reported.
func (s *service) QueryKnowledge(ctx context.Context, question string) Answer {
	docs := s.kb.Match(question, maxGroundingDocs)

	if len(docs) == 0 {
		text, err := s.ai.Invoke(ctx, []ai.Message{
			ai.User(fmt.Sprintf(generalAnswerPrompt, question)),
		}, analyticTemperature)
		if err != nil {
			return Answer{Text: KnowledgeFallback, Sources: []string{}, Outcome: s.degrade(ctx, "knowledge", err)}
		}
		return Answer{Text: text, Sources: []string{GeneralKnowledgeSource}}
	}

	contents := make([]string, 0, len(docs))
	sources := make([]string, 0, len(docs))
	for _, d := range docs {
		contents = append(contents, d.Content)
		sources = append(sources, d.Source)
	}

	text, err := s.ai.Invoke(ctx, []ai.Message{
		ai.System(knowledgeSystemPrompt),
		ai.User(fmt.Sprintf(knowledgeQueryPrompt, strings.Join(contents, "\n\n"), question)),
	}, analyticTemperature)
	if err != nil {
		return Answer{Text: KnowledgeFallback, Sources: []string{}, Outcome: s.degrade(ctx, "knowledge", err)}
	}

	return Answer{Text: text, Sources: sources}
}

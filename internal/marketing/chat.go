package marketing

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Vovarama1992/promoly-ai/internal/ai"
)

const maxChatFollowUps = 3

// Chat replies to the conversation and, independently, proposes follow-up
// questions for the latest message. Both model calls run concurrently; a
// failed follow-up call never affects the reply.
func (s *service) Chat(ctx context.Context, history []ChatMessage) ChatReply {
	transcript := s.chatTranscript(ctx, history)

	last := ""
	if len(history) > 0 {
		last = history[len(history)-1].Content
	}

	var (
		reply, followUps       string
		replyErr, followUpsErr error
		g                      errgroup.Group
	)
	g.Go(func() error {
		reply, replyErr = s.ai.Invoke(ctx, transcript, creativeTemperature)
		return replyErr
	})
	g.Go(func() error {
		followUps, followUpsErr = s.ai.Invoke(ctx, []ai.Message{
			ai.User(fmt.Sprintf(chatFollowUpPrompt, last)),
		}, creativeTemperature)
		return followUpsErr
	})
	_ = g.Wait()

	if replyErr != nil {
		return ChatReply{Response: ChatFallback, Suggestions: []string{}, Outcome: s.degrade(ctx, "chat", replyErr)}
	}

	out := ChatReply{Response: reply, Suggestions: []string{}}
	if followUpsErr != nil {
		out.Outcome = s.degrade(ctx, "chat_follow_ups", followUpsErr)
		return out
	}

	out.Suggestions = parseLines(followUps, maxChatFollowUps)
	return out
}

// chatTranscript prepends the assistant persona and replays the history.
// Earlier assistant replies go back as system turns, and messages with any
// other role are skipped.
// TODO: replay assistant replies as RoleAssistant once the web client is
// confirmed to send strictly alternating transcripts.
func (s *service) chatTranscript(ctx context.Context, history []ChatMessage) []ai.Message {
	out := make([]ai.Message, 0, len(history)+1)
	out = append(out, ai.System(chatSystemPrompt))

	for i, m := range history {
		switch m.Role {
		case RoleUser:
			out = append(out, ai.User(m.Content))
		case RoleAssistant:
			out = append(out, ai.System(m.Content))
		default:
			s.logger(ctx).Debug("chat message ignored", zap.Int("index", i), zap.String("role", string(m.Role)))
		}
	}
	return out
}

package ai

import "context"

// Invoker sends an ordered, role-tagged conversation to the model and
// returns its text. Implementations keep no state between calls and
// report every failure as *UpstreamError.
type Invoker interface {
	Invoke(ctx context.Context, messages []Message, temperature float32) (string, error)
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is the provider-neutral dialogue turn.
type Message struct {
	Role Role
	Text string
}

func System(text string) Message { return Message{Role: RoleSystem, Text: text} }

func User(text string) Message { return Message{Role: RoleUser, Text: text} }

package ai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiContents(t *testing.T) {
	system, contents := geminiContents([]Message{
		System("you are Promoly"),
		User("hello"),
		{Role: RoleAssistant, Text: "hi there"},
		System("earlier reply"),
		User("next"),
	})

	require.Equal(t, "you are Promoly", system)
	require.Len(t, contents, 4)

	roles := make([]string, 0, len(contents))
	for _, c := range contents {
		roles = append(roles, string(c.Role))
		require.Len(t, c.Parts, 1)
	}
	require.Equal(t, []string{string(genai.RoleUser), string(genai.RoleModel), string(genai.RoleUser), string(genai.RoleUser)}, roles)
	require.Equal(t, "earlier reply", contents[2].Parts[0].Text)
}

func TestGeminiContentsNoSystem(t *testing.T) {
	system, contents := geminiContents([]Message{User("q")})
	require.Empty(t, system)
	require.Len(t, contents, 1)
}

func TestClassifyGemini(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{name: "auth", err: genai.APIError{Code: 403, Message: "denied"}, want: KindAuth},
		{name: "quota", err: genai.APIError{Code: 429, Message: "quota"}, want: KindRateLimit},
		{name: "server", err: genai.APIError{Code: 500, Message: "boom"}, want: KindProvider},
		{name: "transport", err: errors.New("dial tcp: refused"), want: KindNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, classifyGemini(tt.err))
		})
	}
}

package marketing

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGenerateAdCopy(t *testing.T) {
	f := newFixture(t)
	f.inv.On("Invoke", mock.Anything, primaryCall, float32(0.7)).Return("Glow Up Your Summer ☀️", nil).Once()
	f.inv.On("Invoke", mock.Anything, bareCall, float32(0.7)).
		Return("# Angles\n\n1. Scarcity: limited stock\n2. Social proof\n   \n3. Before/after\n", nil).Once()

	res := f.svc.GenerateAdCopy(context.Background(), "sunscreen for runners", map[string]any{"audience": "runners"})

	require.False(t, res.Degraded)
	require.Equal(t, "Glow Up Your Summer ☀️", res.Content)
	require.Equal(t, []string{"1. Scarcity: limited stock", "2. Social proof", "3. Before/after"}, res.Suggestions)

	primary := f.messages(0)
	require.Len(t, primary, 2)
	require.Equal(t, adCopySystemPrompt, primary[0].Text)
	require.Equal(t, "\nContext: {\"audience\":\"runners\"}\n\nUser request: sunscreen for runners", primary[1].Text)

	angles := f.messages(1)
	require.Contains(t, angles[0].Text, `Based on the request: "sunscreen for runners"`)
}

func TestGenerateAdCopyWithoutContext(t *testing.T) {
	f := newFixture(t)
	f.inv.On("Invoke", mock.Anything, primaryCall, float32(0.7)).Return("copy", nil).Once()
	f.inv.On("Invoke", mock.Anything, bareCall, float32(0.7)).Return("a", nil).Once()

	f.svc.GenerateAdCopy(context.Background(), "shoes", map[string]any{})

	require.Equal(t, "\n\nUser request: shoes", f.messages(0)[1].Text)
}

func TestGenerateAdCopyCapsAngles(t *testing.T) {
	replies := []string{
		"",
		"only one",
		strings.Repeat("idea\n", 12),
		"#skip\n  #also skip\none\ntwo",
	}

	for _, reply := range replies {
		f := newFixture(t)
		f.inv.On("Invoke", mock.Anything, primaryCall, mock.Anything).Return("copy", nil).Once()
		f.inv.On("Invoke", mock.Anything, bareCall, mock.Anything).Return(reply, nil).Once()

		res := f.svc.GenerateAdCopy(context.Background(), "p", nil)
		require.NotNil(t, res.Suggestions)
		require.LessOrEqual(t, len(res.Suggestions), 5)
		for _, s := range res.Suggestions {
			require.NotEmpty(t, s)
			require.False(t, strings.HasPrefix(s, "#"))
		}
	}
}

func TestGenerateAdCopyPrimaryFailure(t *testing.T) {
	f := newFixture(t)
	f.inv.On("Invoke", mock.Anything, primaryCall, mock.Anything).Return("", errUpstream).Once()

	res := f.svc.GenerateAdCopy(context.Background(), "sunscreen", nil)

	require.Equal(t, "Unable to generate ad copy at this time.", res.Content)
	require.Empty(t, res.Suggestions)
	require.NotNil(t, res.Suggestions)
	require.True(t, res.Degraded)
	require.ErrorIs(t, res.Cause, errUpstream)
	f.inv.AssertNumberOfCalls(t, "Invoke", 1)
	require.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Fallbacks.WithLabelValues("ad_copy")))
}

func TestGenerateAdCopyAnglesFailure(t *testing.T) {
	f := newFixture(t)
	f.inv.On("Invoke", mock.Anything, primaryCall, mock.Anything).Return("Run further.", nil).Once()
	f.inv.On("Invoke", mock.Anything, bareCall, mock.Anything).Return("", errUpstream).Once()

	res := f.svc.GenerateAdCopy(context.Background(), "sunscreen", nil)

	require.Equal(t, "Run further.", res.Content)
	require.Empty(t, res.Suggestions)
	require.True(t, res.Degraded)
}

func TestParseLines(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  []string
	}{
		{name: "empty", text: "", limit: 5, want: []string{}},
		{name: "trims", text: "  a  \n\tb\n", limit: 5, want: []string{"a", "b"}},
		{name: "skips headings", text: "## Ideas\na\n# more\nb", limit: 5, want: []string{"a", "b"}},
		{name: "limit", text: "a\nb\nc\nd", limit: 3, want: []string{"a", "b", "c"}},
		{name: "crlf", text: "a\r\nb\r\n", limit: 5, want: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, parseLines(tt.text, tt.limit))
		})
	}
}

package marketing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatPerformance(t *testing.T) {
	require.Equal(t, "No performance data available", formatPerformance(nil))

	got := formatPerformance(&PerformanceMetrics{
		Reach:       1234567,
		Impressions: 2500000,
		Clicks:      980,
		Leads:       42,
		Spend:       1520.5,
		CPM:         6.08,
		CPC:         1.551,
		CPL:         36.2,
	})
	require.Equal(t, "- Reach: 1,234,567\n"+
		"- Impressions: 2,500,000\n"+
		"- Clicks: 980\n"+
		"- Leads: 42\n"+
		"- Spend: $1520.50\n"+
		"- CPM: $6.08\n"+
		"- CPC: $1.55\n"+
		"- CPL: $36.20", got)

	zero := formatPerformance(&PerformanceMetrics{})
	require.Contains(t, zero, "- Reach: 0\n")
	require.Contains(t, zero, "- CPL: $0.00")
}

func TestFormatCampaign(t *testing.T) {
	require.Equal(t, "No campaign data available", formatCampaign(nil))

	require.Equal(t, "- Name: Spring Sale\n"+
		"- Objective: LEADS\n"+
		"- Budget: $75.00 (LIFETIME)\n"+
		"- Status: PAUSED",
		formatCampaign(&Campaign{Name: "Spring Sale", Objective: "LEADS", Budget: 75, BudgetType: BudgetLifetime, Status: "PAUSED"}))

	require.Equal(t, "- Name: Unknown\n"+
		"- Objective: Unknown\n"+
		"- Budget: $0.00 (DAILY)\n"+
		"- Status: Unknown",
		formatCampaign(&Campaign{}))
}

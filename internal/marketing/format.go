package marketing

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

func formatPerformance(p *PerformanceMetrics) string {
	if p == nil {
		return "No performance data available"
	}

	var b strings.Builder
	b.WriteString("- Reach: " + humanize.Comma(p.Reach) + "\n")
	b.WriteString("- Impressions: " + humanize.Comma(p.Impressions) + "\n")
	b.WriteString("- Clicks: " + humanize.Comma(p.Clicks) + "\n")
	b.WriteString("- Leads: " + humanize.Comma(p.Leads) + "\n")
	b.WriteString("- Spend: " + money(p.Spend) + "\n")
	b.WriteString("- CPM: " + money(p.CPM) + "\n")
	b.WriteString("- CPC: " + money(p.CPC) + "\n")
	b.WriteString("- CPL: " + money(p.CPL))
	return b.String()
}

func formatCampaign(c *Campaign) string {
	if c == nil {
		return "No campaign data available"
	}

	budgetType := c.BudgetType
	if budgetType == "" {
		budgetType = BudgetDaily
	}

	var b strings.Builder
	b.WriteString("- Name: " + orUnknown(c.Name) + "\n")
	b.WriteString("- Objective: " + orUnknown(c.Objective) + "\n")
	b.WriteString("- Budget: " + money(c.Budget) + " (" + string(budgetType) + ")\n")
	b.WriteString("- Status: " + orUnknown(c.Status))
	return b.String()
}

func money(v float64) string {
	return "$" + decimal.NewFromFloat(v).StringFixed(2)
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Unknown"
	}
	return s
}

package service

import (
	"fmt"
	"strings"
)

func welcomeEmailTemplate(name, appURL, appName string) (subject, body string) {
	subject = fmt.Sprintf("Welcome to %s", appName)
	body = fmt.Sprintf(`Hi %s,

Welcome to %s! Your account is ready.

Start by setting your monthly goals and planning your first week:
%s

The %s team
`, name, appName, appURL, appName)
	return subject, body
}

func weeklySummaryEmailTemplate(name, weekStart string, summary *CompletionSummary, appURL, appName string) (subject, body string) {
	subject = fmt.Sprintf("Your week in review: %s", weekStart)

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\nHere is how your week of %s went:\n\n", name, weekStart)
	fmt.Fprintf(&b, "  Plans:      %d\n", summary.TotalPlans)
	fmt.Fprintf(&b, "  Completed:  %d (%d%%)\n", summary.CompletedPlans, summary.CompletionRate)
	fmt.Fprintf(&b, "  Best streak: %d day(s)\n", summary.LongestStreak)

	if len(summary.ByCategory) > 0 {
		b.WriteString("\nBy category:\n")
		for _, cc := range summary.ByCategory {
			fmt.Fprintf(&b, "  %-12s %d/%d (%d%%)\n", cc.Label, cc.Completed, cc.Total, cc.Rate)
		}
	}

	fmt.Fprintf(&b, "\nPlan your next week:\n%s\n\nThe %s team\n", appURL, appName)

	return subject, b.String()
}

package ui

import (
	"fmt"
	"strings"

	"github.com/stackdock/stackdock/internal/orchestration"
)

// RenderSummary formats the deployment report for the terminal.
func RenderSummary(report *orchestration.Report) string {
	var b strings.Builder

	if report.DryRun {
		b.WriteString(titleStyle.Render("Deployment plan (dry run)"))
	} else {
		b.WriteString(titleStyle.Render("Deployment summary"))
	}
	b.WriteString("\n")

	if report.Bootstrapped {
		b.WriteString(createdStyle.Render(checkMark) + " initial setup performed (admin user and endpoint created)\n")
	}
	if report.SetupSkipped {
		b.WriteString(warningStyle.Render(crossMark) + " initial setup requested but instance already initialized, skipped\n")
	}

	b.WriteString(renderStacks(report))
	b.WriteString(renderTotals(report))

	return b.String()
}

func renderStacks(report *orchestration.Report) string {
	var b strings.Builder

	if len(report.Outcomes) > 0 || len(report.Planned) > 0 || len(report.Skipped) > 0 {
		b.WriteString(sectionStyle.Render("Stacks"))
		b.WriteString("\n")
	}

	for _, o := range report.Outcomes {
		if o.Created {
			fmt.Fprintf(&b, "  %s %s created\n", createdStyle.Render(checkMark), o.Stack.Name)
		} else {
			fmt.Fprintf(&b, "  %s %s failed to create\n", failedStyle.Render(crossMark), o.Stack.Name)
		}
	}
	for _, s := range report.Planned {
		fmt.Fprintf(&b, "  %s %s would be created\n", dimStyle.Render(planMark), s.Name)
	}
	for _, s := range report.Skipped {
		fmt.Fprintf(&b, "  %s %s already exists, skipped\n", dimStyle.Render(skipMark), s.Name)
	}

	return b.String()
}

func renderTotals(report *orchestration.Report) string {
	if report.DryRun {
		return dimStyle.Render(fmt.Sprintf("\n%d to create, %d skipped", len(report.Planned), len(report.Skipped)))
	}

	line := fmt.Sprintf("\n%d created, %d failed, %d skipped", report.Created(), report.Failed(), len(report.Skipped))
	if report.Changed() {
		return createdStyle.Render(line + " (changed)")
	}
	return dimStyle.Render(line + " (no changes)")
}

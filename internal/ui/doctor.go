package ui

import (
	"fmt"
	"strings"
)

// DoctorReport carries the pre-flight probe results for rendering.
type DoctorReport struct {
	RootURL          string `json:"rootUrl"`
	Endpoint         string `json:"endpoint"`
	Stacks           int    `json:"stacks"`
	Reachable        bool   `json:"reachable"`
	AdminInitialized bool   `json:"adminInitialized"`
	Error            string `json:"error,omitempty"`
}

// RenderDoctor formats the pre-flight diagnostics for the terminal.
func RenderDoctor(report DoctorReport) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Pre-flight check"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("instance:"), report.RootURL)
	fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("endpoint:"), report.Endpoint)
	fmt.Fprintf(&b, "  %s %d declared\n", dimStyle.Render("stacks:  "), report.Stacks)

	b.WriteString(sectionStyle.Render("Connectivity"))
	b.WriteString("\n")

	if !report.Reachable {
		fmt.Fprintf(&b, "  %s instance unreachable", failedStyle.Render(crossMark))
		if report.Error != "" {
			fmt.Fprintf(&b, ": %s", report.Error)
		}
		b.WriteString("\n")
		return b.String()
	}

	fmt.Fprintf(&b, "  %s instance reachable\n", createdStyle.Render(checkMark))
	if report.Error != "" {
		fmt.Fprintf(&b, "  %s admin check failed: %s\n", failedStyle.Render(crossMark), report.Error)
		return b.String()
	}
	if report.AdminInitialized {
		fmt.Fprintf(&b, "  %s admin initialized (initial_setup not needed)\n", createdStyle.Render(checkMark))
	} else {
		fmt.Fprintf(&b, "  %s fresh instance, admin not initialized (set initial_setup: true)\n", warningStyle.Render(crossMark))
	}

	return b.String()
}

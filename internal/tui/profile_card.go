package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-career-path/models"
)

const profileCardSkills = 5

// renderProfileCard renders the compact profile summary shown above the
// content screens.
func renderProfileCard(p models.Profile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  │  Goal: %s\n", titleStyle.Render(orDash(p.Name)), orDash(p.CareerGoal))
	if p.Summary != "" {
		b.WriteString(fitText(p.Summary, 100))
		b.WriteString("\n")
	}

	skills := p.TopSkills(profileCardSkills)
	if len(skills) > 0 {
		b.WriteString("Skills: ")
		b.WriteString(strings.Join(skills, ", "))
		if more := len(p.Skills) - len(skills); more > 0 {
			fmt.Fprintf(&b, " (+%d more)", more)
		}
		b.WriteString("\n")
	}

	return overlayBoxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

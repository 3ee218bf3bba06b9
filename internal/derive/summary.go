package derive

import (
	"fmt"
	"strings"
)

// Summary renders a deterministic narrative blurb from the derived scores.
// It intentionally takes no external dependency; classifier-backed insight
// text lives a layer up and falls back to this.
func Summary(p Profile) string {
	skills := p.Skills
	if len(skills) > 3 {
		skills = skills[:3]
	}
	skillText := strings.Join(skills, ", ")
	if skillText == "" {
		skillText = "their field"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s is a %s with strong skills in %s. ", p.Name, p.Role, skillText)

	switch {
	case p.ImpactScore >= 80:
		fmt.Fprintf(&b, "%s demonstrates exceptional impact (%d%%) through high-complexity work and significant code contributions. ", p.Name, p.ImpactScore)
	case p.ImpactScore >= 60:
		fmt.Fprintf(&b, "%s shows solid performance with an impact score of %d%%. ", p.Name, p.ImpactScore)
	default:
		fmt.Fprintf(&b, "%s has an impact score of %d%% and could benefit from more challenging assignments. ", p.Name, p.ImpactScore)
	}

	switch {
	case p.BurnoutScore >= 70:
		fmt.Fprintf(&b, "High burnout risk (%d%%) detected - %s frequently works late hours and may need support to maintain sustainable productivity.", p.BurnoutScore, p.Name)
	case p.BurnoutScore >= 40:
		fmt.Fprintf(&b, "Moderate burnout risk (%d%%) - %s should monitor work-life balance.", p.BurnoutScore, p.Name)
	default:
		fmt.Fprintf(&b, "Low burnout risk (%d%%) indicates good work-life balance.", p.BurnoutScore)
	}
	return b.String()
}

package derive

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const emailDomain = "luminus.ai"

var locations = []string{"San Francisco", "New York", "Austin", "Seattle", "Boston"}

// EmailFor synthesizes a work email from a display name: first.lastInitial
// for multi-word names, just the first word otherwise.
func EmailFor(name string) string {
	parts := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	if len(parts) == 0 {
		return "unknown@" + emailDomain
	}
	if len(parts) == 1 {
		return parts[0] + "@" + emailDomain
	}
	last := parts[len(parts)-1]
	return fmt.Sprintf("%s.%s@%s", parts[0], last[:1], emailDomain)
}

// DepartmentAndTeam maps role text onto a department/team pair by keyword.
// Specific keywords are checked before the generic engineer/developer bucket
// so "Frontend Engineer" lands on the Frontend team.
func DepartmentAndTeam(role string) (string, string) {
	r := strings.ToLower(role)
	switch {
	case strings.Contains(r, "devops"):
		return "Operations", "Infrastructure"
	case strings.Contains(r, "frontend"):
		return "Engineering", "Frontend"
	case strings.Contains(r, "qa"), strings.Contains(r, "quality"):
		return "Engineering", "Quality Assurance"
	case strings.Contains(r, "designer"), strings.Contains(r, "ux"):
		return "Design", "Product Design"
	case strings.Contains(r, "backend"):
		return "Engineering", "Platform"
	case strings.Contains(r, "lead"):
		return "Engineering", "Platform"
	case strings.Contains(r, "product"), strings.Contains(r, "manager"):
		return "Product", "Core Product"
	case strings.Contains(r, "engineer"), strings.Contains(r, "developer"):
		return "Engineering", "Platform"
	default:
		return "Engineering", "General"
	}
}

// LocationFor assigns an office round-robin by row position.
func LocationFor(index int) string {
	if index < 0 {
		index = 0
	}
	return locations[index%len(locations)]
}

// JoinDate backdates today by the tenure in months, formatted YYYY-MM-DD.
func JoinDate(now time.Time, tenureMonths int) string {
	if tenureMonths < 0 {
		tenureMonths = 0
	}
	return now.AddDate(0, -tenureMonths, 0).Format("2006-01-02")
}

// FormatTenure renders months as the short human form the dashboard shows.
func FormatTenure(months int) string {
	if months < 12 {
		return fmt.Sprintf("%d mos", months)
	}
	return fmt.Sprintf("%d yrs", months/12)
}

// ParseLevel reads the numeric part of an "L5" style level. Unparsable
// levels read as mid-level 3.
func ParseLevel(level string) int {
	s := strings.TrimSpace(strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(level)), "L"))
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 3
	}
	return n
}

// ManagerSeq picks a plausible manager position for the employee at the given
// 1-based sequence. This synthesizes a demo org chart, it does not import a
// real one: seniors (level 6+) have no manager, juniors report to a nearby
// earlier row, and mid-levels report to the first row.
func ManagerSeq(seq, levelNum, total int, rng *rand.Rand) (int, bool) {
	switch {
	case levelNum >= 6:
		return 0, false
	case levelNum <= 3 && seq > 1:
		m := seq - 1 - rng.Intn(3)
		if m < 1 {
			m = 1
		}
		return m, true
	case levelNum >= 4 && total > 3 && seq != 1:
		return 1, true
	default:
		return 0, false
	}
}

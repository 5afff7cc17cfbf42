package pricing

import (
	"sort"
	"strings"
)

// Reserved plan ids belonging to the standalone ZeroDB product line. They
// must never appear in the site catalog regardless of source.
var reservedPlanIDs = map[string]struct{}{
	"zerodb_free":       {},
	"zerodb_enterprise": {},
}

func isReservedPlanID(id string) bool {
	_, ok := reservedPlanIDs[strings.ToLower(strings.TrimSpace(id))]
	return ok
}

// NormalizePlans filters reserved plan ids out of raw plan records and
// resolves missing display fields (button text, level, sort order) to
// concrete defaults. The input is not modified; the result is ordered by
// SortOrder ascending, ties keeping input order.
func NormalizePlans(raw []Plan) []Plan {
	out := make([]Plan, 0, len(raw))
	for i, p := range raw {
		if isReservedPlanID(p.ID) {
			continue
		}
		if p.ButtonText == "" {
			p.ButtonText = buttonTextForPlan(p.Name)
		}
		if p.Level == "" {
			p.Level = levelForPlan(p.Name)
		}
		if p.SortOrder == nil {
			pos := i
			p.SortOrder = &pos
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return *out[i].SortOrder < *out[j].SortOrder
	})
	return out
}

// buttonTextForPlan derives the call-to-action label from a plan name.
// Exact match on the lower-cased name.
func buttonTextForPlan(planName string) string {
	switch strings.ToLower(planName) {
	case "start", "free":
		return "Get Started"
	case "pro":
		return "Upgrade to Pro"
	case "teams":
		return "Start Free Trial"
	case "enterprise":
		return "Contact Sales"
	default:
		return "Choose Plan"
	}
}

// levelForPlan derives the tier level from a plan name by lower-cased
// substring match. The checks run in a fixed priority order: "team" is
// deliberately checked before "pro", so a plan named "Pro Teams" resolves
// to the teams level. Product copy depends on this order.
func levelForPlan(planName string) Level {
	name := strings.ToLower(planName)

	switch {
	case strings.Contains(name, "zerodb") && strings.Contains(name, "free"):
		return LevelZeroDBFree
	case strings.Contains(name, "zerodb") && strings.Contains(name, "pro"):
		return LevelZeroDBPro
	case strings.Contains(name, "zerodb") && strings.Contains(name, "scale"):
		return LevelZeroDBScl
	case strings.Contains(name, "cody"):
		return LevelCody
	case strings.Contains(name, "swarm"):
		return LevelSwarm
	case strings.Contains(name, "hobbyist"):
		return LevelHobbyist
	case strings.Contains(name, "individual"):
		return LevelIndividual
	case strings.Contains(name, "team"):
		return LevelTeams
	case strings.Contains(name, "enterprise"):
		return LevelEnterprise
	case strings.Contains(name, "start"), strings.Contains(name, "free"):
		return LevelStart
	case strings.Contains(name, "pro"):
		return LevelPro
	case strings.Contains(name, "scale"):
		return LevelScale
	default:
		return LevelStart
	}
}

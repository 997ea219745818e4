package extraction

import "strings"

// seniorityLevel pairs a level name with the keywords that indicate it.
type seniorityLevel struct {
	name     string
	keywords []string
}

// seniorityLevels is scanned in order, first match wins. Order matters
// because keywords for multiple levels can co-occur: "senior manager" must
// resolve to one level deterministically.
var seniorityLevels = []seniorityLevel{
	{"senior", []string{"senior", "sr.", "sr ", "experienced", "expert"}},
	{"lead", []string{"lead", "principal", "staff"}},
	{"director", []string{"director", "head of", "vp", "vice president"}},
	{"manager", []string{"manager", "management"}},
	{"junior", []string{"junior", "jr.", "jr ", "entry", "associate"}},
}

// detectSeniority returns the first seniority level whose keywords appear in
// the lower-cased job text, or empty when none do.
func detectSeniority(textLower string) string {
	for _, level := range seniorityLevels {
		for _, keyword := range level.keywords {
			if strings.Contains(textLower, keyword) {
				return level.name
			}
		}
	}
	return ""
}

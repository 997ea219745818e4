package extraction

import (
	"strings"

	"github.com/jonathan/referral-matcher/internal/lexicon"
)

// Prefix phrases that introduce the hiring company ("at X", "join X").
var hiringPrefixes = []string{"at ", "join ", "we are "}

// Suffix phrases that follow the hiring company ("X is hiring").
var hiringSuffixes = []string{" is hiring", " is looking for", " is seeking"}

// Phrases that signal the text speaks in the hiring company's voice.
var hiringContextPhrases = []string{"our team", "our company", "our organization"}

// detectCompany finds the hiring company in lower-cased job text. A company
// appearing inside a hiring-context phrase wins over a bare mention, which
// avoids misattributing a referenced competitor as the hiring company.
// Companies are scanned in sorted order so detection is deterministic.
func detectCompany(textLower string, lex *lexicon.Lexicon) string {
	companies := lex.Companies()

	for _, company := range companies {
		for _, prefix := range hiringPrefixes {
			if strings.Contains(textLower, prefix+company) {
				return company
			}
		}
		for _, suffix := range hiringSuffixes {
			if strings.Contains(textLower, company+suffix) {
				return company
			}
		}
	}

	// A first-person phrase anywhere plus a company mention is weaker
	// evidence than the positional patterns, but still beats a bare mention.
	for _, phrase := range hiringContextPhrases {
		if !strings.Contains(textLower, phrase) {
			continue
		}
		for _, company := range companies {
			if strings.Contains(textLower, company) {
				return company
			}
		}
		break
	}

	for _, company := range companies {
		if strings.Contains(textLower, company) {
			return company
		}
	}

	return ""
}

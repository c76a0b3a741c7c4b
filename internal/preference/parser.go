package preference

import (
	"strings"

	"joacms/internal/catalog"
)

// Parse classifies free text into a Profile. Pure and deterministic:
// the same input always yields the same profile, regardless of call
// order or prior state. Unmatched text is not an error; it simply
// produces an empty profile.
func Parse(text string) *Profile {
	p := newProfile()

	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return p
	}

	// Restrictions first: they take precedence over emphasis for the
	// same category.
	for _, rule := range restrictionRules {
		if strings.Contains(text, rule.Phrase) {
			p.MatchedPhrases = append(p.MatchedPhrases, rule.Phrase)
			for _, c := range rule.Categories {
				p.Restrictions[c] = true
			}
		}
	}

	for _, diet := range compositeDiets {
		if !containsWord(text, diet.Word) {
			continue
		}
		p.MatchedPhrases = append(p.MatchedPhrases, diet.Word)
		for _, c := range diet.Restrict {
			p.Restrictions[c] = true
		}
		for _, c := range diet.Emphasize {
			if !p.Restrictions[c] {
				p.Emphasis[c] = true
			}
		}
	}

	for _, rule := range emphasisRules {
		if !strings.Contains(text, rule.Phrase) {
			continue
		}
		matched := false
		for _, c := range rule.Categories {
			if !p.Restrictions[c] {
				p.Emphasis[c] = true
				matched = true
			}
		}
		if matched {
			p.MatchedPhrases = append(p.MatchedPhrases, rule.Phrase)
		}
	}

	parseOnlyRequests(text, p)

	for word, style := range cookingStyleWords {
		if containsWord(text, word) {
			p.CookingStyles[style] = true
		}
	}
	for word, hint := range portionHintWords {
		if containsWord(text, word) {
			p.PortionHints[hint] = true
		}
	}

	return p
}

// parseOnlyRequests handles "only X", "only X and Y" and "X & Y only".
// Every category alias found in the clause containing "only" is treated
// as exclusively requested, unless that category is restricted.
func parseOnlyRequests(text string, p *Profile) {
	for _, clause := range splitClauses(text) {
		if !containsWord(clause, "only") {
			continue
		}
		for _, category := range catalog.MainCourseCategories {
			if p.Restrictions[category] {
				continue
			}
			for _, alias := range categoryAliases[category] {
				if containsWord(clause, alias) {
					p.OnlyRequests[category] = true
					break
				}
			}
		}
	}
	if len(p.OnlyRequests) > 0 {
		p.MatchedPhrases = append(p.MatchedPhrases, "only request")
	}
}

// splitClauses cuts text on sentence punctuation so an "only" in one
// clause cannot claim categories mentioned in another.
func splitClauses(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == ',' || r == ';' || r == '!' || r == '?'
	})
}

// containsWord reports whether word appears in text on word boundaries,
// so "only" does not match "commonly".
func containsWord(text, word string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], word)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(word)
		beforeOK := start == 0 || !isWordChar(rune(text[start-1]))
		afterOK := end == len(text) || !isWordChar(rune(text[end]))
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= '0' && r <= '9'
}

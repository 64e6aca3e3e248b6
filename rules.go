package grana

import "strings"

// this file implements the rule based category inference consumed by
// the entry form: given a description the user just typed, guess the
// category (and maybe subcategory) from token overlap with the category
// names.

// RuleMatch is the outcome of category inference. A zero confidence
// means no suggestion.
type RuleMatch struct {
	CategoryID  string
	SubCategory string
	Confidence  float64
}

// confidence thresholds: a match below minConfidence is discarded, and
// a subcategory is only suggested when its own score reaches
// subConfidence. Subcategory scores are damped so an equally good
// category name wins.
const (
	minConfidence = 0.6
	subConfidence = 0.7
	subDamping    = 0.9
)

// InferCategory guesses the category of a description by scoring token
// overlap against the names of the categories of the same type.
// Transfers never get a category.
func InferCategory(description string, categories []Category, typ TransactionType) RuleMatch {
	if description == "" || typ == Transfer {
		return RuleMatch{}
	}
	descTokens := tokenize(description)
	if len(descTokens) == 0 {
		return RuleMatch{}
	}

	var best RuleMatch
	for _, cat := range categories {
		if cat.Type != typ {
			continue
		}
		catScore := overlap(tokenize(cat.Name), descTokens)

		var subScore float64
		var subName string
		for _, sub := range cat.Subcategories {
			if score := overlap(tokenize(sub), descTokens); score > subScore {
				subScore = score
				subName = sub
			}
		}

		combined := max(catScore, subScore*subDamping)
		if combined > best.Confidence {
			best = RuleMatch{CategoryID: cat.ID, Confidence: combined}
			if subScore >= subConfidence {
				best.SubCategory = subName
			}
		}
	}

	if best.Confidence < minConfidence {
		return RuleMatch{}
	}
	return best
}

// overlap returns the fraction of needle tokens present in the haystack.
func overlap(needle, haystack []string) float64 {
	if len(needle) == 0 {
		return 0
	}
	found := 0
	for _, tok := range needle {
		for _, h := range haystack {
			if tok == h {
				found++
				break
			}
		}
	}
	return float64(found) / float64(len(needle))
}

// tokenize normalizes and splits a string into alphanumeric tokens.
func tokenize(s string) []string {
	return strings.FieldsFunc(Normalize(s), func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})
}

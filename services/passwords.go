// services/passwords.go - Static per-group answer key
package services

import "strings"

// Secret is a resolved expected answer together with its comparison rule.
type Secret struct {
	Value         string
	CaseSensitive bool
}

// Matches compares a submitted string against the secret.
func (s Secret) Matches(submitted string) bool {
	if s.CaseSensitive {
		return submitted == s.Value
	}
	return strings.EqualFold(submitted, s.Value)
}

// groupPasswords holds the hunt's answer key for challenges 1-4, keyed by
// group code then challenge order. Matches are case-sensitive; the codes are
// handed out on printed clue cards, so casing is part of the code.
var groupPasswords = map[string]map[int]string{
	"1": {1: "Alpha123", 2: "Alpha234", 3: "Alpha345", 4: "Alpha456"},
	"2": {1: "Bravo123", 2: "Bravo234", 3: "Bravo345", 4: "Bravo456"},
	"3": {1: "Charlie123", 2: "Charlie234", 3: "Charlie345", 4: "Charlie456"},
	"4": {1: "Delta123", 2: "Delta234", 3: "Delta345", 4: "Delta456"},
}

// finalKeywords is the canonical answer source for the final challenge
// (order 5): one keyword per group, compared case-insensitively.
var finalKeywords = map[string]string{
	"1": "mainframe",
	"2": "database",
	"3": "security",
	"4": "networks",
}

// ResolveSecret returns the expected answer for a (group, challenge order)
// pair. Orders 1-4 come from the group password table (exact match), order 5
// from the per-group keyword map (case-insensitive). The challenge catalog's
// stored answer is only a case-insensitive fallback for pairs with no entry,
// e.g. admin-created extra challenges.
func ResolveSecret(groupCode string, order int, fallbackAnswer string) Secret {
	if order == finalChallengeOrder {
		if keyword, ok := finalKeywords[groupCode]; ok {
			return Secret{Value: keyword, CaseSensitive: false}
		}
	} else if table, ok := groupPasswords[groupCode]; ok {
		if password, ok := table[order]; ok {
			return Secret{Value: password, CaseSensitive: true}
		}
	}
	return Secret{Value: fallbackAnswer, CaseSensitive: false}
}

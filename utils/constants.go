package utils

import "strings"

// ValidSkills is the closed vocabulary of skill tags the platform
// recognises. The extraction model is prompted to match against this
// list only.
var ValidSkills = []string{
	"PLUMBER",
	"ELECTRICIAN",
	"CARPENTER",
	"PAINTER",
	"CLEANER",
	"COOK",
	"DRIVER",
	"MASON",
}

// IsValidSkill reports whether tag is in the vocabulary, ignoring case.
func IsValidSkill(tag string) bool {
	for _, s := range ValidSkills {
		if strings.EqualFold(s, tag) {
			return true
		}
	}
	return false
}

// CanonicalSkill returns the upper-case vocabulary form of tag.
func CanonicalSkill(tag string) string {
	return strings.ToUpper(strings.TrimSpace(tag))
}

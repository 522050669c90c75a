package language

import (
	xlanguage "golang.org/x/text/language"
)

// matcher resolves BCP 47 tags against the codes that x/text can parse.
// Private-use and grandfathered codes that fail to parse are only reachable
// through Parse.
var (
	matchTags    []xlanguage.Tag
	matchTargets []Language
	matcher      xlanguage.Matcher
)

func init() {
	for i, in := range infos {
		tag, err := xlanguage.Parse(in.code)
		if err != nil {
			continue
		}
		matchTags = append(matchTags, tag)
		matchTargets = append(matchTargets, Language(i))
	}
	matcher = xlanguage.NewMatcher(matchTags)
}

// Match returns the supported language closest to the given tags, in order of
// preference. The boolean is false when no supported language is a plausible
// match.
func Match(tags ...xlanguage.Tag) (Language, bool) {
	if len(tags) == 0 {
		return 0, false
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == xlanguage.No || idx < 0 || idx >= len(matchTargets) {
		return 0, false
	}
	return matchTargets[idx], true
}

// MatchString parses a comma separated list of tags (an Accept-Language
// header is fine) and calls Match.
func MatchString(s string) (Language, bool) {
	tags, _, err := xlanguage.ParseAcceptLanguage(s)
	if err != nil || len(tags) == 0 {
		return 0, false
	}
	return Match(tags...)
}

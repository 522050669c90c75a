// Package language defines the closed set of languages for which hyphenation
// dictionaries exist.
//
// A Language is a small integer value. It is immutable, compared by equality,
// and embedded as a single byte in every encoded dictionary. Each value has a
// human-readable name (String) used in error messages and a lowercase code
// (Code) used in dictionary file names.
//
// # Usage
//
//	lang, err := language.Parse("en-us")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(lang) // English (US)
//
// Arbitrary BCP 47 tags, for example from an Accept-Language header, can be
// resolved to the closest supported language with Match:
//
//	lang, ok := language.Match(xlanguage.MustParse("fr-CA"))
//
// # Error Handling
//
// Parse returns ErrUnknownLanguage for codes outside the enumeration:
//
//	if errors.Is(err, language.ErrUnknownLanguage) {
//	    // fallback logic
//	}
package language

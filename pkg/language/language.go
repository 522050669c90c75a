package language

import (
	"fmt"
	"strings"
)

// Language identifies the written language a hyphenation dictionary applies to.
// The numeric value is the wire discriminant and must never be reordered.
type Language uint8

const (
	Afrikaans Language = iota
	Armenian
	Assamese
	Basque
	Belarusian
	Bengali
	Bulgarian
	Catalan
	Chinese
	Coptic
	Croatian
	Czech
	Danish
	Dutch
	EnglishGB
	EnglishUS
	Esperanto
	Estonian
	Ethiopic
	Finnish
	FinnishScholastic
	French
	Friulan
	Galician
	Georgian
	German1901
	German1996
	GermanSwiss
	GreekAncient
	GreekMono
	GreekPoly
	Gujarati
	Hindi
	Hungarian
	Icelandic
	Indonesian
	Interlingua
	Irish
	Italian
	Kannada
	Kurmanji
	Latin
	LatinClassic
	LatinLiturgical
	Latvian
	Lithuanian
	Macedonian
	Malayalam
	Marathi
	Mongolian
	NorwegianBokmal
	NorwegianNynorsk
	Occitan
	Oriya
	Pali
	Panjabi
	Piedmontese
	Polish
	Portuguese
	Romanian
	Romansh
	Russian
	Sanskrit
	SerbianCyrillic
	SerbocroatianCyrillic
	SerbocroatianLatin
	SlavonicChurch
	Slovak
	Slovenian
	Spanish
	Swedish
	Tamil
	Telugu
	Thai
	Turkish
	Turkmen
	Ukrainian
	Uppersorbian
	Welsh

	numLanguages
)

type info struct {
	name string
	code string
}

var infos = [numLanguages]info{
	Afrikaans:             {"Afrikaans", "af"},
	Armenian:              {"Armenian", "hy"},
	Assamese:              {"Assamese", "as"},
	Basque:                {"Basque", "eu"},
	Belarusian:            {"Belarusian", "be"},
	Bengali:               {"Bengali", "bn"},
	Bulgarian:             {"Bulgarian", "bg"},
	Catalan:               {"Catalan", "ca"},
	Chinese:               {"Chinese (Pinyin)", "zh-latn-pinyin"},
	Coptic:                {"Coptic", "cop"},
	Croatian:              {"Croatian", "hr"},
	Czech:                 {"Czech", "cs"},
	Danish:                {"Danish", "da"},
	Dutch:                 {"Dutch", "nl"},
	EnglishGB:             {"English (GB)", "en-gb"},
	EnglishUS:             {"English (US)", "en-us"},
	Esperanto:             {"Esperanto", "eo"},
	Estonian:              {"Estonian", "et"},
	Ethiopic:              {"Ethiopic", "mul-ethi"},
	Finnish:               {"Finnish", "fi"},
	FinnishScholastic:     {"Finnish (scholastic)", "fi-x-school"},
	French:                {"French", "fr"},
	Friulan:               {"Friulan", "fur"},
	Galician:              {"Galician", "gl"},
	Georgian:              {"Georgian", "ka"},
	German1901:            {"German (1901)", "de-1901"},
	German1996:            {"German (1996)", "de-1996"},
	GermanSwiss:           {"German (Swiss)", "de-ch-1901"},
	GreekAncient:          {"Greek (ancient)", "grc"},
	GreekMono:             {"Greek (monotonic)", "el-monoton"},
	GreekPoly:             {"Greek (polytonic)", "el-polyton"},
	Gujarati:              {"Gujarati", "gu"},
	Hindi:                 {"Hindi", "hi"},
	Hungarian:             {"Hungarian", "hu"},
	Icelandic:             {"Icelandic", "is"},
	Indonesian:            {"Indonesian", "id"},
	Interlingua:           {"Interlingua", "ia"},
	Irish:                 {"Irish", "ga"},
	Italian:               {"Italian", "it"},
	Kannada:               {"Kannada", "kn"},
	Kurmanji:              {"Kurmanji", "kmr"},
	Latin:                 {"Latin", "la"},
	LatinClassic:          {"Latin (classic)", "la-x-classic"},
	LatinLiturgical:       {"Latin (liturgical)", "la-x-liturgic"},
	Latvian:               {"Latvian", "lv"},
	Lithuanian:            {"Lithuanian", "lt"},
	Macedonian:            {"Macedonian", "mk"},
	Malayalam:             {"Malayalam", "ml"},
	Marathi:               {"Marathi", "mr"},
	Mongolian:             {"Mongolian", "mn-cyrl"},
	NorwegianBokmal:       {"Norwegian (Bokmål)", "nb"},
	NorwegianNynorsk:      {"Norwegian (Nynorsk)", "nn"},
	Occitan:               {"Occitan", "oc"},
	Oriya:                 {"Oriya", "or"},
	Pali:                  {"Pali", "pi"},
	Panjabi:               {"Panjabi", "pa"},
	Piedmontese:           {"Piedmontese", "pms"},
	Polish:                {"Polish", "pl"},
	Portuguese:            {"Portuguese", "pt"},
	Romanian:              {"Romanian", "ro"},
	Romansh:               {"Romansh", "rm"},
	Russian:               {"Russian", "ru"},
	Sanskrit:              {"Sanskrit", "sa"},
	SerbianCyrillic:       {"Serbian (Cyrillic)", "sr-cyrl"},
	SerbocroatianCyrillic: {"Serbo-Croatian (Cyrillic)", "sh-cyrl"},
	SerbocroatianLatin:    {"Serbo-Croatian (Latin)", "sh-latn"},
	SlavonicChurch:        {"Church Slavonic", "cu"},
	Slovak:                {"Slovak", "sk"},
	Slovenian:             {"Slovenian", "sl"},
	Spanish:               {"Spanish", "es"},
	Swedish:               {"Swedish", "sv"},
	Tamil:                 {"Tamil", "ta"},
	Telugu:                {"Telugu", "te"},
	Thai:                  {"Thai", "th"},
	Turkish:               {"Turkish", "tr"},
	Turkmen:               {"Turkmen", "tk"},
	Ukrainian:             {"Ukrainian", "uk"},
	Uppersorbian:          {"Upper Sorbian", "hsb"},
	Welsh:                 {"Welsh", "cy"},
}

var byCode = func() map[string]Language {
	m := make(map[string]Language, numLanguages)
	for i, in := range infos {
		m[in.code] = Language(i)
	}
	return m
}()

// Valid reports whether l is a member of the enumeration.
func (l Language) Valid() bool {
	return l < numLanguages
}

// String returns the human-readable name, e.g. "English (US)".
func (l Language) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Language(%d)", uint8(l))
	}
	return infos[l].name
}

// Code returns the lowercase code used in dictionary file names, e.g. "en-us".
// Invalid values return an empty string.
func (l Language) Code() string {
	if !l.Valid() {
		return ""
	}
	return infos[l].code
}

// MarshalText implements encoding.TextMarshaler using the language code.
func (l Language) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLanguage, uint8(l))
	}
	return []byte(infos[l].code), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting any code Parse accepts.
func (l *Language) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Parse returns the language identified by code. Matching is case-insensitive
// and accepts "_" as a subtag separator.
func Parse(code string) (Language, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(code)), "_", "-")
	if l, ok := byCode[normalized]; ok {
		return l, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
}

// MustParse is like Parse but panics on unknown codes.
func MustParse(code string) Language {
	l, err := Parse(code)
	if err != nil {
		panic(err)
	}
	return l
}

// All returns every supported language in wire order.
func All() []Language {
	out := make([]Language, numLanguages)
	for i := range out {
		out[i] = Language(i)
	}
	return out
}

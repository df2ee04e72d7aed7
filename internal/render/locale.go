package render

import (
	"golang.org/x/text/language"
)

// Locale pairs a language tag with its short calendar date layout.
type Locale struct {
	Tag       language.Tag
	DateShort string
}

// Supported locales. The first entry is the fallback when no other default is configured.
var locales = []Locale{
	{Tag: language.AmericanEnglish, DateShort: "1/2/2006"},
	{Tag: language.BritishEnglish, DateShort: "02/01/2006"},
	{Tag: language.MustParse("de-DE"), DateShort: "2.1.2006"},
	{Tag: language.MustParse("fr-FR"), DateShort: "02/01/2006"},
	{Tag: language.MustParse("ja-JP"), DateShort: "2006/1/2"},
	{Tag: language.MustParse("id-ID"), DateShort: "2/1/2006"},
}

// LocaleResolver picks the viewer's locale from an Accept-Language header.
type LocaleResolver struct {
	matcher language.Matcher
	order   []int // matcher index -> locales index
	def     int
}

// NewLocaleResolver builds a resolver falling back to defaultTag, or to en-US when
// defaultTag is not a supported locale.
func NewLocaleResolver(defaultTag string) *LocaleResolver {
	r := &LocaleResolver{}
	tags := make([]language.Tag, 0, len(locales))
	for _, l := range locales {
		tags = append(tags, l.Tag)
	}
	if t, err := language.Parse(defaultTag); err == nil {
		_, idx, conf := language.NewMatcher(tags).Match(t)
		if conf != language.No {
			r.def = idx
		}
	}
	// The matcher answers with its first tag when nothing matches, so the default goes first.
	ordered := []language.Tag{tags[r.def]}
	r.order = []int{r.def}
	for i, t := range tags {
		if i != r.def {
			ordered = append(ordered, t)
			r.order = append(r.order, i)
		}
	}
	r.matcher = language.NewMatcher(ordered)
	return r
}

// Default returns the configured fallback locale.
func (r *LocaleResolver) Default() Locale { return locales[r.def] }

// Resolve matches an Accept-Language header against the supported locales.
func (r *LocaleResolver) Resolve(acceptLanguage string) Locale {
	if acceptLanguage == "" {
		return r.Default()
	}
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return r.Default()
	}
	_, idx, conf := r.matcher.Match(prefs...)
	if conf == language.No {
		return r.Default()
	}
	return locales[r.order[idx]]
}

package dates

import (
	"errors"
	"sort"
	"strings"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"golang.org/x/text/language"
)

var translators = ut.New(en.New(), bundled...)

// Locales returns the bundled locale codes, sorted.
func Locales() []string {
	codes := make([]string, 0, len(bundled))
	for _, t := range bundled {
		codes = append(codes, t.Locale())
	}
	sort.Strings(codes)
	return codes
}

// ValidateLocale returns an *InvalidLocaleError if locale cannot be used by Format.
func ValidateLocale(locale string) error {
	_, err := lookupLocale(locale)
	return err
}

// lookupLocale returns the translator for locale, trying the full tag first
// and then dropping script and region.
func lookupLocale(locale string) (locales.Translator, error) {
	if strings.TrimSpace(locale) == "" {
		return nil, &InvalidLocaleError{Locale: locale, Err: errors.New("empty locale")}
	}

	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return nil, &InvalidLocaleError{Locale: locale, Err: err}
	}

	trans, found := translators.FindTranslator(candidates(tag)...)
	if !found {
		return nil, &InvalidLocaleError{Locale: locale}
	}
	return trans, nil
}

// candidates lists locale codes in go-playground naming, most specific first.
func candidates(tag language.Tag) []string {
	base, script, region := tag.Raw()
	b := base.String()

	var out []string
	out = append(out, strings.ReplaceAll(tag.String(), "-", "_"))
	if script.String() != "Zzzz" && region.String() != "ZZ" {
		out = append(out, b+"_"+script.String()+"_"+region.String())
	}
	if script.String() != "Zzzz" {
		out = append(out, b+"_"+script.String())
	}
	if region.String() != "ZZ" {
		out = append(out, b+"_"+region.String())
	}
	out = append(out, b)
	return out
}

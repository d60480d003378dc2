// Package dates renders a Unix timestamp as the localized date strings shown
// on documentation pages.
//
// Long-form dates follow CLDR rules through github.com/go-playground/locales.
// Locale identifiers are accepted in BCP 47 form ("pt-BR") or with
// underscores ("pt_BR"); a regional locale that is not bundled falls back to
// its base language. Unknown locales and time zones are errors: a silently
// substituted default would publish wrong dates.
package dates

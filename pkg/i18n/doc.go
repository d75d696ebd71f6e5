// Package i18n resolves the symbolic keys used by the profile screen into
// display strings. Catalogs are plain YAML or JSON files, one per locale,
// loaded from an fs.FS; nested maps flatten into dotted keys. Locale
// negotiation uses golang.org/x/text/language so "en-GB" or an
// Accept-Language header resolves to the closest bundled catalog.
//
// The package stays a static lookup: there is no pluralisation, no message
// extraction and no runtime reloading.
package i18n

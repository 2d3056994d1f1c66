package messages

// SupportedLanguages lists the catalog languages a user may switch to.
var SupportedLanguages = []string{"en", "ru", "uk"}

// DefaultLanguage is the fallback when a user has no stored language or the
// stored code is unknown.
const DefaultLanguage = "en"

// IsSupported reports whether the language code has a catalog.
func IsSupported(language string) bool {
	for _, l := range SupportedLanguages {
		if l == language {
			return true
		}
	}
	return false
}

// Resolve maps a stored language code to a usable catalog language.
func Resolve(language string) string {
	if IsSupported(language) {
		return language
	}
	return DefaultLanguage
}

// Get returns the message for the key in the given language, falling back
// to the default language, then to the key itself. Texts that are sent as
// MarkdownV2 come pre-escaped; dynamic parts are escaped by the caller.
func Get(language, key string) string {
	if catalog, ok := catalogs[language]; ok {
		if text, ok := catalog[key]; ok {
			return text
		}
	}
	if text, ok := catalogs[DefaultLanguage][key]; ok {
		return text
	}
	return key
}

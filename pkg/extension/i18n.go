package extension

import (
	"errors"
	"strings"

	"golang.org/x/text/language"

	"github.com/goliatone/go-renderkit/pkg/render"
)

// ErrMissingTranslator reports an i18n call with no translator configured.
var ErrMissingTranslator = errors.New("extension: i18n translator not configured")

// Translator resolves a message key for a locale. Implementations return an
// error or an empty string when the key has no translation.
type Translator interface {
	Translate(locale, key string) (string, error)
}

// LocaleLister is an optional Translator capability. When implemented, the
// requested locale is matched against the listed locales with BCP 47
// matching, so a request for "en-US" can resolve against an "en" catalogue.
type LocaleLister interface {
	Locales() []string
}

// MissingTranslationHandler decides the replacement text when a key cannot
// be translated. err may be ErrMissingTranslator or a translator failure.
type MissingTranslationHandler func(locale, key string, err error) string

// I18NOption configures the i18n extension.
type I18NOption func(*i18nExtension)

// WithDefaultLocale sets the locale used when a call supplies none.
func WithDefaultLocale(locale string) I18NOption {
	return func(e *i18nExtension) {
		e.defaultLocale = strings.TrimSpace(locale)
	}
}

// WithMissingTranslationHandler overrides the fallback for untranslatable
// keys. The default returns the key itself.
func WithMissingTranslationHandler(handler MissingTranslationHandler) I18NOption {
	return func(e *i18nExtension) {
		if handler != nil {
			e.onMissing = handler
		}
	}
}

type i18nExtension struct {
	translator    Translator
	matcher       language.Matcher
	locales       []string
	defaultLocale string
	onMissing     MissingTranslationHandler
}

var _ Extension = (*i18nExtension)(nil)

// NewI18N builds the i18n extension around translator. Register it under the
// I18N name. A nil translator is allowed; every call then routes through the
// missing-translation handler with ErrMissingTranslator.
func NewI18N(translator Translator, options ...I18NOption) Extension {
	e := &i18nExtension{
		translator: translator,
		onMissing: func(_, key string, _ error) string {
			return key
		},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}

	if lister, ok := translator.(LocaleLister); ok {
		var tags []language.Tag
		for _, locale := range lister.Locales() {
			tag, err := language.Parse(locale)
			if err != nil {
				continue
			}
			tags = append(tags, tag)
			e.locales = append(e.locales, locale)
		}
		if len(tags) > 0 {
			e.matcher = language.NewMatcher(tags)
		}
	}
	return e
}

// Call translates args[0]. An optional options map in args[1] may carry a
// "locale" entry overriding the default.
func (e *i18nExtension) Call(ctx *render.Context, args ...any) (any, error) {
	if len(args) == 0 {
		return nil, errors.New("extension: i18n requires a message key")
	}
	model := modelOf(ctx)
	key := model.ToString(args[0])

	locale := e.defaultLocale
	if len(args) > 1 {
		options := model.ToStringMap(args[1])
		if l, ok := options["locale"]; ok {
			locale = model.ToString(l)
		}
	}
	locale = e.matchLocale(locale)

	if e.translator == nil {
		return e.onMissing(locale, key, ErrMissingTranslator), nil
	}

	translated, err := e.translator.Translate(locale, key)
	if err != nil || strings.TrimSpace(translated) == "" {
		return e.onMissing(locale, key, err), nil
	}
	return translated, nil
}

func (e *i18nExtension) matchLocale(locale string) string {
	if e.matcher == nil || locale == "" {
		return locale
	}
	requested, err := language.Parse(locale)
	if err != nil {
		return locale
	}
	_, index, confidence := e.matcher.Match(requested)
	if confidence == language.No || index >= len(e.locales) {
		return locale
	}
	return e.locales[index]
}

// Package i18n resolves the interface language and prints catalog messages.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	supported = []language.Tag{language.Korean, language.English}
	matcher   = language.NewMatcher(supported)
)

func init() {
	register(language.Korean, koMessages)
	register(language.English, enMessages)
}

// adds a catalog to the default message catalog
func register(tag language.Tag, messages map[string]string) {
	for key, msg := range messages {
		if err := message.SetString(tag, key, msg); err != nil {
			panic(err)
		}
	}
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.Korean
}

// Resolve maps a user-supplied language value onto a supported tag.
func Resolve(value string) language.Tag {
	value = strings.TrimSpace(value)
	if value == "" {
		return Default()
	}

	tag, err := language.Parse(value)
	if err != nil {
		return Default()
	}

	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Default()
	}

	return supported[idx]
}

// Printer returns a message printer for the supplied language value.
func Printer(value string) *message.Printer {
	return message.NewPrinter(Resolve(value))
}

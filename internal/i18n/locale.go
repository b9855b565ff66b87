package i18n

import (
	"fmt"
	"strings"

	"github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

// Auto asks Resolve to detect the language from the user's environment.
const Auto = "auto"

var matcher = language.NewMatcher(supported)

// detectIETF is swapped out in tests.
var detectIETF = jibber_jabber.DetectIETF

// Resolve maps a language name ("pt-BR", "en", "auto", ...) onto one of the
// supported catalog languages. An empty name yields Default. With Auto, the
// user locale is detected; if detection fails or matches nothing, Default
// is used.
func Resolve(name string) (language.Tag, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return Default, nil
	case strings.EqualFold(name, Auto):
		return detect(), nil
	}

	tag, err := language.Parse(name)
	if err != nil {
		return language.Und, fmt.Errorf("invalid language %q: %w", name, err)
	}
	matched, ok := match(tag)
	if !ok {
		return language.Und, fmt.Errorf("unsupported language %q: must be one of %s", name, SupportedNames())
	}
	return matched, nil
}

// SupportedNames lists the languages Resolve accepts besides Auto.
func SupportedNames() string {
	names := make([]string, len(supported))
	for i, tag := range supported {
		names[i] = tag.String()
	}
	return strings.Join(names, ", ")
}

func detect() language.Tag {
	ietf, err := detectIETF()
	if err != nil {
		return Default
	}
	tag, err := language.Parse(ietf)
	if err != nil {
		return Default
	}
	if matched, ok := match(tag); ok {
		return matched
	}
	return Default
}

func match(tag language.Tag) (language.Tag, bool) {
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.Und, false
	}
	return supported[index], true
}

package localeid

import (
	"os"
	"strings"
)

// localeVariables are consulted in this order, as by gettext for message
// catalogs. LANGUAGE may hold a colon-separated list.
var localeVariables = []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"}

// FromEnvironment returns the locale configured in the process environment.
// It takes the first value of LANGUAGE, LC_ALL, LC_MESSAGES and LANG which is
// a valid Gettext identifier. The values "C" and "POSIX" select no locale and
// are skipped.
func FromEnvironment() (*Locale, error) {
	return fromEnvironment(os.Getenv)
}

func fromEnvironment(getenv func(string) string) (*Locale, error) {
	for _, name := range localeVariables {
		for _, value := range strings.Split(getenv(name), ":") {
			if value == "" || value == "C" || value == "POSIX" {
				continue
			}
			l, err := ParseGettext(value)
			if err != nil {
				tracer().Infof("ignoring %s=%q: %v", name, value, err)
				continue
			}
			return l, nil
		}
	}
	return nil, ErrNoLocale
}

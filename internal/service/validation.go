package service

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	gucMailRegex = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@(?:(?:[a-zA-Z0-9-]+\.)?[a-zA-Z]+\.)?(student)\.guc\.edu\.eg$`)
	gucIDRegex   = regexp.MustCompile(`^[0-9]{2}-[0-9]{4,6}$`)

	passwordAlphabet = regexp.MustCompile(`^[A-Za-z\d$@!%*#?&]{8,}$`)
	passwordDigit    = regexp.MustCompile(`\d`)
	passwordSymbol   = regexp.MustCompile(`[$@!%*#?&]`)
)

// IsGUCMail reports whether email belongs to the student mail domain.
func IsGUCMail(email string) bool {
	return gucMailRegex.MatchString(email)
}

// IsGUCID reports whether id looks like "43-1234".
func IsGUCID(id string) bool {
	return gucIDRegex.MatchString(id)
}

// IsStrongPassword checks length, alphabet, one digit and one symbol.
func IsStrongPassword(password string) bool {
	return passwordAlphabet.MatchString(password) &&
		passwordDigit.MatchString(password) &&
		passwordSymbol.MatchString(password)
}

// IsWebURL reports whether raw is an absolute http(s) URL.
func IsWebURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// SplitTags splits comma separated text into trimmed, non-empty names.
func SplitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			names = append(names, name)
		}
	}
	return names
}

package domain

import (
	"net/url"
	"regexp"
	"strings"
)

var codeRe = regexp.MustCompile(`^[A-Za-z0-9]{6,8}$`)

// ValidateTargetURL accepts absolute http(s) URLs only. Relative paths
// and scheme-less strings are rejected even when url.Parse accepts them.
func ValidateTargetURL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return ErrInvalidURL
	}

	u, err := url.Parse(s)
	if err != nil {
		return ErrInvalidURL
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return ErrInvalidURL
	}

	if u.Host == "" {
		return ErrInvalidURL
	}

	return nil
}

func ValidateCode(s string) error {
	if !codeRe.MatchString(s) {
		return ErrInvalidCode
	}

	return nil
}

package domain

import "net/url"

// IsURLLocator reports whether a plugin locator is an http or https URL rather than a file path.
func IsURLLocator(locator string) bool {
	u, err := url.Parse(locator)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

package entity

import (
	"fmt"
	"net/url"
	"strings"
)

// Origin is a canonicalized scheme+host+port identifier. It is the sole key
// for permission decisions. Two origins are equal exactly when their
// canonical strings are equal.
type Origin string

// ParseOrigin canonicalizes a URI into an Origin. The scheme and host are
// lowercased, path/query/fragment and userinfo are dropped, and default ports
// for http/https are stripped.
func ParseOrigin(raw string) (Origin, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("parse origin %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("origin %q must have a scheme and host", raw)
	}

	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Hostname())
	port := u.Port()

	if (scheme == "http" && port == "80") || (scheme == "https" && port == "443") {
		port = ""
	}

	if port != "" {
		return Origin(scheme + "://" + host + ":" + port), nil
	}
	return Origin(scheme + "://" + host), nil
}

// Host returns the host (and port, if present) portion of the origin.
func (o Origin) Host() string {
	u, err := url.Parse(string(o))
	if err != nil {
		return string(o)
	}
	return u.Host
}

// Scheme returns the scheme portion of the origin.
func (o Origin) Scheme() string {
	u, err := url.Parse(string(o))
	if err != nil {
		return ""
	}
	return u.Scheme
}

func (o Origin) String() string {
	return string(o)
}

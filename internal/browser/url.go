// ABOUTME: Normalization of user-typed URLs before navigation
// ABOUTME: NFC folding, https scheme default, punycode host mapping

package browser

import (
	"net/url"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// NormalizeURL prepares a user-typed address for navigation. Input without
// a scheme gets https; the text is NFC-normalized and internationalized
// hostnames are mapped to punycode. A string that refuses to parse is
// returned scheme-prefixed as-is and left for the browser to reject.
func NormalizeURL(raw string) string {
	s := norm.NFC.String(strings.TrimSpace(raw))
	if s == "" {
		return s
	}
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}

	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return s
	}
	host := u.Hostname()
	mapped, err := idna.Lookup.ToASCII(host)
	if err != nil || mapped == host {
		return s
	}
	if port := u.Port(); port != "" {
		u.Host = mapped + ":" + port
	} else {
		u.Host = mapped
	}
	return u.String()
}

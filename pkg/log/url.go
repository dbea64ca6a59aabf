package log

import (
	"log/slog"
	"net/url"
)

// ScrubbedURL returns an attribute holding the given url with its
// credentials and api key query parameters masked.
func ScrubbedURL(name string, rawURL string) slog.Attr {
	u, err := url.Parse(rawURL)
	if err != nil {
		return slog.String(name, rawURL)
	}

	scrubbed := *u

	if u.User != nil {
		scrubbed.User = url.UserPassword("xxx", "xxx")
	}

	query := scrubbed.Query()
	for _, key := range []string{"apikey", "apiKey", "key", "token"} {
		if query.Has(key) {
			query.Set(key, "xxx")
		}
	}
	scrubbed.RawQuery = query.Encode()

	return slog.String(name, scrubbed.String())
}

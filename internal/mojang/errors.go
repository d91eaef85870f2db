package mojang

import (
	"fmt"

	"github.com/steviee/go-hypixel/internal/apierr"
)

func notFound(subject string) error {
	return apierr.PlayerNotFound(apierr.APIMojang, subject)
}

func unexpectedStatus(status int, body []byte) error {
	msg := ""
	if len(body) > 0 {
		msg = fmt.Sprintf("mojang API error (status %d): %s", status, truncate(string(body), 200))
	}
	return apierr.Transport(apierr.APIMojang, status, msg, nil)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

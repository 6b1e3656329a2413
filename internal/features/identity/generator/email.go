package generator

import (
	"fmt"
	"net/url"
	"strings"

	"metchera-backend/internal/features/identity/models"
)

const (
	passwordLength = 12
	passwordChars  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%"
)

// tempEmail builds the disposable inbox sub-record. The local part extends the
// shared base username so the address stays visibly linked to the rest of the
// identity.
func (g *Generator) tempEmail(username string) models.TempEmail {
	provider := emailProviders[g.rng.Intn(len(emailProviders))]

	local := fmt.Sprintf("%s%d", username, g.intn(100, 999))
	address := local + "@" + provider.domain

	// 10minutemail inboxes are session-bound, so no password applies.
	password := ""
	if !strings.Contains(provider.domain, "10minutemail") {
		password = g.password(passwordLength)
	}

	return models.TempEmail{
		Address:   address,
		AccessURL: buildAccessURL(provider, local, address),
		Password:  password,
		Provider:  provider.domain,
	}
}

// buildAccessURL applies the provider-specific inbox URL template. Some
// providers key the inbox on the local part, some on the full encoded
// address, and some only expose a session landing page.
func buildAccessURL(provider emailProvider, local, address string) string {
	switch provider.domain {
	case "mailinator.com", "dispostable.com":
		return provider.baseURL + local
	case "temp-mail.org":
		return provider.baseURL + url.QueryEscape(address)
	default:
		return provider.baseURL
	}
}

func (g *Generator) password(length int) string {
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(passwordChars[g.rng.Intn(len(passwordChars))])
	}
	return b.String()
}

package generator

import (
	"time"

	"metchera-backend/internal/features/identity/models"
)

// idCard issues within the past 5 years and expires at a random future point
// no later than 5 years after issue.
func (g *Generator) idCard(nationality, state string) *models.IDCard {
	const validity = 5 * 365 * 24 * time.Hour

	// Issue with at least a day of validity left, then draw the expiry from
	// the remaining window so it is always in the future and never past
	// issue plus 5 years.
	now := time.Now()
	elapsed := time.Duration(g.rng.Int63n(int64(validity - 24*time.Hour)))
	issueDate := now.Add(-elapsed)
	remaining := validity - elapsed
	expiryDate := now.Add(time.Duration(g.rng.Int63n(int64(remaining-time.Hour))) + time.Hour)

	authority := nationality + " National Registry"
	if nationality == "United States" {
		authority = state + " Department of Public Safety"
	}

	return &models.IDCard{
		Number:           "ID" + g.alphanumeric(8),
		IssueDate:        issueDate,
		ExpiryDate:       expiryDate,
		IssuingAuthority: authority,
	}
}

// passport carries a fixed 10-year validity from issue.
func (g *Generator) passport(nationality string) *models.Passport {
	issueDate := g.pastDate(3)

	return &models.Passport{
		Number:         g.letters(2) + g.digits(7),
		IssueDate:      issueDate,
		ExpiryDate:     issueDate.AddDate(10, 0, 0),
		IssuingCountry: nationality,
		PassportType:   g.pick(passportTypes),
	}
}

// driverLicense carries a fixed 4-year validity from issue, plus 0-2
// restriction codes drawn without replacement.
func (g *Generator) driverLicense(state string) *models.DriverLicense {
	issueDate := g.pastDate(2)

	return &models.DriverLicense{
		Number:       "DL" + g.alphanumeric(10),
		IssueDate:    issueDate,
		ExpiryDate:   issueDate.AddDate(4, 0, 0),
		IssuingState: state,
		Class:        g.pick(licenseClasses),
		Restrictions: g.sample(licenseRestrictions, g.rng.Intn(3)),
	}
}

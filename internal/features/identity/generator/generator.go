// Package generator fabricates self-consistent synthetic identities. Every
// field is drawn from a seedable pseudo-random source; the generator performs
// no I/O and has no side effects beyond consuming draws.
package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"metchera-backend/internal/common/errors"
	"metchera-backend/internal/features/identity/models"
)

const (
	// Fixed absolute expiry for every identity, independent of auto-delete.
	identityTTL = 7 * 24 * time.Hour

	// Default rolling auto-delete window when no timeout is requested.
	defaultAutoDeleteMinutes = 24 * 60

	minAge = 18
	maxAge = 65
)

// Generator draws identity fields from a pseudo-random source. Not safe for
// concurrent use; create one per goroutine or guard externally.
type Generator struct {
	rng *rand.Rand
}

// New creates a time-seeded generator.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded creates a generator with a fixed seed. Identical seeds yield
// identical identities, which is what the tests rely on.
func NewSeeded(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate produces one coherent identity. When docType is empty, one of the
// three document types is chosen uniformly. autoDeleteMinutes > 0 enables the
// rolling auto-delete clock; otherwise it stays disabled with a well-defined
// 24h default deadline. An unrecognized document type is a configuration
// error, never silently substituted.
func (g *Generator) Generate(docType models.DocumentType, autoDeleteMinutes int) (*models.Identity, error) {
	if docType != "" && !docType.Valid() {
		return nil, errors.NewInvalidDocumentTypeError(string(docType))
	}

	gender := g.pick([]string{models.GenderMale, models.GenderFemale})
	firstName := g.firstName(gender)
	lastName := g.pick(lastNames)
	birthdate := g.birthdate()

	id := uuid.New().String()

	// Nationality and state are drawn independently and may disagree
	// geographically. Accepted, not corrected.
	nationality := g.pick(countries)
	state := g.pick(states)

	// One base username token feeds the temp email and every social profile
	// so the artifacts are visibly linked.
	username := fmt.Sprintf("%s%s%d", strings.ToLower(firstName), strings.ToLower(lastName), g.intn(100, 999))

	tempEmail := g.tempEmail(username)

	if docType == "" {
		docType = models.DocumentTypes[g.rng.Intn(len(models.DocumentTypes))]
	}

	now := time.Now()

	identity := &models.Identity{
		ID:          id,
		FirstName:   firstName,
		LastName:    lastName,
		Gender:      gender,
		DateOfBirth: birthdate.Format("2006-01-02"),
		Age:         now.Year() - birthdate.Year(),
		Nationality: nationality,
		Address: models.Address{
			Street:  g.street(),
			City:    g.pick(cities),
			State:   state,
			ZipCode: fmt.Sprintf("%05d", g.rng.Intn(100000)),
			Country: g.pick(countries),
		},
		Email:     tempEmail.Address,
		Phone:     g.phone(),
		AvatarURL: models.AvatarURL(id),
		CreatedAt: now,
		ExpiresAt: now.Add(identityTTL),
		AutoDelete: models.AutoDelete{
			Enabled:        autoDeleteMinutes > 0,
			DeleteAt:       autoDeleteAt(now, autoDeleteMinutes),
			TimeoutMinutes: autoDeleteTimeout(autoDeleteMinutes),
		},
		DocumentType: docType,
		SocialMedia:  g.socialProfiles(firstName, lastName, username),
		TempEmail:    tempEmail,
		Banking:      g.banking(),
	}

	switch docType {
	case models.DocumentTypeIDCard:
		identity.Documents.IDCard = g.idCard(nationality, state)
	case models.DocumentTypePassport:
		identity.Documents.Passport = g.passport(nationality)
	case models.DocumentTypeDriverLicense:
		identity.Documents.DriverLicense = g.driverLicense(state)
	}

	return identity, nil
}

// GenerateMultiple produces count identities with random document types.
func (g *Generator) GenerateMultiple(count int) ([]*models.Identity, error) {
	identities := make([]*models.Identity, 0, count)
	for i := 0; i < count; i++ {
		identity, err := g.Generate("", 0)
		if err != nil {
			return nil, err
		}
		identities = append(identities, identity)
	}
	return identities, nil
}

func autoDeleteAt(now time.Time, minutes int) time.Time {
	if minutes > 0 {
		return now.Add(time.Duration(minutes) * time.Minute)
	}
	return now.Add(defaultAutoDeleteMinutes * time.Minute)
}

func autoDeleteTimeout(minutes int) int {
	if minutes > 0 {
		return minutes
	}
	return defaultAutoDeleteMinutes
}

func (g *Generator) firstName(gender string) string {
	if gender == models.GenderFemale {
		return g.pick(femaleFirstNames)
	}
	return g.pick(maleFirstNames)
}

// birthdate yields a date of birth for an adult aged 18-65 at generation time.
func (g *Generator) birthdate() time.Time {
	age := g.intn(minAge, maxAge)
	base := time.Now().AddDate(-age, 0, 0)
	return base.AddDate(0, 0, -g.rng.Intn(365)).Truncate(24 * time.Hour)
}

// phone generates a fictional US number: (555) XXX-XXXX.
func (g *Generator) phone() string {
	return fmt.Sprintf("(555) %03d-%04d", g.intn(100, 999), g.rng.Intn(10000))
}

func (g *Generator) street() string {
	return fmt.Sprintf("%d %s %s", g.intn(100, 9999), g.pick(streetNames), g.pick(streetSuffixes))
}

// pick returns a random element of s.
func (g *Generator) pick(s []string) string {
	return s[g.rng.Intn(len(s))]
}

// intn returns a random int in [min, max].
func (g *Generator) intn(min, max int) int {
	return min + g.rng.Intn(max-min+1)
}

// sample draws n distinct elements from s without replacement.
func (g *Generator) sample(s []string, n int) []string {
	idx := g.rng.Perm(len(s))
	out := make([]string, 0, n)
	for _, i := range idx[:n] {
		out = append(out, s[i])
	}
	return out
}

// digits returns a string of n random decimal digits.
func (g *Generator) digits(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + g.rng.Intn(10)))
	}
	return b.String()
}

const upperAlphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const upperAlpha = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// alphanumeric returns n random uppercase letters and digits.
func (g *Generator) alphanumeric(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(upperAlphanumeric[g.rng.Intn(len(upperAlphanumeric))])
	}
	return b.String()
}

func (g *Generator) letters(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(upperAlpha[g.rng.Intn(len(upperAlpha))])
	}
	return b.String()
}

// pastDate returns a random instant within the given number of years before
// now.
func (g *Generator) pastDate(years int) time.Time {
	span := time.Duration(years) * 365 * 24 * time.Hour
	return time.Now().Add(-time.Duration(g.rng.Int63n(int64(span))))
}

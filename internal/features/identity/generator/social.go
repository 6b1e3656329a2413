package generator

import (
	"fmt"
	"strings"

	"metchera-backend/internal/features/identity/models"
)

// socialProfiles samples 2-4 platforms without replacement and builds a
// profile per platform. Follower and following ranges differ by an order of
// magnitude between platforms on purpose: instagram and tiktok skew
// follower-heavy, linkedin stays small.
func (g *Generator) socialProfiles(firstName, lastName, baseUsername string) map[models.Platform]*models.SocialProfile {
	first := strings.ToLower(firstName)
	last := strings.ToLower(lastName)
	joined := first + last

	// All variants derive from the same name so artifacts stay linked.
	variations := []string{
		joined,
		first + "." + last,
		first + "_" + last,
		fmt.Sprintf("%s%d", joined, g.intn(10, 999)),
		"real" + joined,
		"the" + first,
		fmt.Sprintf("%s%d", first, g.intn(1, 99)),
	}
	if baseUsername != "" {
		variations = append(variations, baseUsername)
	}

	count := g.intn(2, 4)
	idx := g.rng.Perm(len(models.Platforms))

	profiles := make(map[models.Platform]*models.SocialProfile, count)
	for _, i := range idx[:count] {
		platform := models.Platforms[i]
		username := g.pick(variations)
		joinDate := g.pastDate(7)

		switch platform {
		case models.PlatformFacebook:
			profiles[platform] = &models.SocialProfile{
				Username:   username,
				ProfileURL: "https://facebook.com/" + username,
				Followers:  g.intn(50, 1000),
				Following:  g.intn(50, 500),
				Bio:        g.personBio(),
				JoinDate:   joinDate,
			}
		case models.PlatformTwitter:
			profiles[platform] = &models.SocialProfile{
				Username:   "@" + username,
				ProfileURL: "https://twitter.com/" + username,
				Followers:  g.intn(10, 2000),
				Following:  g.intn(50, 1000),
				Bio:        g.sentence(10),
				JoinDate:   joinDate,
			}
		case models.PlatformInstagram:
			profiles[platform] = &models.SocialProfile{
				Username:   username,
				ProfileURL: "https://instagram.com/" + username,
				Followers:  g.intn(100, 5000),
				Following:  g.intn(100, 1000),
				Bio:        g.sentence(6) + " " + g.sentence(6),
				JoinDate:   joinDate,
			}
		case models.PlatformLinkedin:
			handle := first + "-" + last
			profiles[platform] = &models.SocialProfile{
				Username:   handle,
				ProfileURL: "https://linkedin.com/in/" + handle,
				Followers:  g.intn(50, 500),
				Following:  g.intn(50, 300),
				Bio:        fmt.Sprintf("%s at %s | %s Professional", g.pick(jobTitles), g.pick(companies), g.pick(jobAreas)),
				JoinDate:   joinDate,
			}
		case models.PlatformTiktok:
			profiles[platform] = &models.SocialProfile{
				Username:   username,
				ProfileURL: "https://tiktok.com/@" + username,
				Followers:  g.intn(100, 10000),
				Following:  g.intn(50, 500),
				Bio:        g.sentence(5),
				JoinDate:   joinDate,
			}
		}
	}

	return profiles
}

// personBio builds a short interest-list bio like a real profile blurb.
func (g *Generator) personBio() string {
	parts := g.sample(bioPhrases, 2)
	return strings.Join(parts, ", ")
}

// sentence builds an n-word throwaway bio sentence.
func (g *Generator) sentence(n int) string {
	words := make([]string, 0, n)
	for i := 0; i < n; i++ {
		words = append(words, g.pick(loremWords))
	}
	s := strings.Join(words, " ")
	return strings.ToUpper(s[:1]) + s[1:] + "."
}

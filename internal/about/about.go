// Package about holds the static "about us" page content for the chapter.
package about

// Pillar is one of the chapter's six development pillars.
type Pillar struct {
	ID          string
	Title       string
	Description string
}

// SocialLink points to one of the chapter's public profiles.
type SocialLink struct {
	Name string
	URL  string
}

const (
	Name = "SHPE // MAES UTEP"

	Mission = "Engage UTEP and El Paso students through academic, leadership, " +
		"professional, and service opportunities in support of their growth " +
		"as STEM professionals."

	Vision = "To be the model organization that develops socially responsible " +
		"STEM professionals who make a lasting impact and serve as role " +
		"models within their communities."

	Tagline = "Empowering the next generation of engineers"
)

var Pillars = []Pillar{
	{
		ID:          "academic",
		Title:       "Academic Development",
		Description: "Supporting students with resources and mentorship to excel academically.",
	},
	{
		ID:          "career",
		Title:       "Career Development",
		Description: "Building community and inclusivity through events that strengthen chapter culture.",
	},
	{
		ID:          "community",
		Title:       "Community Outreach",
		Description: "Giving back to El Paso through volunteering and STEM education initiatives.",
	},
	{
		ID:          "leadership",
		Title:       "Leadership Development",
		Description: "Providing opportunities for members to grow into confident, capable leaders.",
	},
	{
		ID:          "professional",
		Title:       "Professional Development",
		Description: "Connecting students to industry professionals and career resources.",
	},
	{
		ID:          "technical",
		Title:       "Technical Development",
		Description: "Cultivating technical skills through workshops, coding projects, and innovation labs.",
	},
}

var SocialLinks = []SocialLink{
	{Name: "Facebook", URL: "https://facebook.com/utepmaesshpe"},
	{Name: "Instagram", URL: "https://www.instagram.com/utepshpemaes"},
	{Name: "LinkedIn", URL: "https://www.linkedin.com/company/utep-shpe-maes-engineering"},
}

package config

// Team identifies one of the covered Chicago franchises. Team slugs are a
// closed enumeration: feed sections, category slugs, chat rooms, and the
// GM/mock-draft surfaces are all keyed by them.
type Team struct {
	Slug   string `json:"slug"`
	Name   string `json:"name"`
	League string `json:"league"`
	Color  string `json:"color"`
}

// Teams lists every covered team in display order.
var Teams = []Team{
	{Slug: "bears", Name: "Chicago Bears", League: "NFL", Color: "#0B162A"},
	{Slug: "bulls", Name: "Chicago Bulls", League: "NBA", Color: "#CE1141"},
	{Slug: "cubs", Name: "Chicago Cubs", League: "MLB", Color: "#0E3386"},
	{Slug: "whitesox", Name: "Chicago White Sox", League: "MLB", Color: "#27251F"},
	{Slug: "blackhawks", Name: "Chicago Blackhawks", League: "NHL", Color: "#CF0A2C"},
}

// TeamBySlug returns the team for a slug, or false when the slug is not one
// of the covered teams.
func TeamBySlug(slug string) (Team, bool) {
	for _, t := range Teams {
		if t.Slug == slug {
			return t, true
		}
	}
	return Team{}, false
}

// IsTeamSlug reports whether slug belongs to the team enumeration.
func IsTeamSlug(slug string) bool {
	_, ok := TeamBySlug(slug)
	return ok
}

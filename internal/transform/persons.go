package transform

import (
	"strings"

	"kinonote/internal/format"
	"kinonote/internal/kinopoisk"
)

// RolePaths holds the configured folder prefix per person role, used by the
// path-bearing link renderings. Blank paths degrade to path-less links.
type RolePaths struct {
	Directors string
	Actors    string
	Writers   string
	Producers string
}

// RoleGroup carries the four parallel renderings of one role bucket. All
// slices are derived from the same ordered person list, so equal indexes
// refer to the same person.
type RoleGroup struct {
	Names     []string
	Links     []string
	PathLinks []string
	IDLinks   []string
}

// PersonBuckets groups a record's persons by their role key.
type PersonBuckets struct {
	Directors RoleGroup
	Actors    RoleGroup
	Writers   RoleGroup
	Producers RoleGroup
}

// GroupPersons buckets persons by role. Entries without a name or role are
// skipped; roles outside the closed director/actor/writer/producer set are
// dropped silently.
func GroupPersons(persons []kinopoisk.Person, paths RolePaths) PersonBuckets {
	byRole := map[string][]format.Entity{}
	for _, p := range persons {
		name := strings.TrimSpace(p.Name)
		role := strings.TrimSpace(p.EnProfession)
		if name == "" || role == "" {
			continue
		}
		switch role {
		case "director", "actor", "writer", "producer":
			byRole[role] = append(byRole[role], format.Entity{Name: name, ID: p.ID})
		}
	}
	return PersonBuckets{
		Directors: newRoleGroup(byRole["director"], paths.Directors),
		Actors:    newRoleGroup(byRole["actor"], paths.Actors),
		Writers:   newRoleGroup(byRole["writer"], paths.Writers),
		Producers: newRoleGroup(byRole["producer"], paths.Producers),
	}
}

// newRoleGroup renders one bucket once in all four representations. The
// entities are already filtered, so every rendering keeps every entry and
// index alignment holds across the four slices.
func newRoleGroup(entities []format.Entity, path string) RoleGroup {
	return RoleGroup{
		Names:     format.Values(entities, format.ModeShort, ""),
		Links:     format.Values(entities, format.ModeLink, ""),
		PathLinks: format.Values(entities, format.ModeLinkWithPath, path),
		IDLinks:   format.Values(entities, format.ModeLinkIDWithPath, path),
	}
}

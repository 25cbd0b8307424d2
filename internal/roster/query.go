package roster

// The query functions are linear scans over the snapshot. The roster is
// small and bounded, so no index is kept. Absence is reported in-band
// (zero value + false, or an empty slice), never as an error.

// TeamOf returns the first team in store order containing a member with the
// given person id.
func (s *Store) TeamOf(personID int32) (Team, bool) {
	for _, team := range s.teams {
		for _, member := range team.Members {
			if member.Person.ID == personID {
				return team, true
			}
		}
	}
	return Team{}, false
}

// PositionOf returns the position of the member matching the person id.
func (s *Store) PositionOf(personID int32) (Position, bool) {
	for _, team := range s.teams {
		for _, member := range team.Members {
			if member.Person.ID == personID {
				return member.Position, true
			}
		}
	}
	return Position{}, false
}

// MembersWithPosition returns every member whose position equals the filter
// by id and name, in team-then-member order. A fresh slice is produced on
// every call.
func (s *Store) MembersWithPosition(filter Position) []Member {
	var out []Member
	for _, team := range s.teams {
		for _, member := range team.Members {
			if member.Position == filter {
				out = append(out, member)
			}
		}
	}
	return out
}

// PersonsOfTeam returns the persons of the team with the given id in
// membership order. An unknown team id yields an empty result.
func (s *Store) PersonsOfTeam(teamID int32) []Person {
	var out []Person
	for _, team := range s.teams {
		if team.ID != teamID {
			continue
		}
		for _, member := range team.Members {
			out = append(out, member.Person)
		}
	}
	return out
}

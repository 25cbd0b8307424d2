package roster

// Store is the process-lifetime roster snapshot. It has no mutation
// operations: the service is a read model.
type Store struct {
	teams []Team
}

func NewStore(teams []Team) *Store {
	return &Store{teams: teams}
}

// AllTeams returns the teams in database order. Callers must not modify
// the returned slice contents.
func (s *Store) AllTeams() []Team {
	return s.teams
}

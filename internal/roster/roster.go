// Package roster holds the immutable in-memory view of the organizational
// roster: teams, their members, and the closed catalogue of positions. The
// store is built once at startup and only ever read afterwards, so it is
// safe for concurrent use without locking.
package roster

// Position classification codes as they appear in the roster database.
// The catalogue is closed: exactly five kinds exist.
const (
	CodeDeveloper               int32 = 1
	CodeTeamLeadZ               int32 = 2
	CodeTeamLeadI               int32 = 3
	CodeSiteReliabilityEngineer int32 = 4
	CodeQualityAssurance        int32 = 5
)

type Person struct {
	ID   int32
	Name string
}

// Position is compared by ID and Name together when used as a filter.
type Position struct {
	ID   int32
	Name string
}

// Member is one person's role within exactly one team.
type Member struct {
	Person   Person
	Position Position
}

// Team members keep the insertion order of the roster database file; the
// order carries no meaning but is preserved so repeated queries are stable.
type Team struct {
	ID      int32
	Name    string
	Members []Member
}

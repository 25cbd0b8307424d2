package roster

import (
	"fmt"
	"os"

	"google.golang.org/protobuf/encoding/protojson"

	teamv1 "github.com/pdz-labs/team-roster/proto/teamv1"
)

// LoadFile reads the roster database (a protojson TeamDatabase document)
// and builds the store. Any read or parse failure is returned wrapped; the
// caller treats it as fatal because the service cannot serve without a
// roster.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster database: %w", err)
	}
	return Parse(data)
}

// Parse decodes a protojson TeamDatabase document into a store, preserving
// team and member order from the document.
func Parse(data []byte) (*Store, error) {
	var db teamv1.TeamDatabase
	if err := protojson.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("parse roster database: %w", err)
	}

	teams := make([]Team, 0, len(db.GetTeam()))
	for _, t := range db.GetTeam() {
		team := Team{
			ID:      t.GetId(),
			Name:    t.GetName(),
			Members: make([]Member, 0, len(t.GetMember())),
		}
		for _, m := range t.GetMember() {
			team.Members = append(team.Members, Member{
				Person: Person{
					ID:   m.GetPerson().GetId(),
					Name: m.GetPerson().GetName(),
				},
				Position: Position{
					ID:   m.GetPosition().GetId(),
					Name: m.GetPosition().GetName(),
				},
			})
		}
		teams = append(teams, team)
	}
	return NewStore(teams), nil
}

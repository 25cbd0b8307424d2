package server

import (
	"github.com/pdz-labs/team-roster/internal/roster"
	teamv1 "github.com/pdz-labs/team-roster/proto/teamv1"
)

func personToProto(p roster.Person) *teamv1.Person {
	return &teamv1.Person{Id: p.ID, Name: p.Name}
}

func memberToProto(m roster.Member) *teamv1.Member {
	return &teamv1.Member{
		Person:   personToProto(m.Person),
		Position: &teamv1.Position{Id: m.Position.ID, Name: m.Position.Name},
	}
}

func teamToProto(t roster.Team) *teamv1.Team {
	out := &teamv1.Team{Id: t.ID, Name: t.Name}
	for _, m := range t.Members {
		out.Member = append(out.Member, memberToProto(m))
	}
	return out
}

func positionFromProto(p *teamv1.Position) roster.Position {
	return roster.Position{ID: p.GetId(), Name: p.GetName()}
}

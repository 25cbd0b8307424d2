package client

import (
	teamv1 "github.com/pdz-labs/team-roster/proto/teamv1"
)

// Demonstration fixtures matching the sample roster database shipped under
// data/team_db.json.

func rafinhaMember() *teamv1.Member {
	return &teamv1.Member{
		Person:   &teamv1.Person{Id: 1, Name: "Rafinha"},
		Position: &teamv1.Position{Id: 1, Name: "desenvolvedor"},
	}
}

func tataPerson() *teamv1.Person {
	return &teamv1.Person{Id: 11, Name: "Tatá"}
}

func developerPosition() *teamv1.Position {
	return &teamv1.Position{Id: 1, Name: "desenvolvedor"}
}

func personsToEstimate() []*teamv1.Person {
	return []*teamv1.Person{
		{Id: 11, Name: "Tatá"},
		{Id: 1, Name: "Rafa"},
		{Id: 10, Name: "Gersão"},
	}
}

func teamsToRoute() []*teamv1.Team {
	return []*teamv1.Team{
		{Id: 1},
		{Id: 2},
	}
}

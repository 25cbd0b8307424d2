package roster

import "testing"

func developer() Position {
	return Position{ID: CodeDeveloper, Name: "desenvolvedor"}
}

func testStore() *Store {
	return NewStore([]Team{
		{
			ID:   1,
			Name: "convivencia",
			Members: []Member{
				{Person: Person{ID: 1, Name: "Rafinha"}, Position: developer()},
				{Person: Person{ID: 2, Name: "Bia"}, Position: Position{ID: CodeQualityAssurance, Name: "qa"}},
			},
		},
		{
			ID:   2,
			Name: "cross",
			Members: []Member{
				{Person: Person{ID: 10, Name: "Gersão"}, Position: Position{ID: CodeSiteReliabilityEngineer, Name: "sre"}},
				{Person: Person{ID: 11, Name: "Tatá"}, Position: developer()},
			},
		},
	})
}

func TestTeamOfFindsContainingTeam(t *testing.T) {
	store := testStore()
	for _, tc := range []struct {
		personID int32
		teamID   int32
	}{
		{personID: 1, teamID: 1},
		{personID: 2, teamID: 1},
		{personID: 10, teamID: 2},
		{personID: 11, teamID: 2},
	} {
		team, ok := store.TeamOf(tc.personID)
		if !ok {
			t.Fatalf("expected person %d to be found", tc.personID)
		}
		if team.ID != tc.teamID {
			t.Fatalf("person %d: expected team %d, got %d", tc.personID, tc.teamID, team.ID)
		}
	}
}

func TestTeamOfUnknownPersonReturnsAbsent(t *testing.T) {
	team, ok := testStore().TeamOf(99)
	if ok {
		t.Fatalf("expected absent result, got team %q", team.Name)
	}
	if team.ID != 0 || team.Name != "" {
		t.Fatalf("absent team must be the zero value, got %+v", team)
	}
}

func TestPositionOfResolvesMemberPosition(t *testing.T) {
	store := testStore()
	pos, ok := store.PositionOf(10)
	if !ok {
		t.Fatalf("expected person 10 to be found")
	}
	if pos.ID != CodeSiteReliabilityEngineer {
		t.Fatalf("expected SRE code, got %d", pos.ID)
	}
	if _, ok := store.PositionOf(404); ok {
		t.Fatalf("unknown person must resolve to absent position")
	}
}

func TestMembersWithPositionMatchesByIDAndName(t *testing.T) {
	store := testStore()
	members := store.MembersWithPosition(developer())
	if len(members) != 2 {
		t.Fatalf("expected 2 developers, got %d", len(members))
	}
	if members[0].Person.ID != 1 || members[1].Person.ID != 11 {
		t.Fatalf("expected team-then-member order [1 11], got [%d %d]",
			members[0].Person.ID, members[1].Person.ID)
	}

	// Same id, different name: no match.
	if got := store.MembersWithPosition(Position{ID: CodeDeveloper, Name: "developer"}); len(got) != 0 {
		t.Fatalf("expected no members for mismatched name, got %d", len(got))
	}
}

func TestMembersWithPositionZeroMatchesIsEmptyNotError(t *testing.T) {
	members := testStore().MembersWithPosition(Position{ID: CodeTeamLeadZ, Name: "tl-z"})
	if len(members) != 0 {
		t.Fatalf("expected empty result, got %d members", len(members))
	}
}

func TestPersonsOfTeamKeepsMembershipOrder(t *testing.T) {
	persons := testStore().PersonsOfTeam(2)
	if len(persons) != 2 {
		t.Fatalf("expected 2 persons, got %d", len(persons))
	}
	if persons[0].ID != 10 || persons[1].ID != 11 {
		t.Fatalf("expected order [10 11], got [%d %d]", persons[0].ID, persons[1].ID)
	}
}

func TestPersonsOfUnknownTeamIsEmpty(t *testing.T) {
	if got := testStore().PersonsOfTeam(77); len(got) != 0 {
		t.Fatalf("unknown team must yield empty result, got %d persons", len(got))
	}
}

func TestQueriesAreIdempotent(t *testing.T) {
	store := testStore()
	first := store.MembersWithPosition(developer())
	second := store.MembersWithPosition(developer())
	if len(first) != len(second) {
		t.Fatalf("repeated query changed size: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("repeated query drifted at index %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestDuplicatePersonIDResolvesToFirstTeamInStoreOrder(t *testing.T) {
	store := NewStore([]Team{
		{ID: 1, Name: "first", Members: []Member{{Person: Person{ID: 5, Name: "Dup"}, Position: developer()}}},
		{ID: 2, Name: "second", Members: []Member{{Person: Person{ID: 5, Name: "Dup"}, Position: developer()}}},
	})
	team, ok := store.TeamOf(5)
	if !ok || team.ID != 1 {
		t.Fatalf("expected first team to win, got %+v ok=%v", team, ok)
	}
}

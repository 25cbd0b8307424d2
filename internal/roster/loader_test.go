package roster

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleDatabase = `{
  "team": [
    {
      "id": 1,
      "name": "convivencia",
      "member": [
        {"person": {"id": 1, "name": "Rafinha"}, "position": {"id": 1, "name": "desenvolvedor"}},
        {"person": {"id": 2, "name": "Bia"}, "position": {"id": 5, "name": "qa"}}
      ]
    },
    {
      "id": 2,
      "name": "cross",
      "member": [
        {"person": {"id": 10, "name": "Gersão"}, "position": {"id": 4, "name": "sre"}}
      ]
    }
  ]
}`

func TestParseBuildsStoreInDocumentOrder(t *testing.T) {
	store, err := Parse([]byte(sampleDatabase))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	teams := store.AllTeams()
	if len(teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(teams))
	}
	if teams[0].Name != "convivencia" || teams[1].Name != "cross" {
		t.Fatalf("team order not preserved: %q, %q", teams[0].Name, teams[1].Name)
	}
	if len(teams[0].Members) != 2 {
		t.Fatalf("expected 2 members in first team, got %d", len(teams[0].Members))
	}
	first := teams[0].Members[0]
	if first.Person.Name != "Rafinha" || first.Position.ID != CodeDeveloper {
		t.Fatalf("unexpected first member: %+v", first)
	}
}

func TestParseRejectsMalformedDocument(t *testing.T) {
	if _, err := Parse([]byte(`{"team": [`)); err == nil {
		t.Fatalf("expected error for truncated document")
	}
	if _, err := Parse([]byte(`{"teams": []}`)); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestLoadFileMissingPathFails(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("expected error for missing roster file")
	}
}

func TestLoadFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "team_db.json")
	if err := os.WriteFile(path, []byte(sampleDatabase), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	store, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if team, ok := store.TeamOf(10); !ok || team.ID != 2 {
		t.Fatalf("expected person 10 in team 2, got %+v ok=%v", team, ok)
	}
}

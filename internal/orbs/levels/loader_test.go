package levels_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/orbs/internal/orbs/core"
	"github.com/vovakirdan/orbs/internal/orbs/levels"
	"github.com/vovakirdan/orbs/internal/orbs/levels/formats"
)

func TestEmbeddedLoadAll(t *testing.T) {
	lvls, err := levels.Embedded().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	if len(lvls) != 8 {
		t.Errorf("expected 8 levels, got %d", len(lvls))
	}

	// Should be sorted by ID
	for i := 1; i < len(lvls); i++ {
		if lvls[i-1].ID >= lvls[i].ID {
			t.Errorf("levels not sorted: %s >= %s", lvls[i-1].ID, lvls[i].ID)
		}
	}
}

func TestEmbeddedLevelsSolvable(t *testing.T) {
	lvls, err := levels.Embedded().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	for _, lvl := range lvls {
		t.Run(lvl.ID, func(t *testing.T) {
			if lvl.ID == "room-4" && testing.Short() {
				t.Skip("skipping large level in short mode")
			}
			moves, err := core.FindSolution(lvl.ToBoard())
			if err != nil {
				t.Fatalf("FindSolution failed: %v", err)
			}
			if lvl.Par > 0 && len(moves) > lvl.Par {
				t.Errorf("solution of %d moves exceeds par %d", len(moves), lvl.Par)
			}
		})
	}
}

func TestLoadByID(t *testing.T) {
	lvl, err := levels.Embedded().LoadByID("room-1")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	if lvl.Name != "First Room" {
		t.Errorf("expected Name 'First Room', got %q", lvl.Name)
	}
	if lvl.Orbs() != 2 {
		t.Errorf("expected 2 orbs, got %d", lvl.Orbs())
	}

	// File order is kept
	if lvl.Entries[0] != (core.Entry{At: core.C(10, 0), Object: core.Block}) {
		t.Errorf("unexpected first entry %+v", lvl.Entries[0])
	}
	b := lvl.ToBoard()
	if b.CountOf(core.Goal) != 9 {
		t.Errorf("expected 9 goals, got %d", b.CountOf(core.Goal))
	}
}

func TestLoadByIDNotFound(t *testing.T) {
	_, err := levels.Embedded().LoadByID("missing")
	if !errors.Is(err, levels.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLayoutLevel(t *testing.T) {
	lvl, err := levels.Embedded().LoadByID("basics-2")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	b := lvl.ToBoard()
	want := core.MustParseLayout("o..B", "....", "..G.")
	if !b.Equal(want) {
		t.Errorf("unexpected board:\n%s", core.RenderASCII(b))
	}
}

func TestDirectoryLoaderSkipsInvalid(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("good.yaml", "id: good\nlayout: |\n  oG\n")
	write("mixed.yml", "id: mixed\nobjects:\n  - {x: 5, y: 5, type: block}\nlayout: |\n  o.G\n")
	write("dup.yaml", "id: dup\nobjects:\n  - {x: 0, y: 0, type: goal}\nlayout: |\n  o\n")
	write("bad-type.yaml", "id: bad\nobjects:\n  - {x: 0, y: 0, type: lava}\n")
	write("empty.yaml", "id: empty\n")
	write("notes.txt", "not a level")

	loader := levels.NewLoader(dir)
	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "good" || ids[1] != "mixed" {
		t.Errorf("expected [good mixed], got %v", ids)
	}

	lvl, err := loader.LoadByID("mixed")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	// Explicit objects come before the layout
	if lvl.Entries[0].At != core.C(5, 5) {
		t.Errorf("expected explicit object first, got %+v", lvl.Entries[0])
	}
	if lvl.Name != "mixed" {
		t.Errorf("expected name to default to id, got %q", lvl.Name)
	}

	resolved, err := loader.Resolve(filepath.Join(dir, "good.yaml"))
	if err != nil || resolved.ID != "good" {
		t.Errorf("Resolve by path: got %q, %v", resolved.ID, err)
	}
}

func TestMarshalYAMLRoundTrip(t *testing.T) {
	lvl, err := levels.Embedded().LoadByID("basics-3")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	data, err := formats.MarshalYAML(formats.Level{ID: lvl.ID, Name: lvl.Name, Entries: lvl.Entries, Par: lvl.Par})
	if err != nil {
		t.Fatalf("MarshalYAML failed: %v", err)
	}
	back, err := formats.ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if !back.ToBoard().Equal(lvl.ToBoard()) {
		t.Error("round trip changed the board")
	}
	if back.Par != lvl.Par {
		t.Errorf("expected par %d, got %d", lvl.Par, back.Par)
	}
}

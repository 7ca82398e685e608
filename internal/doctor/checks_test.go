package doctor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/deepharbor/substrip/internal/config"
	"github.com/deepharbor/substrip/internal/testutil"
)

const fixtureXML = `<Submarine name="Dugong"><Item ID="1" identifier="pump"><Holdable Attached="True"/></Item></Submarine>`

func TestCheckInputMissingDir(t *testing.T) {
	results, names := CheckInput(filepath.Join(t.TempDir(), "nope"))
	if len(results) != 1 || results[0].Status != StatusFail {
		t.Fatalf("results = %+v, want one failure", results)
	}
	if names != nil {
		t.Fatalf("names = %v, want none", names)
	}
}

func TestCheckInputNotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "input")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	results, _ := CheckInput(file)
	if len(results) != 1 || results[0].Status != StatusFail {
		t.Fatalf("results = %+v, want one failure", results)
	}
}

func TestCheckInputEmptyDirWarns(t *testing.T) {
	results, names := CheckInput(t.TempDir())
	if len(results) != 2 {
		t.Fatalf("results = %+v, want dir-ok plus no-files warning", results)
	}
	if results[0].Status != StatusOK || results[1].Status != StatusWarn {
		t.Fatalf("statuses = %d/%d, want ok/warn", results[0].Status, results[1].Status)
	}
	if len(names) != 0 {
		t.Fatalf("names = %v", names)
	}
}

func TestCheckInputListsSubFilesSorted(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteSub(t, dir, "b.sub", fixtureXML)
	testutil.WriteSub(t, dir, "a.SUB", fixtureXML)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	results, names := CheckInput(dir)
	for _, r := range results {
		if r.Status != StatusOK {
			t.Fatalf("unexpected non-OK result: %+v", r)
		}
	}
	if len(names) != 2 || names[0] != "a.SUB" || names[1] != "b.sub" {
		t.Fatalf("names = %v, want sorted .sub files", names)
	}
}

func TestCheckConfigStates(t *testing.T) {
	t.Run("absent config is fine", func(t *testing.T) {
		results := CheckConfig(t.TempDir())
		if len(results) != 1 || results[0].Status != StatusOK {
			t.Fatalf("results = %+v", results)
		}
	})
	t.Run("valid config", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "[strip]\nupgrades = true\n")
		results := CheckConfig(dir)
		if len(results) != 1 || results[0].Status != StatusOK {
			t.Fatalf("results = %+v", results)
		}
	})
	t.Run("broken config", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "[paths]\ninput = \"subs\"\noutput = \"subs\"\n")
		results := CheckConfig(dir)
		if len(results) != 1 || results[0].Status != StatusFail {
			t.Fatalf("results = %+v", results)
		}
		if results[0].Recommendation == "" {
			t.Fatal("failing config check must carry a recommendation")
		}
	})
}

func TestCheckFiles(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteSub(t, dir, "good.sub", fixtureXML)
	if err := os.WriteFile(filepath.Join(dir, "bad.sub"), []byte("\x00garbage"), 0o644); err != nil {
		t.Fatal(err)
	}

	results := CheckFiles(dir, []string{"bad.sub", "good.sub"})
	if len(results) != 2 {
		t.Fatalf("results = %+v", results)
	}
	if results[0].Status != StatusWarn {
		t.Fatalf("bad.sub status = %d, want warn", results[0].Status)
	}
	if results[1].Status != StatusOK {
		t.Fatalf("good.sub status = %d, want ok", results[1].Status)
	}
}

func writeConfig(t *testing.T, dir string, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

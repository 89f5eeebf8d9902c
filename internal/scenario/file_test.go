package scenario

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.toml")

	want := Default()
	want.Property.Price = 410000
	want.Mortgage.Type = MortgageVariable
	want.Mortgage.VarExpected = 3.1
	want.Profile.Age = 44

	if err := SaveFile(path, want); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got != want {
		t.Fatalf("round trip = %+v, want %+v", got, want)
	}
}

func TestLoadFile_MissingFileYieldsDefaults(t *testing.T) {
	got, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFile for a missing file: %v", err)
	}
	if got != Default() {
		t.Fatalf("missing file = %+v, want defaults", got)
	}
}

func TestLoadFile_BrokenFileYieldsDefaultsWithError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := LoadFile(path)
	if err == nil {
		t.Fatal("LoadFile for a broken file returned no error")
	}
	if got != Default() {
		t.Fatalf("broken file = %+v, want defaults", got)
	}
}

func TestLoadFile_PartialFileKeepsDefaultsForTheRest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.toml")
	partial := "[mortgage]\namount = 180000\n"
	if err := os.WriteFile(path, []byte(partial), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got.Mortgage.Amount != 180000 {
		t.Fatalf("Amount = %v, want 180000 from the file", got.Mortgage.Amount)
	}
	if got.Property.Price != Default().Property.Price {
		t.Fatalf("Price = %v, want the default", got.Property.Price)
	}
	if got.Mortgage.Term != Default().Mortgage.Term {
		t.Fatalf("Term = %v, want the default", got.Mortgage.Term)
	}
}

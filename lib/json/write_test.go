package json

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteToFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "list.json")
	values := []string{"alpha", "beta"}
	if err := WriteToFile(filename, 0644, "    ", values); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filename + "~"); !os.IsNotExist(err) {
		t.Errorf("temporary file left behind: %v", err)
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	expected := "[\n    \"alpha\",\n    \"beta\"\n]\n"
	if string(data) != expected {
		t.Errorf("expected: %q, got: %q", expected, string(data))
	}
	var readBack []string
	if err := ReadFromFile(filename, &readBack); err != nil {
		t.Fatal(err)
	}
	if len(readBack) != 2 || readBack[0] != "alpha" || readBack[1] != "beta" {
		t.Errorf("read back: %v", readBack)
	}
}

func TestReadFromMissingFile(t *testing.T) {
	var values []string
	err := ReadFromFile(filepath.Join(t.TempDir(), "missing"), &values)
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got: %v", err)
	}
}

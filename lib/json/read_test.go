package json

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const commentedList = `# list-tool state
[
    "alpha",
    // pinned at the front by hand
    "beta",
  ! legacy entry follows
    "gamma"
]
`

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(filename, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return filename
}

func TestReadCommentedList(t *testing.T) {
	var values []string
	err := ReadFromFile(writeFile(t, "list.json", commentedList), &values)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(values, ","); got != "alpha,beta,gamma" {
		t.Errorf("got: %s, expected: alpha,beta,gamma", got)
	}
}

func TestReadBadList(t *testing.T) {
	for _, contents := range []string{
		"[\"alpha\",]\n",
		"[\"alpha\", 2]\n",
		"[\"alpha\"] [\"beta\"]\n",
		"[\"alpha\"\n",
	} {
		var values []string
		if err := Read(bytes.NewBufferString(contents), &values); err == nil {
			t.Errorf("no failure reading: %q", contents)
		}
	}
}

func TestReadEmpty(t *testing.T) {
	for _, contents := range []string{"", "# nothing yet\n", "\n\n"} {
		var values []string
		err := ReadFromFile(writeFile(t, "empty.json", contents), &values)
		if err != io.EOF {
			t.Errorf("%q: expected io.EOF, got: %v", contents, err)
		}
		if values != nil {
			t.Errorf("%q: values: %v", contents, values)
		}
	}
}

func TestReadRoundTrip(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "state.json")
	original := []string{"v1.10", "# not a comment once quoted", "v1.9"}
	if err := WriteToFile(filename, 0600, "  ", original); err != nil {
		t.Fatal(err)
	}
	var values []string
	if err := ReadFromFile(filename, &values); err != nil {
		t.Fatal(err)
	}
	if len(values) != len(original) {
		t.Fatalf("got: %v, expected: %v", values, original)
	}
	for index, value := range original {
		if values[index] != value {
			t.Errorf("index: %d got: %q, expected: %q",
				index, values[index], value)
		}
	}
}

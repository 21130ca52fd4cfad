package loadflags

import (
	"flag"
	"strings"
	"testing"
)

func TestLoadFlagsFromReader(t *testing.T) {
	flagSet := flag.NewFlagSet("test", flag.ContinueOnError)
	order := flagSet.String("order", "lexical", "")
	reverse := flagSet.Bool("reverseOrder", false, "")
	input := "# defaults\n\norder = version\n; more\nreverseOrder=true\n"
	if err := loadFlagsFromReader(flagSet, strings.NewReader(input)); err != nil {
		t.Fatal(err)
	}
	if *order != "version" {
		t.Errorf("order: %q", *order)
	}
	if !*reverse {
		t.Error("reverseOrder not set")
	}
}

func TestLoadFlagsFromReaderErrors(t *testing.T) {
	for _, input := range []string{
		"order\n",
		"bad name=value\n",
		"unknown=1\n",
	} {
		flagSet := flag.NewFlagSet("test", flag.ContinueOnError)
		flagSet.String("order", "", "")
		if err := loadFlagsFromReader(flagSet,
			strings.NewReader(input)); err == nil {
			t.Errorf("no error for input: %q", input)
		}
	}
}

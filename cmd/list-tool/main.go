package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Cloud-Foundations/linkedlist/lib/flags/commands"
	"github.com/Cloud-Foundations/linkedlist/lib/flags/loadflags"
	"github.com/Cloud-Foundations/linkedlist/lib/log/cmdlogger"
)

var (
	order = flag.String("order", orderLexical,
		"Element ordering: lexical, numeric or version")
	reverseOrder = flag.Bool("reverseOrder", false,
		"If true, reverse the element ordering")
	showMetrics = flag.Bool("showMetrics", false,
		"If true, print metrics after running the command")
	stateFile = flag.String("stateFile",
		filepath.Join(os.Getenv("HOME"), ".list-tool", "list.json"),
		"Name of JSON file containing the list")
)

func printUsage() {
	w := flag.CommandLine.Output()
	fmt.Fprintln(w, "Usage: list-tool [flags...] command [args...]")
	fmt.Fprintln(w, "Common flags:")
	flag.PrintDefaults()
	fmt.Fprintln(w, "Commands:")
	commands.PrintCommands(w, subcommands)
}

var subcommands = []commands.Command{
	{"append", "value...", 1, -1, appendSubcommand},
	{"delete", "value", 1, 1, deleteSubcommand},
	{"delete-head", "", 0, 0, deleteHeadSubcommand},
	{"delete-tail", "", 0, 0, deleteTailSubcommand},
	{"dump", "file", 1, 1, dumpSubcommand},
	{"find", "value", 1, 1, findSubcommand},
	{"insert", "value index", 2, 2, insertSubcommand},
	{"load", "file", 1, 1, loadSubcommand},
	{"prepend", "value...", 1, -1, prependSubcommand},
	{"reverse", "", 0, 0, reverseSubcommand},
	{"show", "", 0, 0, showSubcommand},
}

func main() {
	if err := loadflags.LoadForCli("list-tool"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	flag.Usage = printUsage
	flag.Parse()
	logger := cmdlogger.New()
	if err := setupMetrics(); err != nil {
		logger.Fatalf("Unable to register metrics: %s\n", err)
	}
	status := commands.RunCommands(subcommands, printUsage, logger)
	if *showMetrics {
		if err := writeMetrics(os.Stdout); err != nil {
			logger.Fatalf("Unable to write metrics: %s\n", err)
		}
	}
	os.Exit(status)
}

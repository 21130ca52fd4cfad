package loadflags

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const systemDir = "/etc/config"

func loadFlags(dirname string) error {
	err := loadFlagsFromFile(filepath.Join(dirname, "flags.default"))
	if err != nil {
		return err
	}
	return loadFlagsFromFile(filepath.Join(dirname, "flags.extra"))
}

func loadFlagsFromFile(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()
	return loadFlagsFromReader(flag.CommandLine, file)
}

func loadFlagsFromReader(flagSet *flag.FlagSet, reader io.Reader) error {
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}
		name, value, found := strings.Cut(line, "=")
		if !found {
			return errors.New("bad line, cannot split name from value: " + line)
		}
		name = strings.TrimSpace(name)
		if strings.ContainsAny(name, " \t") {
			return errors.New("bad line, name has whitespace: " + line)
		}
		if err := flagSet.Set(name, strings.TrimSpace(value)); err != nil {
			return fmt.Errorf("error setting flag: %s: %s", name, err)
		}
	}
	return scanner.Err()
}

func loadForCli(progName string) error {
	if err := loadFlags(filepath.Join(systemDir, progName)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", err)
	}
	return loadFlags(
		filepath.Join(os.Getenv("HOME"), ".config", progName))
}

package loadflags

// LoadForCli loads flag defaults for a command-line program from the system
// configuration directory and then from $HOME/.config/progName. Each
// directory may contain flags.default and flags.extra files with one
// name=value pair per line. Problems with the system files are only reported
// as warnings.
func LoadForCli(progName string) error {
	return loadForCli(progName)
}

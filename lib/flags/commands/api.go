package commands

import (
	"io"

	"github.com/Cloud-Foundations/linkedlist/lib/log"
)

type CommandFunc func([]string, log.DebugLogger) error

// Command describes a sub-command. A negative MaxArgs means there is no upper
// limit on the number of arguments.
type Command struct {
	Command string
	Args    string
	MinArgs int
	MaxArgs int
	CmdFunc CommandFunc
}

// PrintCommands writes the list of commands and their arguments to writer.
func PrintCommands(writer io.Writer, commands []Command) {
	printCommands(writer, commands)
}

// RunCommands runs the command named by the first non-flag argument, passing
// it the remaining arguments. Errors are written to the flag output. The
// return value is suitable for os.Exit: 0 for success, 1 if the command
// failed and 2 for usage errors, in which case printUsage is called.
func RunCommands(commands []Command, printUsage func(),
	logger log.DebugLogger) int {
	return runCommands(flagArgs(), commands, printUsage, logger)
}

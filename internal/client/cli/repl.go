package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// Command is one REPL verb.
type Command struct {
	Name  string
	Usage string
	Help  string
	Run   func(ctx context.Context, args []string) error
}

// shell is what the REPL needs from the App: the commands valid right now
// and a way to report their errors.
type shell interface {
	commands(ctx context.Context) []Command
	report(err error)
}

// runREPL reads one line at a time, looks the first word up among the
// current commands and runs it. "help" lists the commands, "exit" or "quit"
// leaves. The loop also ends on EOF.
func runREPL(ctx context.Context, sh shell, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("hrverify %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) > 0 {
			if !dispatch(ctx, sh, parts[0], parts[1:]) {
				return
			}
		}

		if err != nil {
			return
		}
	}
}

func dispatch(ctx context.Context, sh shell, name string, args []string) bool {
	cmds := sh.commands(ctx)

	switch name {
	case "exit", "quit":
		printlnFn("Bye!")
		return false
	case "help":
		printlnFn(helpText(cmds))
		return true
	}

	for _, c := range cmds {
		if c.Name == name {
			if err := c.Run(ctx, args); err != nil {
				sh.report(err)
			}
			return true
		}
	}

	printlnFn("Unknown command:", name)
	return true
}

func helpText(cmds []Command) string {
	sorted := append([]Command(nil), cmds...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, c := range sorted {
		usage := c.Name
		if c.Usage != "" {
			usage += " " + c.Usage
		}
		fmt.Fprintf(&b, "  %-32s %s\n", usage, c.Help)
	}
	fmt.Fprintf(&b, "  %-32s %s", "exit | quit", "leave the program")
	return b.String()
}

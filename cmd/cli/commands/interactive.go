package commands

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// InteractiveCmd creates the interactive command. The roster accumulates in
// memory during the session, so a sequence of addEmployee/addPreference
// calls followed by generate behaves like the original single-process tool.
func InteractiveCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Start an interactive session (build the roster, then generate)",
		Long: `Start an interactive session where roster commands share one in-memory
engine. The session runs until you type 'exit' or 'quit'.

Type 'help' to see available commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("\nStarting interactive session.")
			fmt.Println("Type 'help' for available commands, 'exit' or 'quit' to leave")

			// Sibling commands become the session's verbs
			siblings := make(map[string]*cobra.Command)
			for _, subCmd := range cmd.Parent().Commands() {
				name := subCmd.Name()
				if name != "interactive" && name != "completion" && name != "help" {
					siblings[name] = subCmd
				}
			}

			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					break
				}

				parts, err := splitCommandLine(strings.TrimSpace(scanner.Text()))
				if err != nil {
					fmt.Printf("❌ %v\n\n", err)
					continue
				}
				if len(parts) == 0 {
					continue
				}

				name, cmdArgs := parts[0], parts[1:]

				switch name {
				case "exit", "quit":
					fmt.Println("Goodbye!")
					return nil
				case "help":
					printSessionHelp(siblings)
					continue
				}

				target, ok := siblings[name]
				if !ok {
					fmt.Printf("❌ Unknown command: %s (type 'help' for available commands)\n\n", name)
					continue
				}

				runSessionCommand(target, cmdArgs)
			}

			if err := scanner.Err(); err != nil {
				return fmt.Errorf("error reading input: %w", err)
			}
			return nil
		},
	}
}

// runSessionCommand executes a command's RunE directly so the root
// PersistentPreRunE does not reinitialize the app on every line.
func runSessionCommand(target *cobra.Command, args []string) {
	target.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
		flag.Value.Set(flag.DefValue)
	})

	if err := target.ParseFlags(args); err != nil {
		fmt.Printf("❌ %v\n\n", err)
		return
	}
	args = target.Flags().Args()

	if err := target.Args(target, args); err != nil {
		fmt.Printf("❌ %v\n\n", err)
		return
	}

	if err := target.RunE(target, args); err != nil {
		fmt.Printf("❌ %v\n\n", err)
	}
}

func printSessionHelp(siblings map[string]*cobra.Command) {
	names := make([]string, 0, len(siblings))
	for name := range siblings {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("\nAvailable commands:")
	for _, name := range names {
		fmt.Printf("  %-40s %s\n", siblings[name].Use, siblings[name].Short)
	}
	fmt.Println("\n  help                                     Show this help message")
	fmt.Println("  exit, quit                               Exit the interactive session")
}

// splitCommandLine splits a line into arguments, honoring single and double
// quotes so employee names with spaces work.
func splitCommandLine(line string) ([]string, error) {
	var args []string
	var current strings.Builder
	var inQuote rune

	for _, r := range line {
		switch {
		case inQuote != 0:
			if r == inQuote {
				inQuote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			inQuote = r
		case unicode.IsSpace(r):
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}

	if inQuote != 0 {
		return nil, fmt.Errorf("unclosed quote: %c", inQuote)
	}
	if current.Len() > 0 {
		args = append(args, current.String())
	}
	return args, nil
}

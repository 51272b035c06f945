package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// exampleRepoURL is substituted when the user types "example" at the
// interactive prompt.
const exampleRepoURL = "https://github.com/nitininhouse/js-assignment-2024"

// identityAddress is the agent address shown in the interactive banner.
// Injected by the composition root.
var identityAddress string

// SetIdentityAddress sets the agent address shown in the interactive
// banner.
func SetIdentityAddress(addr string) {
	identityAddress = addr
}

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Analyze URLs in an interactive loop",
	Long: `Starts an interactive prompt that accepts GitHub repository or pull
request URLs, one per line. Type "example" to analyze a sample
repository, or "quit" to leave.`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	if analyzerService == nil {
		return errors.New("analyzer not configured")
	}

	cmd.Println(headerStyle.Render("Sentinel Repository Analyzer"))
	if identityAddress != "" {
		cmd.Println(labelStyle.Render("Agent identity: ") + identityAddress)
	}
	cmd.Println()

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		cmd.Print("Enter GitHub URL (or 'quit' to exit): ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(input) {
		case "quit", "exit", "q":
			cmd.Println("Goodbye!")
			return nil
		case "":
			continue
		case "example":
			input = exampleRepoURL
			cmd.Printf("Using example repository: %s\n", input)
		}

		if err := analyzeURL(cmd, input); err != nil {
			cmd.Println(warnStyle.Render(fmt.Sprintf("Analysis failed: %v", err)))
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	cmd.Println("Goodbye!")
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openimpact/impacteval/internal/backend"
	"github.com/openimpact/impacteval/internal/knowledge"
	"github.com/openimpact/impacteval/internal/method"
	"github.com/openimpact/impacteval/internal/prompt"
)

// methodsCmd represents the methods command
var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List registered methods, backends, prompts and knowledge bases",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Methods:")
		for _, name := range method.Available() {
			reviewer, err := method.Create(name)
			if err != nil {
				return err
			}
			r := reviewer.ConfidenceRange()
			fmt.Printf("  %-22s %.2f-%.2f  %s\n", name, r.Low(), r.High(), reviewer.Description())
		}

		fmt.Println("\nBackends:")
		for _, name := range backend.Available() {
			fmt.Printf("  %s\n", name)
		}

		fmt.Println("\nPrompts:")
		for _, name := range prompt.List() {
			fmt.Printf("  %s\n", name)
		}

		fmt.Println("\nKnowledge bases:")
		for _, name := range knowledge.List() {
			fmt.Printf("  %s\n", name)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(methodsCmd)
}

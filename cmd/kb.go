package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Vovarama1992/promoly-ai/internal/knowledge"
	"github.com/Vovarama1992/promoly-ai/internal/marketing"
)

// groundingLimit mirrors the number of documents the knowledge pipeline
// passes to the model.
const groundingLimit = 3

func newKBCmd() *cobra.Command {
	kb := &cobra.Command{
		Use:   "kb",
		Short: "Inspect the embedded knowledge corpus",
	}

	kb.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List corpus documents and categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := knowledge.Load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, d := range store.Documents() {
				fmt.Fprintf(out, "%d. %s\n", i+1, d.Source)
			}
			for _, c := range store.Categories() {
				fmt.Fprintf(out, "[%s] %s\n", c.Name, strings.Join(c.Triggers, ", "))
			}
			return nil
		},
	})

	kb.AddCommand(&cobra.Command{
		Use:   "match <question>",
		Short: "Show which documents would ground an answer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := knowledge.Load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			docs := store.Match(strings.Join(args, " "), groundingLimit)
			if len(docs) == 0 {
				fmt.Fprintln(out, marketing.GeneralKnowledgeSource)
				return nil
			}
			for _, d := range docs {
				fmt.Fprintln(out, d.Source)
			}
			return nil
		},
	})

	return kb
}

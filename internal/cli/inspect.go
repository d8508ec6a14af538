package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nikhil-reddy05/auto-captions/internal/captions"
	"github.com/nikhil-reddy05/auto-captions/internal/pipeline"
)

func newInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <words.json>",
		Short: "Show the caption blocks a render would produce",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := resolveStyle(cmd)
			if err != nil {
				return err
			}
			if err := st.Validate(); err != nil {
				return err
			}

			words, err := pipeline.LoadWords(args[0])
			if err != nil {
				return err
			}
			blocks, err := captions.Group(words, st.WordsPerBlock)
			if err != nil && !errors.Is(err, captions.ErrEmptyInput) {
				return err
			}

			rows := make([][]string, 0, len(blocks))
			for i, b := range blocks {
				texts := make([]string, 0, len(b.Words))
				for _, w := range b.Words {
					texts = append(texts, w.Text)
				}
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					captions.FormatTime(b.Start),
					captions.FormatTime(b.End),
					strconv.Itoa(len(b.Words)),
					strings.Join(texts, " "),
				})
			}

			out := renderTable(
				[]string{"#", "Start", "End", "Words", "Text"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft},
			)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			fmt.Fprintf(cmd.OutOrStdout(), "%d blocks, %d words\n", len(blocks), len(words))
			return nil
		},
	}
	cmd.Flags().Int("words-per-cap", captions.DefaultStyle().WordsPerBlock, "Words per caption block")
	return cmd
}

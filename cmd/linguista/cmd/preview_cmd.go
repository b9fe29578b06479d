package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linguista/linguista/markdown"
)

func newPreviewCmd() *cobra.Command {
	var (
		plain   bool
		outline bool
	)
	previewCmd := &cobra.Command{
		Use:   "preview [FILE|-]",
		Short: "Render Markdown to HTML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch {
			case outline:
				o := markdown.Inspect(src)
				_, err = fmt.Fprintf(out,
					"words: %d\nstrong: %d\nemphasis: %d\nstrikethrough: %d\ncode: %d\nquotes: %d\nbullets: %d\nnumbered: %d\nheadings: %d\nlinks: %d\n",
					o.Words, o.Strong, o.Emphasis, o.Strikethrough, o.Code,
					o.Blockquotes, o.ListItems, o.OrderedItems, o.Headings, o.Links)
				return err
			case plain:
				return writeLine(out, markdown.Text(src))
			}
			html, err := markdown.Render(src)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, html)
			return err
		},
	}
	previewCmd.Flags().BoolVar(&plain, "text", false, "lay the document out as plain terminal text")
	previewCmd.Flags().BoolVar(&outline, "outline", false, "print counts of formatting constructs")
	previewCmd.MarkFlagsMutuallyExclusive("text", "outline")
	return previewCmd
}

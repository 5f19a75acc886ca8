package cmd

import (
	"github.com/spf13/cobra"

	"github.com/JoshuaShepherd/rethink-content/internal/content"
	"github.com/JoshuaShepherd/rethink-content/internal/ebook"
	"github.com/JoshuaShepherd/rethink-content/internal/logger"
)

var convertContentDir string

var convertCmd = &cobra.Command{
	Use:   "convert [source]",
	Short: "Split a source document into content units",
	Long: `Extract text from the source document, split it into principle
sections, and materialize each section as a content unit under the
content root. Existing units are never overwritten; reruns skip them.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		source := cfg.SourcePath
		if len(args) == 1 {
			source = args[0]
		}
		root := cfg.ContentRoot
		if convertContentDir != "" {
			root = convertContentDir
		}

		text, err := ebook.Extract(source)
		if err != nil {
			return err
		}

		sections := ebook.Split(text)
		logger.Debug("split %s into %d section(s)", source, len(sections))

		res, err := content.Materialize(root, sections)
		if err != nil {
			return err
		}

		FormatMaterializeResult(cmd.OutOrStdout(), len(sections), res)
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertContentDir, "content-dir", "", "Content root override")
	rootCmd.AddCommand(convertCmd)
}

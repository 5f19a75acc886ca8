package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JoshuaShepherd/rethink-content/internal/content"
)

var buildOutput string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Aggregate content units into the lookup index",
	Long: `Scan the content root, load every materialized unit, and write the
aggregated slug lookup table the site consumes. The output file is
disposable: regenerate it with this command, never hand-edit it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		out := cfg.IndexPath
		if buildOutput != "" {
			out = buildOutput
		}

		store := content.NewStore(cfg.ContentRoot)
		ix := content.BuildIndex(store)
		if err := content.WriteIndex(ix, out); err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Generated %s with %d principle(s)\n", out, len(ix))
		if len(ix) > 0 {
			fmt.Fprintln(w, "Principles with content:")
			for _, rec := range store.LoadAll() {
				fmt.Fprintf(w, "  - %s: %s\n", rec.Slug, rec.Title)
			}
		}
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "Index output path override")
	rootCmd.AddCommand(buildCmd)
}

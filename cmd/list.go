package cmd

import (
	"github.com/spf13/cobra"

	"github.com/JoshuaShepherd/rethink-content/internal/content"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List loaded content records",
	Long:  `Load every content unit under the content root and print the resolved records in display order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		records := content.NewStore(cfg.ContentRoot).LoadAll()
		FormatRecordList(cmd.OutOrStdout(), records)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

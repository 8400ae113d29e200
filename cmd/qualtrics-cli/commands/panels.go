package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(panelsCmd)
}

var panelsCmd = &cobra.Command{
	Use:   "panels",
	Short: "Lists the panels in the configured library.",
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := client.GetPanels(cmd.Context())
		if err != nil {
			return err
		}
		result, ok := payload.(map[string]any)
		if !ok {
			return dumpJson(payload)
		}
		panels, ok := result["Panels"].([]any)
		if !ok {
			return dumpJson(payload)
		}

		t := newTable()
		t.AppendHeader(table.Row{"ID", "Name"})
		for _, entry := range panels {
			panel, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			t.AppendRow(table.Row{panel["PanelID"], panel["Name"]})
		}
		t.Render()
		return nil
	},
}

package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(surveysCmd)
}

var surveysCmd = &cobra.Command{
	Use:   "surveys",
	Short: "Lists the surveys on the account.",
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := client.GetSurveys(cmd.Context())
		if err != nil {
			return err
		}
		surveys, ok := payload.([]any)
		if !ok {
			return dumpJson(payload)
		}

		t := newTable()
		t.AppendHeader(table.Row{"ID", "Name", "Status"})
		for _, entry := range surveys {
			survey, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			t.AppendRow(table.Row{
				survey["SurveyID"],
				survey["SurveyName"],
				survey["SurveyStatus"],
			})
		}
		t.Render()
		return nil
	},
}

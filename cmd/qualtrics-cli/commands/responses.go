package commands

import (
	"sort"

	"qualtrics-client/lib/platforms/qualtrics"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var responsesFormat string

func init() {
	responsesCmd.Flags().StringVar(
		&responsesFormat, "format", "CSV",
		"export format passed to the API (CSV, JSON or XML)",
	)
	rootCmd.AddCommand(responsesCmd)
}

var responsesCmd = &cobra.Command{
	Use:   "responses <survey-id>",
	Short: "Exports the recorded responses of one survey.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := client.GetLegacyResponseData(
			cmd.Context(), args[0],
			qualtrics.Params{"Format": responsesFormat},
		)
		if err != nil {
			return err
		}

		records, ok := payload.([]map[string]string)
		if !ok || len(records) == 0 {
			return dumpJson(payload)
		}

		var headers []string
		for key := range records[0] {
			headers = append(headers, key)
		}
		sort.Strings(headers)

		t := newTable()
		headerRow := make(table.Row, len(headers))
		for i, h := range headers {
			headerRow[i] = h
		}
		t.AppendHeader(headerRow)

		for _, record := range records {
			row := make(table.Row, len(headers))
			for i, h := range headers {
				row[i] = record[h]
			}
			t.AppendRow(row)
		}
		t.Render()
		return nil
	},
}

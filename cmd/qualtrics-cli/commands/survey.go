package commands

import "github.com/spf13/cobra"

func init() {
	rootCmd.AddCommand(surveyCmd)
}

var surveyCmd = &cobra.Command{
	Use:   "survey <survey-id>",
	Short: "Dumps the raw definition of one survey.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		definition, err := client.GetSurvey(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return dumpJson(definition)
	},
}

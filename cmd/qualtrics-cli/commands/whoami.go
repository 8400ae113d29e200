package commands

import "github.com/spf13/cobra"

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Prints the account info behind the configured credentials.",
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := client.GetUserInfo(cmd.Context())
		if err != nil {
			return err
		}
		return dumpJson(info)
	},
}

package commands

import (
	"context"
	"fmt"
	"os"

	"qualtrics-client/lib/configuration"
	"qualtrics-client/lib/platforms/qualtrics"
	"qualtrics-client/lib/restyutil"
	"qualtrics-client/lib/telemetry"

	"github.com/spf13/cobra"
)

// Config is read from a qualtrics.json5 found by walking up from the
// working directory; a qualtrics.local.json5 can override it.
type Config struct {
	BaseUrl   string `json:"base_url"`
	Username  string `json:"username"`
	Token     string `json:"token"`
	LibraryID string `json:"library_id"`
}

var verbose bool
var client *qualtrics.Client

var rootCmd = &cobra.Command{
	Use:   "qualtrics-cli",
	Short: "qualtrics-cli exercises the survey API with the credentials from qualtrics.json5.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(verbose)
		if verbose {
			qualtrics.SetRestyInstrumentOutput(
				restyutil.NewFilesystemOutput("resty_dumps"),
			)
		}

		config, err := configuration.ReadRecursively[Config]("qualtrics.json5")
		if err != nil {
			return fmt.Errorf("read qualtrics.json5: %w", err)
		}

		client, err = qualtrics.NewClient(cmd.Context(), qualtrics.ClientOptions{
			BaseUrl:   config.BaseUrl,
			Username:  config.Username,
			Token:     config.Token,
			LibraryID: config.LibraryID,
		})
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false,
		"debug logging plus request/response dumps under ./resty_dumps",
	)
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"context"

	"qualtrics-client/cmd/qualtrics-cli/commands"
	"qualtrics-client/lib/telemetry"
)

func main() {
	ctx := context.Background()
	telemetry.SetupFromEnv(ctx, "qualtrics-cli")
	commands.ExecuteContext(ctx)
}

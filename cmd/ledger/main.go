package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root, rt := newRootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		rt.reportError(err)
		stop()
		os.Exit(1)
	}
}

func newRootCommand() (*cobra.Command, *runtime) {
	rt := &runtime{}

	root := &cobra.Command{
		Use:           "ledger",
		Short:         "LifeLedger registry command line",
		Long:          "Register donors, patients and pledges on the registry contract and read them back.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.load(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String(flagDriver, "", "contract backend: ethereum or ledger")
	flags.String(flagContract, "", "registry contract address")
	flags.String(flagRPCUrl, "", "ethereum JSON-RPC endpoint")
	flags.String(flagPrivateKey, "", "hex private key used to sign registrations")
	flags.String(flagDBPath, "", "leveldb directory of the ledger backend")
	flags.String(flagRelayURL, "", "notification relay endpoint")
	flags.Int(flagTimeout, 0, "per-command timeout in seconds, 0 for none")
	flags.Bool(flagVerbose, false, "write service logs to stderr")

	root.AddCommand(
		newRegisterCommand(rt),
		newSearchCommand(rt),
		newListCommand(rt),
		newMedicalIDCommand(),
		newStatsCommand(rt),
	)
	return root, rt
}

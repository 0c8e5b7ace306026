package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tracks",
		Short:         "Conference track scheduler: pack talks into morning and evening sessions",
		Long:          "tracks reads a list of talks (\"<name> <M>min\" or \"<name> lightning\", one per line) and packs them into numbered tracks, each with a morning session ending in lunch and an evening session ending in a networking event.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app := wireApp()

	rootCmd.AddCommand(
		newVersionCmd(),
		newScheduleCmd(app),
		newConvertCmd(app),
	)

	return rootCmd
}

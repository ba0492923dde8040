package cmd

import "github.com/spf13/cobra"

const FlagEmail = "email"

func registerEmail(cmd *cobra.Command) {
	cmd.Flags().StringP(FlagEmail, "e", "", "the email address to validate")
}

func getEmail(cmd *cobra.Command) (email string, ok bool) {
	return getStringFlag(cmd, FlagEmail), cmd.Flags().Changed(FlagEmail)
}

func getStringFlag(cmd *cobra.Command, flagName string) (value string) {
	if f := cmd.Flag(flagName); f != nil {
		value = f.Value.String()
	}
	return
}

// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

// Package main is the entry point to the webhook dispatcher server and CLI.
package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "cloud",
	Short: "cloud runs and inspects the webhook dispatcher service.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		populateEnv(cmd)
	},
	// SilenceErrors allows us to explicitly log the error returned from
	// rootCmd below.
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(newCmdServer())
	rootCmd.AddCommand(newCmdDLQ())
	rootCmd.AddCommand(newCmdSchema())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

// populateEnv lets every flag be set via a HOOKLINE_<FLAG_NAME> environment
// variable (dashes in the flag name become underscores) when it wasn't
// explicitly passed on the command line, the same
// convention the teacher's cmd/cloud applies.
func populateEnv(cmd *cobra.Command) {
	v := viper.New()
	v.SetEnvPrefix("hookline")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && v.IsSet(f.Name) {
			_ = cmd.Flags().Set(f.Name, v.GetString(f.Name))
		}
	})
}

// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nine-rivers/hookline/internal/store"
)

func newCmdSchema() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Manage the database schema.",
	}

	cmd.AddCommand(newCmdSchemaMigrate())

	return cmd
}

func newCmdSchemaMigrate() *cobra.Command {
	var database string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the database to the latest schema version.",
		RunE: func(command *cobra.Command, args []string) error {
			command.SilenceUsage = true

			sqlStore, err := store.New(database, logger)
			if err != nil {
				return errors.Wrap(err, "failed to connect to database")
			}
			return sqlStore.Migrate()
		},
	}
	cmd.Flags().StringVar(&database, "database", "", "The database to migrate (e.g. postgres://... or sqlite://...).")
	_ = cmd.MarkFlagRequired("database")

	return cmd
}

// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package main

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nine-rivers/hookline/model"
)

type dlqFlags struct {
	server       string
	subscriberID string
	eventType    string
	status       string
	page         int
	perPage      int
	asTable      bool
}

func (flags *dlqFlags) addFlags(command *cobra.Command) {
	command.Flags().StringVar(&flags.server, "server", "http://localhost:8075", "The address of the running server's API.")
	command.Flags().StringVar(&flags.subscriberID, "subscriber", "", "Filter by subscriber ID.")
	command.Flags().StringVar(&flags.eventType, "event-type", "", "Filter by event type.")
	command.Flags().StringVar(&flags.status, "status", "", "Filter by DLQ entry status (dead_lettered, retrying).")
	command.Flags().IntVar(&flags.page, "page", 0, "The page of entries to fetch.")
	command.Flags().IntVar(&flags.perPage, "per-page", 100, "The number of entries to fetch per page.")
	command.Flags().BoolVar(&flags.asTable, "table", false, "Whether to display the returned entries as a table.")
}

func (flags *dlqFlags) queryString() string {
	v := url.Values{}
	if flags.subscriberID != "" {
		v.Set("subscriber_id", flags.subscriberID)
	}
	if flags.eventType != "" {
		v.Set("event_type", flags.eventType)
	}
	if flags.status != "" {
		v.Set("status", flags.status)
	}
	v.Set("page", strconv.Itoa(flags.page))
	v.Set("per_page", strconv.Itoa(flags.perPage))
	return v.Encode()
}

func newCmdDLQ() *cobra.Command {
	var flags dlqFlags

	cmd := &cobra.Command{
		Use:   "dlq",
		Short: "Inspect and replay dead-lettered webhook deliveries.",
	}
	flags.addFlags(cmd)

	cmd.AddCommand(newCmdDLQList(&flags))
	cmd.AddCommand(newCmdDLQRetry(&flags))
	cmd.AddCommand(newCmdDLQRetryAll(&flags))
	cmd.AddCommand(newCmdDLQClear(&flags))

	return cmd
}

func newCmdDLQList(flags *dlqFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List dead-lettered deliveries.",
		RunE: func(command *cobra.Command, args []string) error {
			command.SilenceUsage = true

			client := newAPIClient(flags.server)
			resp, err := client.doGet(client.buildURL("/api/dlq?%s", flags.queryString()))
			if err != nil {
				return errors.Wrap(err, "failed to list dlq entries")
			}

			var entries []*model.DLQEntry
			if err := decodeJSON(resp, &entries); err != nil {
				return errors.Wrap(err, "failed to decode dlq entries")
			}

			if !flags.asTable {
				return printJSON(entries)
			}
			printDLQTable(entries)
			return nil
		},
	}
}

func newCmdDLQRetry(flags *dlqFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "retry <entry-id>",
		Short: "Replay a single dead-lettered delivery.",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			command.SilenceUsage = true

			client := newAPIClient(flags.server)
			resp, err := client.doPost(client.buildURL("/api/dlq/%s/retry", args[0]))
			if err != nil {
				return errors.Wrap(err, "failed to retry dlq entry")
			}

			var result map[string]interface{}
			if err := decodeJSON(resp, &result); err != nil {
				return errors.Wrap(err, "failed to decode retry result")
			}
			return printJSON(result)
		},
	}
}

func newCmdDLQRetryAll(flags *dlqFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "retry-all",
		Short: "Replay every dead-lettered delivery matching the filter flags.",
		RunE: func(command *cobra.Command, args []string) error {
			command.SilenceUsage = true

			client := newAPIClient(flags.server)
			resp, err := client.doPost(client.buildURL("/api/dlq/retry-all?%s", flags.queryString()))
			if err != nil {
				return errors.Wrap(err, "failed to retry dlq entries")
			}

			var results []map[string]interface{}
			if err := decodeJSON(resp, &results); err != nil {
				return errors.Wrap(err, "failed to decode retry results")
			}
			return printJSON(results)
		},
	}
}

func newCmdDLQClear(flags *dlqFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Permanently remove every dead-lettered delivery matching the filter flags.",
		RunE: func(command *cobra.Command, args []string) error {
			command.SilenceUsage = true

			client := newAPIClient(flags.server)
			resp, err := client.doDelete(client.buildURL("/api/dlq?%s", flags.queryString()))
			if err != nil {
				return errors.Wrap(err, "failed to clear dlq entries")
			}

			var result map[string]int64
			if err := decodeJSON(resp, &result); err != nil {
				return errors.Wrap(err, "failed to decode clear result")
			}
			return printJSON(result)
		},
	}
}

func printDLQTable(entries []*model.DLQEntry) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"ID", "SUBSCRIBER", "EVENT TYPE", "STATUS", "ATTEMPTS", "DEAD-LETTERED AT"})

	for _, e := range entries {
		table.Append([]string{
			e.ID,
			e.SubscriberID,
			e.EventType,
			string(e.Status),
			fmt.Sprintf("%d", e.OriginalAttemptCount+e.RetryCount),
			fmt.Sprintf("%d", e.DeadLetteredAt),
		})
	}
	table.Render()
}

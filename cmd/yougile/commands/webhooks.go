package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/yougile/go-yougile/pkg/yougile"
)

// NewWebhooksCommand creates the webhooks command group.
func NewWebhooksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "webhooks",
		Aliases: []string{"webhook"},
		Short:   "Manage webhooks",
		Long:    "List, create, and update webhook subscriptions",
	}

	cmd.AddCommand(newWebhooksListCommand())
	cmd.AddCommand(newWebhooksCreateCommand())
	cmd.AddCommand(newWebhooksDisableCommand())

	return cmd
}

func newWebhooksListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List webhooks",
		Long:  "List the company's webhook subscriptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			webhooks, err := client.Webhooks().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list webhooks: %w", err)
			}

			return renderWithFormat(webhooks, func(webhooks []yougile.Webhook) error {
				if len(webhooks) == 0 {
					_, _ = os.Stdout.WriteString("No webhooks found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("URL", "Event", "ID", "Disabled")

				for _, webhook := range webhooks {
					_ = table.Append(webhook.URL, webhook.Event, webhook.ID,
						formatBool(webhook.Disabled))
				}

				_ = table.Render()

				return nil
			})
		},
	}
}

func newWebhooksCreateCommand() *cobra.Command {
	var (
		url   string
		event string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a webhook",
		Long:  "Subscribe a URL to API events matching a pattern, e.g. 'task-*'",
		RunE: func(cmd *cobra.Command, args []string) error {
			if url == "" {
				return ErrURLRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ref, err := client.Webhooks().Create(context.Background(), &yougile.WebhookRequest{
				URL:   url,
				Event: event,
			})
			if err != nil {
				return fmt.Errorf("failed to create webhook: %w", err)
			}

			fmt.Printf("Webhook created with ID %s\n", ref.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "URL to deliver events to (required)")
	cmd.Flags().StringVar(&event, "event", "*", "event pattern to subscribe to")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}

func newWebhooksDisableCommand() *cobra.Command {
	var enable bool

	cmd := &cobra.Command{
		Use:   "disable WEBHOOK_ID",
		Short: "Disable a webhook",
		Long:  "Disable a webhook subscription, or re-enable it with --enable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			disabled := !enable

			_, err = client.Webhooks().Update(context.Background(), args[0], &yougile.WebhookRequest{
				Disabled: &disabled,
			})
			if err != nil {
				return fmt.Errorf("failed to update webhook: %w", err)
			}

			if enable {
				fmt.Println("Webhook enabled")
			} else {
				fmt.Println("Webhook disabled")
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&enable, "enable", false, "re-enable the webhook")

	return cmd
}

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walletcli",
		Short: "Wallet ledger CLI tool",
		Long:  `A command line interface for interacting with the wallet ledger API.`,
	}

	cmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the wallet API")
	cmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	cmd.AddCommand(transferCmd())
	cmd.AddCommand(accountCmd())
	cmd.AddCommand(ledgerCmd())

	return cmd
}

func transferCmd() *cobra.Command {
	var transactionID, source, destination, amount string

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Move funds between accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if transactionID == "" {
				transactionID = uuid.New().String()
			}

			payload := map[string]string{
				"transaction_id":         transactionID,
				"source_account_id":      source,
				"destination_account_id": destination,
				"amount":                 amount,
			}

			return postJSON(cmd, "/api/v1/transfers", payload)
		},
	}

	cmd.Flags().StringVar(&transactionID, "transaction-id", "", "Transaction ID (generated when empty)")
	cmd.Flags().StringVar(&source, "from", "", "Source account ID")
	cmd.Flags().StringVar(&destination, "to", "", "Destination account ID")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount to transfer")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	cmd.MarkFlagRequired("amount")

	return cmd
}

func accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON(cmd, "/api/v1/accounts/"+args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "balance <id>",
		Short: "Show an account's balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON(cmd, "/api/v1/accounts/"+args[0]+"/balance")
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "entries <id>",
		Short: "List an account's ledger entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON(cmd, "/api/v1/accounts/"+args[0]+"/entries")
		},
	})

	return cmd
}

func ledgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "consistency",
		Short: "Check ledger consistency",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON(cmd, "/api/v1/ledger/consistency")
		},
	})

	return cmd
}

func getJSON(cmd *cobra.Command, path string) error {
	client := &http.Client{Timeout: timeout}

	resp, err := client.Get(baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(cmd, resp)
}

func postJSON(cmd *cobra.Command, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	client := &http.Client{Timeout: timeout}

	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(cmd, resp)
}

func printResponse(cmd *cobra.Command, resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		pretty.Write(body)
	}

	fmt.Fprintln(cmd.OutOrStdout(), pretty.String())

	if resp.StatusCode >= 400 {
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	return nil
}

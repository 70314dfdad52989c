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
	rootCmd := &cobra.Command{
		Use:   "ledgercore-cli",
		Short: "LedgerCore CLI tool",
		Long:  `A command line interface for interacting with the LedgerCore API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the LedgerCore API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(
		depositCmd(),
		withdrawCmd(),
		confirmCmd(),
		reverseCmd(),
		getTransactionCmd(),
		getBalanceCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func depositCmd() *cobra.Command {
	var description, businessRef string

	cmd := &cobra.Command{
		Use:   "deposit <account-id> <amount>",
		Short: "Post a deposit to an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON("/api/v1/ledger/deposit", map[string]any{
				"account_id":      args[0],
				"amount":          args[1],
				"description":     description,
				"business_ref_id": orGeneratedRef(businessRef),
			})
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Transaction description")
	cmd.Flags().StringVar(&businessRef, "ref", "", "Business reference ID (generated when empty)")

	return cmd
}

func withdrawCmd() *cobra.Command {
	var description, businessRef string

	cmd := &cobra.Command{
		Use:   "withdraw <account-id> <amount>",
		Short: "Post a withdrawal from an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON("/api/v1/ledger/withdraw", map[string]any{
				"account_id":      args[0],
				"amount":          args[1],
				"description":     description,
				"business_ref_id": orGeneratedRef(businessRef),
			})
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Transaction description")
	cmd.Flags().StringVar(&businessRef, "ref", "", "Business reference ID (generated when empty)")

	return cmd
}

func confirmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "confirm <transaction-id> <account-id> <amount>",
		Short: "Confirm a pending transaction",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON("/api/v1/transactions/"+args[0]+"/confirm", map[string]any{
				"account_id": args[1],
				"amount":     args[2],
			})
		},
	}
}

func reverseCmd() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "reverse <transaction-id>",
		Short: "Reverse a posted transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON("/api/v1/transactions/"+args[0]+"/reverse", map[string]any{
				"reason": reason,
			})
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "Reversal reason (required)")
	cmd.MarkFlagRequired("reason")

	return cmd
}

func getTransactionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <transaction-id>",
		Short: "Get a transaction by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/transactions/" + args[0])
		},
	}
}

func getBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance <account-id>",
		Short: "Get the balance of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/accounts/" + args[0] + "/balance")
		},
	}
}

// orGeneratedRef returns the supplied business reference or a generated one,
// so ad-hoc CLI postings stay idempotency-safe without the caller minting IDs.
func orGeneratedRef(ref string) string {
	if ref != "" {
		return ref
	}
	return "cli-" + uuid.NewString()
}

func postJSON(path string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func getJSON(path string) error {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, string(body))
	}

	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		fmt.Println(string(body))
		return nil
	}

	printJSON(data)
	return nil
}

func printJSON(data any) {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		fmt.Println(data)
		return
	}
	fmt.Println(string(out))
}

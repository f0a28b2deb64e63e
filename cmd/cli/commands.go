package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

var (
	announce bool
	resetAll bool
)

func init() {
	pairingsCmd.Flags().BoolVar(&announce, "announce", false, "Post the pairings to Slack and publish a round-paired event")
	resetCmd.Flags().BoolVar(&resetAll, "all", false, "Also remove every registered player")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(pairingsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/health", nil, nil)
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the registered players",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/players", nil, nil)
	},
}

var registerCmd = &cobra.Command{
	Use:   "register NAME",
	Short: "Register a player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/players", nil, map[string]string{"name": args[0]})
	},
}

var reportCmd = &cobra.Command{
	Use:   "report WINNER_ID LOSER_ID",
	Short: "Report the result of a match",
	Long: heredoc.Doc(`
		Report the result of a match between two registered players.
		Use the ids printed by "players"; draws are not recorded.
	`),
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		winner, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid winner id %q: %w", args[0], err)
		}
		loser, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid loser id %q: %w", args[1], err)
		}
		return performRequest(http.MethodPost, "/matches", nil, map[string]int64{"winner_id": winner, "loser_id": loser})
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show the current standings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/standings", nil, nil)
	},
}

var pairingsCmd = &cobra.Command{
	Use:   "pairings",
	Short: "Compute the pairings for the next round",
	RunE: func(cmd *cobra.Command, args []string) error {
		query := url.Values{}
		if announce {
			query.Set("announce", "true")
		}
		return performRequest(http.MethodGet, "/pairings", query, nil)
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove all match results, or the whole tournament with --all",
	RunE: func(cmd *cobra.Command, args []string) error {
		query := url.Values{}
		query.Set("scope", "matches")
		if resetAll {
			query.Set("scope", "all")
		}
		return performRequest(http.MethodPost, "/reset", query, nil)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/metrics", nil, nil)
	},
}

func performRequest(method, endpoint string, query url.Values, payload any) error {
	if query == nil {
		query = url.Values{}
	}
	if dryRun {
		query.Set("dry_run", "true")
	}
	target := host + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	fmt.Printf("Making %s request to %s\n", method, target)

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, target, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(respBody))

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("server returned %s", resp.Status)
	}
	return nil
}

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(datasourceCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(addPlayerCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(rejectedCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(timelineCmd)
	rootCmd.AddCommand(deleteMatchCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var datasourceCmd = &cobra.Command{
	Use:   "datasource",
	Short: "Show which data root is currently resolved",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/datasource")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players")
	},
}

var addPlayerCmd = &cobra.Command{
	Use:   "add-player <name>",
	Short: "Add a player to the roster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := json.Marshal(map[string]string{"name": args[0]})
		if err != nil {
			return err
		}
		return performPostRequest("/players", payload)
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches [player]",
	Short: "List the active matches, optionally only one player's",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return performGetRequest("/matches?player=" + url.QueryEscape(args[0]))
		}
		return performGetRequest("/matches")
	},
}

var rejectedCmd = &cobra.Command{
	Use:   "rejected",
	Short: "List match files rejected by validation",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/rejected")
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the rankings dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/stats")
	},
}

var timelineCmd = &cobra.Command{
	Use:   "timeline <player>",
	Short: "Show a player's cumulative rating timeline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/stats/timeline?player=" + url.QueryEscape(args[0]))
	},
}

var deleteMatchCmd = &cobra.Command{
	Use:   "delete-match <matchID>",
	Short: "Soft-delete a match (the source file is kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/matches/delete?matchID="+url.QueryEscape(args[0]), nil)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint string, payload []byte) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}

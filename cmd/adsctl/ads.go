package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diamondjirapat/mango-reach-management-mockup/client"
)

func newAdsCmd(c *cli) *cobra.Command {
	adsCmd := &cobra.Command{
		Use:   "ads",
		Short: "List or create ads",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all ads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cl, err := c.client()
			if err != nil {
				return err
			}
			ads, err := cl.GetAds(cmd.Context())
			if err != nil {
				return fmt.Errorf("list ads: %w", err)
			}
			return printJSON(c.out, ads)
		},
	}

	var req client.CreateAdRequest
	var sourceURL string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an ad; the service computes the score when --score is 0",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if sourceURL != "" {
				req.SourceURL = &sourceURL
			}
			cl, err := c.client()
			if err != nil {
				return err
			}
			ad, err := cl.CreateAd(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("create ad: %w", err)
			}
			return printJSON(c.out, ad)
		},
	}
	f := createCmd.Flags()
	f.StringVar(&req.ProjectName, "project-name", "", "Project name (required)")
	f.StringVar(&req.ProjectID, "project-id", "", "Project ID (required)")
	f.StringVar(&req.Source, "source", "", "Ad source, e.g. Google or Billboard (required)")
	f.StringVar(&sourceURL, "source-url", "", "Landing URL")
	f.Int64Var(&req.ClickCount, "clicks", 0, "Click count")
	f.Float64Var(&req.Cost, "cost", 0, "Cost")
	f.Float64Var(&req.Score, "score", 0, "Score (0 lets the service compute it)")
	_ = createCmd.MarkFlagRequired("project-name")
	_ = createCmd.MarkFlagRequired("project-id")
	_ = createCmd.MarkFlagRequired("source")

	adsCmd.AddCommand(listCmd, createCmd)
	return adsCmd
}

func newDashboardCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show aggregated dashboard statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cl, err := c.client()
			if err != nil {
				return err
			}
			stats, err := cl.GetDashboardStats(cmd.Context())
			if err != nil {
				return fmt.Errorf("dashboard: %w", err)
			}
			return printJSON(c.out, stats)
		},
	}
}

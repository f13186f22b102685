package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/diamondjirapat/mango-reach-management-mockup/client"
)

// cli holds flags shared by every subcommand.
type cli struct {
	api     string
	timeout time.Duration
	out     io.Writer
	errOut  io.Writer
}

func (c *cli) client() (*client.Client, error) {
	return client.New(c.api, client.WithHTTPTimeout(c.timeout))
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	c := &cli{out: out, errOut: errOut}
	root := &cobra.Command{
		Use:           "adsctl",
		Short:         "CLI client for the Mango Reach ads API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVarP(&c.api, "api", "a", client.DefaultBaseURL, "Ads API base URL")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 30*time.Second, "Per-request timeout")

	root.AddCommand(newAdsCmd(c), newDashboardCmd(c), newSeedCmd(c))
	return root
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

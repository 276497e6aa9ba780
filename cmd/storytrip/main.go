package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"storytrip-server/pkg/client"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type rootOptions struct {
	server  string
	timeout time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "storytrip",
		Short:         "Generate and browse StoryTrip travel stories",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultServer := os.Getenv("STORYTRIP_SERVER")
	if defaultServer == "" {
		defaultServer = client.DefaultBaseURL
	}
	root.PersistentFlags().StringVar(&opts.server, "server", defaultServer, "StoryTrip server base URL")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "request timeout (0 waits for the server)")

	root.AddCommand(
		newCreateCmd(opts),
		newListCmd(opts),
		newGetCmd(opts),
		newMigrateCmd(),
	)
	return root
}

func (o *rootOptions) apiClient() *client.Client {
	c := client.New(o.server, nil)
	if o.timeout > 0 {
		c = c.WithTimeout(o.timeout)
	}
	return c
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

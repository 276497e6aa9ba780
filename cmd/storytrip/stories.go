package main

import (
	"fmt"
	"strconv"

	"storytrip-server/internal/domain"

	"github.com/spf13/cobra"
)

func newCreateCmd(opts *rootOptions) *cobra.Command {
	var req domain.GenerationRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Generate a new travel story",
		Long: `Generate a new travel story and save it on the server.

Examples:
  storytrip create --destination Kyoto --dates "April 2026" --mood Nostalgic --platform TikTok`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			story, err := opts.apiClient().CreateStory(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), story)
		},
	}

	cmd.Flags().StringVar(&req.Destination, "destination", "", "trip destination")
	cmd.Flags().StringVar(&req.Dates, "dates", "", "travel dates")
	cmd.Flags().StringVar(&req.Mood, "mood", "Adventurous", "story mood")
	cmd.Flags().StringVar(&req.Platform, "platform", "Instagram", "target social platform")
	_ = cmd.MarkFlagRequired("destination")
	return cmd
}

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved stories, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stories, err := opts.apiClient().ListStories(cmd.Context())
			if err != nil {
				return err
			}
			if stories == nil {
				stories = []domain.Story{}
			}
			return printJSON(cmd.OutOrStdout(), stories)
		},
	}
}

func newGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one saved story",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid story id %q", args[0])
			}
			story, err := opts.apiClient().GetStory(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), story)
		},
	}
}

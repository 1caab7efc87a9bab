package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jax2600/warpstery/internal/api/request"
	"github.com/jax2600/warpstery/internal/api/response"
	"github.com/jax2600/warpstery/internal/model"
)

func newNotesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Detective notes for the current session",
	}

	cmd.AddCommand(newNotesShowCmd())
	cmd.AddCommand(newNotesCycleCmd())
	cmd.AddCommand(newNotesTextCmd())

	return cmd
}

func newNotesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show the detective sheet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.ResolveSession(args)
			if err != nil {
				return err
			}

			var result response.Notes
			if err := client.Get(cmd.Context(), sessionPath(id)+"/notes", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newNotesCycleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cycle <category> <index>",
		Short: "Cycle the mark on a card (categories: suspect, weapon, room)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.ResolveSession(nil)
			if err != nil {
				return err
			}

			category, err := model.ParseCategory(strings.ToLower(args[0]))
			if err != nil {
				return err
			}
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid index: %w", err)
			}

			var result response.Notes
			path := fmt.Sprintf("%s/notes/%s/%d/cycle", sessionPath(id), category, index)
			if err := client.Post(cmd.Context(), path, nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newNotesTextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "text <text>",
		Short: "Replace the free-form notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.ResolveSession(nil)
			if err != nil {
				return err
			}

			var result response.Notes
			req := request.NotesTextRequest{Text: args[0]}
			if err := client.Put(cmd.Context(), sessionPath(id)+"/notes/text", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Notes saved")
			return nil
		},
	}
}

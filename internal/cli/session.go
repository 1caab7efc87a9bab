package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jax2600/warpstery/internal/api/request"
	"github.com/jax2600/warpstery/internal/api/response"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Local session commands",
	}

	cmd.AddCommand(newSessionNewCmd())
	cmd.AddCommand(newSessionGetCmd())
	cmd.AddCommand(newSessionPressCmd())
	cmd.AddCommand(newSessionListCmd())
	cmd.AddCommand(newSessionDeleteCmd())

	return cmd
}

func sessionPath(id string) string {
	return "/api/v1/sessions/" + id
}

func newSessionNewCmd() *cobra.Command {
	var player int64

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a session and make it current",
		RunE: func(cmd *cobra.Command, args []string) error {
			if player <= 0 {
				return fmt.Errorf("--player must be a positive id")
			}

			req := request.CreateSessionRequest{PlayerID: player}
			var result response.Session

			if err := client.Post(cmd.Context(), "/api/v1/sessions", req, &result); err != nil {
				return err
			}

			if err := cfg.SaveSession(result.ID); err != nil {
				return fmt.Errorf("failed to save session: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Int64Var(&player, "player", 0, "Player id (required)")
	_ = cmd.MarkFlagRequired("player")

	return cmd
}

func newSessionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show a session (defaults to the current one)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.ResolveSession(args)
			if err != nil {
				return err
			}

			var result response.Session
			if err := client.Get(cmd.Context(), sessionPath(id), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionPressCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:     "press <button>...",
		Aliases: []string{"act"},
		Short:   "Press one or more buttons (1-based) in the current session",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.ResolveSession(nil)
			if err != nil {
				return err
			}

			buttons := make([]int, len(args))
			for i, a := range args {
				b, err := strconv.Atoi(a)
				if err != nil || b < 1 {
					return fmt.Errorf("invalid button %q: must be 1 or more", a)
				}
				buttons[i] = b
			}

			out := NewOutput(cfg.Output)
			for i, b := range buttons {
				req := request.ActionRequest{ButtonIndex: b, InputText: input}
				var result response.ActionResponse

				if err := client.Post(cmd.Context(), sessionPath(id)+"/actions", req, &result); err != nil {
					return err
				}

				// Intermediate presses only matter when asked for
				if i == len(buttons)-1 || cfg.Verbose {
					out.Print(result)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Input text sent with the press")

	return cmd
}

func newSessionListCmd() *cobra.Command {
	var player int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a player's sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.SessionList

			if err := client.Get(cmd.Context(), fmt.Sprintf("/api/v1/sessions?owner=%d", player), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Int64Var(&player, "player", 0, "Player id (required)")
	_ = cmd.MarkFlagRequired("player")

	return cmd
}

func newSessionDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.ResolveSession(args)
			if err != nil {
				return err
			}

			if err := client.Delete(cmd.Context(), sessionPath(id)); err != nil {
				return err
			}
			if err := cfg.ClearSession(id); err != nil {
				return fmt.Errorf("failed to clear session: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Session deleted")
			return nil
		},
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jax2600/warpstery/internal/api/request"
	"github.com/jax2600/warpstery/internal/api/response"
)

func newFrameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frame",
		Short: "Frame endpoint commands",
	}

	cmd.AddCommand(newFrameTitleCmd())
	cmd.AddCommand(newFramePressCmd())

	return cmd
}

func newFrameTitleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "title",
		Short: "Fetch the title frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.FrameResponse

			if err := client.Get(cmd.Context(), "/api/frames", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newFramePressCmd() *cobra.Command {
	var (
		fid    int64
		button int
		state  string
		input  string
	)

	cmd := &cobra.Command{
		Use:   "press",
		Short: "Post a button press to the frame endpoint",
		Long: `Post a button press as a frame client would.

Pass the fc:frame:state of the previous frame with --state to continue a game.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if button < 1 {
				return fmt.Errorf("--button must be 1 or more")
			}

			req := request.FrameRequest{
				UntrustedData: request.UntrustedData{
					FID:         fid,
					ButtonIndex: button,
					InputText:   input,
					State:       state,
				},
			}
			var result response.FrameResponse

			if err := client.Post(cmd.Context(), "/api/frames", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Int64Var(&fid, "fid", 0, "Player fid (required)")
	cmd.Flags().IntVar(&button, "button", 1, "Button index, 1-based")
	cmd.Flags().StringVar(&state, "state", "", "Frame state token from the previous frame")
	cmd.Flags().StringVar(&input, "input", "", "Input text")
	_ = cmd.MarkFlagRequired("fid")

	return cmd
}

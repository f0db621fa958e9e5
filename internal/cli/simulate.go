package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/blockdrop/internal/model"
	"github.com/mcoot/blockdrop/internal/services/engine"
	"github.com/mcoot/blockdrop/internal/services/script"
)

func newSimulateCmd() *cobra.Command {
	var (
		scriptSrc  string
		scriptFile string
		board      string
	)
	frame := defaultFrame

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Replay a command script and print the final state",
		Long: `Replay a command script against a fresh game and print the result.

A script is a list of commands and waits separated by spaces or commas:

  blockdrop simulate --seed 7 --script "left left rotate 2s down*3 500ms"

Commands are move_left, move_right, soft_drop, rotate_clockwise and restart,
or the short forms left, right, down, rotate. Waits are Go durations and are
played as frames of --frame each. "word*N" repeats a token.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readScript(cmd.InOrStdin(), scriptSrc, scriptFile)
			if err != nil {
				return err
			}
			steps, err := script.Parse(src)
			if err != nil {
				return err
			}

			app, out, err := newApp(cmd)
			if err != nil {
				return err
			}

			if cfg.Verbose {
				listen(app, engine.ListenerFunc(out.PrintEvent))
			}

			if board != "" {
				engineCfg := app.Engine.Config()
				b, err := model.ParseBoard(engineCfg.Width, engineCfg.Height, strings.Split(board, "/")...)
				if err != nil {
					return fmt.Errorf("%w: board: %v", model.ErrInvalidConfig, err)
				}
				if err := app.Engine.SetBoard(b); err != nil {
					return err
				}
			}

			result, err := script.Play(app.Engine, steps, frame)
			if err != nil {
				return err
			}

			out.Print(SimulateResult{
				Commands:  result.Commands,
				Applied:   result.Applied,
				Frames:    result.Frames,
				ElapsedMS: result.Elapsed.Milliseconds(),
				Snapshot:  NewSnapshot(app.Engine.Snapshot()),
			})
			return nil
		},
	}

	cmd.Flags().StringVarP(&scriptSrc, "script", "s", "", "Script to play")
	cmd.Flags().StringVarP(&scriptFile, "script-file", "f", "", "Read the script from a file, or - for stdin")
	cmd.Flags().DurationVar(&frame, "frame", frame, "Simulated frame length")
	cmd.Flags().StringVar(&board, "board", "", "Starting blocks as bottom rows separated by /, e.g. \"IIII..IIII\"")
	cmd.MarkFlagsMutuallyExclusive("script", "script-file")

	return cmd
}

func readScript(stdin io.Reader, src, file string) (string, error) {
	switch file {
	case "":
		return src, nil
	case "-":
		data, err := io.ReadAll(stdin)
		return string(data), err
	default:
		data, err := os.ReadFile(file)
		return string(data), err
	}
}

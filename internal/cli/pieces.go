package cli

import (
	"github.com/spf13/cobra"
)

func newPiecesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pieces",
		Short: "List the piece kinds with their shapes and colours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, out, err := newApp(cmd)
			if err != nil {
				return err
			}

			infos, err := pieceInfos(app.PieceService.CreatePiece)
			if err != nil {
				return err
			}

			out.Print(infos)
			return nil
		},
	}
}

package bot

import "github.com/mcoot/blockdrop/internal/model"

// Strategy decides the next command for an automated player
type Strategy interface {
	// ChooseCommand picks a command given the current game snapshot
	ChooseCommand(snapshot model.Snapshot) model.Command
}

package command

import (
	commandHandler "talentboard/internal/command/handler"

	"github.com/google/wire"
	"github.com/spf13/cobra"
)

var ProviderSet = wire.NewSet(NewCommand, commandHandler.NewSnapshotHandler)

type Command struct {
	snapshotCommandHandler *commandHandler.SnapshotHandler
}

// NewCommand .
func NewCommand(
	snapshotCommandHandler *commandHandler.SnapshotHandler,
) *Command {
	return &Command{
		snapshotCommandHandler: snapshotCommandHandler,
	}
}

func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "snapshot",
			Short: "抓一次員工名單並印出分析摘要",
			Run: func(cmd *cobra.Command, args []string) {
				command, cleanup, err := newCmd()
				if err != nil {
					panic(err)
				}
				defer cleanup()

				command.snapshotCommandHandler.Run(cmd, args)
			},
		},
	)
}

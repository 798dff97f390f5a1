package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeonwalk/internal/game"
	"github.com/samdwyer/dungeonwalk/internal/logger"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the levels of the world",
	Long:  `Build every level of the world and print its layout, as the game would draw it.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)

	_, closeLog, err := logger.Setup(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg, err := loadGameConfig(cfg)
	if err != nil {
		return err
	}

	g, err := game.New(cmd.Context(), gameCfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, m := range g.Maps() {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "--- %s ---\n", m.Name())
		m.Display(out)
	}
	return nil
}

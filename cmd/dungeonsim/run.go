package main

import (
	"fmt"
	"io"

	"github.com/automoto/dungeonrush/components"
	"github.com/automoto/dungeonrush/config"
	"github.com/automoto/dungeonrush/core"
	"github.com/automoto/dungeonrush/engine"
	"github.com/spf13/cobra"
)

var (
	runSeed    int64
	runLevel   int
	runSeconds float64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate a bot playing through the dungeon",
	RunE:  runSimulation,
}

func init() {
	runCmd.Flags().Int64Var(&runSeed, "seed", 1, "run seed")
	runCmd.Flags().IntVar(&runLevel, "level", 1, "starting level")
	runCmd.Flags().Float64Var(&runSeconds, "seconds", 120, "simulated seconds")
}

func runSimulation(cmd *cobra.Command, args []string) error {
	if runSeconds <= 0 {
		return fmt.Errorf("seconds must be positive, got %v", runSeconds)
	}
	logger := newLogger()
	g := core.New(core.Options{Seed: runSeed, Level: runLevel, Logger: logger})
	bot := &core.Bot{}

	frames := config.Frames(runSeconds)
	for range frames {
		if g.GameOver() {
			break
		}
		g.SetIntent(bot.Intent(g))
		g.Tick()
	}

	summary := []any{"run", g.RunID, "seed", runSeed, "ticks", g.Ticks(), "level", g.Level(), "game_over", g.GameOver()}
	if player, ok := g.Player(); ok {
		summary = append(summary, "hp", components.Health.Get(player).Current)
	}
	logger.Info("simulation finished", summary...)
	writeRunReport(cmd.OutOrStdout(), g)
	return nil
}

// writeRunReport prints what the headless services recorded: the track
// left playing, how often each sound fired and the live animation timelines.
func writeRunReport(w io.Writer, g *core.Game) {
	fmt.Fprintf(w, "level %d ticks %d game_over %t\n", g.Level(), g.Ticks(), g.GameOver())

	if audio, ok := g.Services.Audio.(*engine.QueueAudio); ok {
		fmt.Fprintf(w, "music %s\n", audio.Music())
		fmt.Fprint(w, "sounds:")
		for id := config.SoundEnemyAttack; id <= config.SoundBossPhase; id++ {
			if n := audio.Played(id); n > 0 {
				fmt.Fprintf(w, " %s=%d", id, n)
			}
		}
		fmt.Fprintln(w)
	}

	if clips, ok := g.Services.Animation.(*engine.ClipPlayer); ok {
		fmt.Fprintf(w, "animations %d", clips.Len())
		if player, ok := g.Player(); ok {
			if clip, ok := clips.Current(player.Entity()); ok {
				fmt.Fprintf(w, " player_clip %s", clip)
			}
		}
		fmt.Fprintln(w)
	}
}

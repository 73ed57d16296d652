package main

import (
	"github.com/fatih/color"
	"github.com/minaorangina/doubledeck"
	"github.com/minaorangina/doubledeck/deck"
	"github.com/minaorangina/doubledeck/protocol"
	"github.com/spf13/cobra"
)

var (
	seed    int64
	noColor bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "doubledeck",
	Short: "Double-deck patience in the terminal",
	Long: `Doubledeck deals two shuffled decks into thirteen piles, one per rank,
and lets you build every suit up from Ace and down from King.`,
	SilenceUsage: true,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	RunE: func(cmd *cobra.Command, args []string) error {
		game, err := doubledeck.NewGameEngine(doubledeck.GameEngineOpts{RNG: newRNG(cmd)})
		if err != nil {
			return err
		}
		defer game.Stop()

		player := doubledeck.NewCLIPlayer(doubledeck.NewID(), cmd.OutOrStdout(), colourful())
		if err := game.AddPlayer(player); err != nil {
			return err
		}

		return player.Play(game, cmd.InOrStdin())
	},
}

var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Print a dealt table and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := doubledeck.NewGame(newRNG(cmd))

		player := doubledeck.NewCLIPlayer("deal", cmd.OutOrStdout(), colourful())
		return player.Send(doubledeck.BuildStateMessage("", protocol.State, s))
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "seed the shuffle so a deal can be replayed")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(dealCmd)
}

func newRNG(cmd *cobra.Command) deck.RNG {
	if cmd.Flags().Changed("seed") {
		return deck.NewRNG(seed)
	}
	return deck.NewRandomRNG()
}

func colourful() bool {
	return !noColor && !color.NoColor
}

package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/ardanlabs/gyatcoin/business/simulation"
	"github.com/ardanlabs/gyatcoin/foundation/blockchain/database"
	"github.com/ardanlabs/gyatcoin/foundation/logger"
	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	minerName     string
	traders       []string
	coinsPerBlock uint64
	difficulty    uint
	maxAttempts   uint64
	pacing        time.Duration
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Mine a block for every trader in the roster",
	RunE:  simulateRun,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().StringVarP(&minerName, "miner", "m", "", "Name of the miner, asked for when empty.")
	simulateCmd.Flags().StringSliceVarP(&traders, "traders", "t", simulation.DefaultTraders, "Roster of traders.")
	simulateCmd.Flags().Uint64VarP(&coinsPerBlock, "coins", "c", simulation.DefaultCoinsPerBlock, "Coins traded per block.")
	simulateCmd.Flags().UintVarP(&difficulty, "difficulty", "D", database.DefaultDifficulty, "Number of leading zeros required.")
	simulateCmd.Flags().Uint64VarP(&maxAttempts, "attempts", "a", database.DefaultMaxAttempts, "Hashes to try before giving up on a block.")
	simulateCmd.Flags().DurationVarP(&pacing, "pacing", "p", simulation.DefaultPacing, "Pause after a block gives up.")
}

func simulateRun(cmd *cobra.Command, args []string) error {
	pterm.DefaultHeader.WithFullWidth().Println("Welcome to $GYATCOIN Mining Simulator!")

	name := strings.TrimSpace(minerName)
	if name == "" {
		var err error
		name, err = pterm.DefaultInteractiveTextInput.Show("Enter your miner name")
		if err != nil {
			return fmt.Errorf("reading miner name: %w", err)
		}
		name = strings.TrimSpace(name)
	}

	ev, err := eventHandler()
	if err != nil {
		return err
	}

	chain, err := database.New(database.Config{
		Difficulty:  difficulty,
		MaxAttempts: maxAttempts,
		EvHandler:   ev,
	})
	if err != nil {
		return fmt.Errorf("constructing chain: %w", err)
	}

	pterm.Info.Println("Let's start mining and simulating transactions!")

	cfg := simulation.Config{
		MinerName:     name,
		Traders:       traders,
		CoinsPerBlock: coinsPerBlock,
		Pacing:        pacing,
	}

	if _, err := simulation.Run(cmd.Context(), chain, cfg, &terminal{}); err != nil {
		return err
	}

	return nil
}

// eventHandler returns the handler for blockchain events. Events are only
// logged when verbose output is asked for.
func eventHandler() (database.EventHandler, error) {
	if !verbose {
		return nil, nil
	}

	log, err := logger.New("GYAT", "stderr")
	if err != nil {
		return nil, fmt.Errorf("constructing logger: %w", err)
	}

	traceID := uuid.NewString()
	ev := func(v string, args ...any) {
		s := fmt.Sprintf(v, args...)
		log.Infow(s, "traceid", traceID)
	}

	return ev, nil
}

// Package simulation runs the mining simulator: a miner passes coins around
// a roster of traders and every transfer is recorded in a newly mined block.
package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/ardanlabs/gyatcoin/business/sys/validate"
	"github.com/ardanlabs/gyatcoin/foundation/blockchain/database"
	"github.com/google/uuid"
)

// Set of simulation defaults.
const (
	DefaultCoinsPerBlock uint64 = 137
	DefaultPacing               = 3 * time.Second
)

// DefaultTraders is the roster of simulated traders.
var DefaultTraders = []string{"Bob", "Linda", "John", "Omar", "Eve", "Svetlana", "Grace", "Jiro"}

// =============================================================================

// Config represents the settings for a simulation run.
type Config struct {
	MinerName     string        `json:"miner_name" validate:"required"`
	Traders       []string      `json:"traders" validate:"required,min=1,dive,required"`
	CoinsPerBlock uint64        `json:"coins_per_block" validate:"required"`
	Pacing        time.Duration `json:"pacing" validate:"gte=0"`
}

// Validate checks the config is usable for a run.
func (cfg Config) Validate() error {
	if err := validate.Check(cfg); err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	return nil
}

// Transaction represents a transfer recorded as a block payload.
type Transaction struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
}

// String implements the fmt.Stringer interface and is the block payload.
func (tx Transaction) String() string {
	return fmt.Sprintf("%s sent to %s", tx.Sender, tx.Recipient)
}

// Summary represents the final results of a simulation run.
type Summary struct {
	RunID       string    `json:"run_id"`
	Miner       string    `json:"miner"`
	TotalBlocks int       `json:"total_blocks"`
	TimedOut    int       `json:"timed_out"`
	CoinsTraded uint64    `json:"coins_traded"`
	EndedAt     time.Time `json:"ended_at"`
}

// Reporter represents the behavior required to render the progress
// of a simulation run.
type Reporter interface {
	MiningStarted(index uint32)
	BlockAppended(block database.Block, tx Transaction)
	Finished(sum Summary)
}

// =============================================================================

// Transactions returns the set of transfers for the configured roster. The
// miner starts the chain of transfers, the coins move down the roster and the
// last trader sends them back to the miner.
func Transactions(cfg Config) []Transaction {
	txs := make([]Transaction, len(cfg.Traders))

	sender := cfg.MinerName
	for i := range cfg.Traders {
		recipient := cfg.MinerName
		if i < len(cfg.Traders)-1 {
			recipient = cfg.Traders[i+1]
		}

		txs[i] = Transaction{Sender: sender, Recipient: recipient}
		sender = recipient
	}

	return txs
}

// Run records every transaction in the configured roster into a new block on
// the specified chain. When a block times out the run pauses for the
// configured pacing before moving on. The context is checked between blocks,
// a pause in progress always runs to completion.
func Run(ctx context.Context, ch *database.Chain, cfg Config, rep Reporter) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}

	if rep == nil {
		rep = nopReporter{}
	}

	sum := Summary{
		RunID: uuid.NewString(),
		Miner: cfg.MinerName,
	}

	for _, tx := range Transactions(cfg) {
		if err := ctx.Err(); err != nil {
			return Summary{}, fmt.Errorf("run: %w", err)
		}

		// The block index is its position in the chain.
		index := uint32(ch.Length())
		rep.MiningStarted(index)

		candidate, err := database.NewBlock(index, "", tx.String())
		if err != nil {
			return Summary{}, fmt.Errorf("new block: %w", err)
		}

		block, err := ch.Append(candidate)
		if err != nil {
			return Summary{}, fmt.Errorf("append: %w", err)
		}

		if block.State == database.StateTimedOut {
			sum.TimedOut++
			time.Sleep(cfg.Pacing)
		}

		rep.BlockAppended(block, tx)
	}

	sum.TotalBlocks = ch.Length()
	sum.CoinsTraded = uint64(sum.TotalBlocks) * cfg.CoinsPerBlock
	sum.EndedAt = time.Now().UTC()

	rep.Finished(sum)

	return sum, nil
}

// =============================================================================

type nopReporter struct{}

func (nopReporter) MiningStarted(uint32) {}
func (nopReporter) BlockAppended(database.Block, Transaction) {}
func (nopReporter) Finished(Summary) {}

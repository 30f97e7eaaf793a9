package main

import (
	"github.com/ardanlabs/gyatcoin/business/simulation"
	"github.com/ardanlabs/gyatcoin/foundation/blockchain/database"
	"go.uber.org/zap"
)

// logReporter writes the progress of a simulation run to the logs.
type logReporter struct {
	log     *zap.SugaredLogger
	traceID string
}

func (r logReporter) MiningStarted(index uint32) {
	r.log.Infow("simulation", "status", "mining block", "traceid", r.traceID, "index", index)
}

func (r logReporter) BlockAppended(block database.Block, tx simulation.Transaction) {
	switch block.State {
	case database.StateMined:
		r.log.Infow("simulation", "status", "block mined", "traceid", r.traceID, "index", block.Index, "hash", block.Hash, "nonce", block.Nonce, "transaction", tx.String())

	default:
		r.log.Warnw("simulation", "status", "mining in progress", "traceid", r.traceID, "index", block.Index, "hash", block.Hash, "nonce", block.Nonce, "transaction", tx.String())
	}
}

func (r logReporter) Finished(sum simulation.Summary) {
	r.log.Infow("simulation", "status", "completed", "traceid", r.traceID, "runid", sum.RunID, "miner", sum.Miner, "blocks", sum.TotalBlocks, "timedout", sum.TimedOut, "coins", sum.CoinsTraded, "ended", sum.EndedAt)
}

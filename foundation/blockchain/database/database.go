// Package database maintains the in memory blockchain: the ordered set of
// blocks, the hash binding between them, and the proof of work mining that
// produces each block's hash.
package database

import (
	"fmt"
	"sync"
)

// GenesisData is the payload recorded in the first block of every chain.
const GenesisData = "Genesis Block"

// EventHandler defines a function that is called when events
// occur in the processing of mining and appending blocks.
type EventHandler func(v string, args ...any)

// safeEvHandler returns a handler that can always be called.
func safeEvHandler(evHandler EventHandler) EventHandler {
	return func(v string, args ...any) {
		if evHandler != nil {
			evHandler(v, args...)
		}
	}
}

// =============================================================================

// Config represents the mining rules and event support for a chain.
type Config struct {
	Difficulty  uint
	MaxAttempts uint64
	EvHandler   EventHandler
}

// Chain manages the ordered sequence of blocks. The sequence always starts
// with the genesis block and only grows through Append.
type Chain struct {
	mu sync.RWMutex

	difficulty  uint
	maxAttempts uint64
	evHandler   EventHandler
	blocks      []Block
}

// New constructs a chain seeded with a mined genesis block. A zero
// Difficulty or MaxAttempts in the config selects the package defaults.
func New(cfg Config) (*Chain, error) {
	ch := Chain{
		difficulty:  cfg.Difficulty,
		maxAttempts: cfg.MaxAttempts,
		evHandler:   safeEvHandler(cfg.EvHandler),
	}

	if ch.difficulty == 0 {
		ch.difficulty = DefaultDifficulty
	}
	if ch.maxAttempts == 0 {
		ch.maxAttempts = DefaultMaxAttempts
	}

	ch.evHandler("database: New: construct genesis block")

	genesis, err := NewBlock(0, "", GenesisData)
	if err != nil {
		return nil, fmt.Errorf("genesis: %w", err)
	}

	if _, err := genesis.Mine(ch.mineArgs()); err != nil {
		return nil, fmt.Errorf("genesis: %w", err)
	}

	ch.blocks = []Block{genesis}

	return &ch, nil
}

// Append links the candidate block to the latest block in the chain, mines
// it and adds it to the end of the chain. Whatever previous hash the
// candidate was constructed with is replaced. The stored block is returned
// so the caller can inspect the mining outcome.
func (ch *Chain) Append(candidate Block) (Block, error) {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	latest := ch.blocks[len(ch.blocks)-1]

	ch.evHandler("database: Append: link blk[%d] to prevBlk[%d]: hash[%s]", candidate.Index, latest.Index, latest.Hash)

	candidate.PrevBlockHash = latest.Hash

	if _, err := candidate.Mine(ch.mineArgs()); err != nil {
		return Block{}, err
	}

	ch.blocks = append(ch.blocks, candidate)

	ch.evHandler("database: Append: blk[%d]: state[%s]: length[%d]", candidate.Index, candidate.State, len(ch.blocks))

	return candidate, nil
}

// Length returns the number of blocks in the chain, genesis included.
func (ch *Chain) Length() int {
	ch.mu.RLock()
	defer ch.mu.RUnlock()

	return len(ch.blocks)
}

// LatestBlock returns a copy of the current latest block.
func (ch *Chain) LatestBlock() Block {
	ch.mu.RLock()
	defer ch.mu.RUnlock()

	return ch.blocks[len(ch.blocks)-1]
}

// Blocks returns a copy of the blocks in chain order.
func (ch *Chain) Blocks() []Block {
	ch.mu.RLock()
	defer ch.mu.RUnlock()

	cpy := make([]Block, len(ch.blocks))
	copy(cpy, ch.blocks)

	return cpy
}

// Difficulty returns the number of leading zeros a block hash needs
// to be considered mined.
func (ch *Chain) Difficulty() uint {
	return ch.difficulty
}

// mineArgs returns the mining rules for this chain.
func (ch *Chain) mineArgs() MineArgs {
	return MineArgs{
		Difficulty:  ch.difficulty,
		MaxAttempts: ch.maxAttempts,
		EvHandler:   ch.evHandler,
	}
}

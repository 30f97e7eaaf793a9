package database

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ardanlabs/gyatcoin/foundation/blockchain/signature"
)

// Set of default mining rules for the chain.
const (
	DefaultDifficulty  uint   = 2
	DefaultMaxAttempts uint64 = 100
)

// ErrClock is returned when the system clock reports a time at or before the
// unix epoch. The simulation assumes a working clock, so callers must treat
// this error as fatal.
var ErrClock = errors.New("system clock reports a time at or before the epoch")

// ErrAlreadyMined is returned when a block that has already been through the
// mining process is asked to be mined again.
var ErrAlreadyMined = errors.New("block has already been mined")

// now is the wall clock used to stamp new blocks.
var now = time.Now

// =============================================================================

// State represents where a block is in the mining lifecycle.
type State uint8

// Set of block states. Mined and TimedOut are terminal.
const (
	StateUnmined State = iota
	StateMined
	StateTimedOut
)

// String implements the fmt.Stringer interface.
func (s State) String() string {
	switch s {
	case StateUnmined:
		return "unmined"
	case StateMined:
		return "mined"
	case StateTimedOut:
		return "timed out"
	}
	return "unknown"
}

// =============================================================================

// Block represents a single entry in the ledger.
type Block struct {
	Index         uint32 `json:"index"`           // Position of the block in the chain.
	PrevBlockHash string `json:"prev_block_hash"` // Hash of the previous block in the chain.
	TimeStamp     uint64 `json:"timestamp"`       // Time the block was constructed.
	Data          string `json:"data"`            // Payload the block is recording.
	Nonce         uint64 `json:"nonce"`           // Value identified to solve the hash solution.
	Hash          string `json:"hash"`            // Hash stored by the mining process.
	State         State  `json:"state"`           // Outcome of the mining process.
}

// NewBlock constructs an unmined block stamped with the current time. The
// previous block hash is a placeholder that the chain replaces on append.
func NewBlock(index uint32, prevBlockHash string, data string) (Block, error) {
	t := now()
	if !t.After(time.Unix(0, 0)) {
		return Block{}, fmt.Errorf("new block %d: %w: %s", index, ErrClock, t.UTC())
	}

	nb := Block{
		Index:         index,
		PrevBlockHash: prevBlockHash,
		TimeStamp:     uint64(t.Unix()),
		Data:          data,
		Nonce:         0, // Will be identified by the POW algorithm.
		State:         StateUnmined,
	}

	return nb, nil
}

// ComputeHash returns the hash of the block's current fields. The fields are
// concatenated in a fixed order with no separators.
func (b Block) ComputeHash() string {
	data := strconv.FormatUint(uint64(b.Index), 10) +
		b.PrevBlockHash +
		strconv.FormatUint(b.TimeStamp, 10) +
		b.Data +
		strconv.FormatUint(b.Nonce, 10)

	return signature.Hash(data)
}

// String implements the fmt.Stringer interface.
func (b Block) String() string {
	ts := time.Unix(int64(b.TimeStamp), 0).UTC().Format(time.DateTime)
	return fmt.Sprintf("Block %d: %s at %s", b.Index, b.Data, ts)
}

// =============================================================================

// MineArgs represents the set of arguments required to mine a block.
type MineArgs struct {
	Difficulty  uint
	MaxAttempts uint64
	EvHandler   EventHandler
}

// Mine does the work of finding a nonce that produces a hash with the
// required number of leading zeros. The search is bounded: once MaxAttempts
// hashes have been computed without a solution, the last hash is stored
// anyway and the block is marked as timed out. Pointer semantics are being
// used since a nonce is being discovered.
func (b *Block) Mine(args MineArgs) (State, error) {
	ev := safeEvHandler(args.EvHandler)

	if b.State != StateUnmined {
		return b.State, fmt.Errorf("block %d: %w", b.Index, ErrAlreadyMined)
	}

	maxAttempts := args.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = DefaultMaxAttempts
	}

	ev("database: Mine: MINING: started: blk[%d]: difficulty[%d]", b.Index, args.Difficulty)

	var attempts uint64
	for {
		attempts++

		// Hash the block and check if we have solved the puzzle.
		hash := b.ComputeHash()
		if IsHashSolved(args.Difficulty, hash) {
			b.Hash = hash
			b.State = StateMined

			ev("database: Mine: MINING: SOLVED: blk[%d]: hash[%s]: attempts[%d]", b.Index, hash, attempts)
			return b.State, nil
		}

		// The search gives up and keeps the last hash it computed.
		if attempts >= maxAttempts {
			b.Hash = hash
			b.State = StateTimedOut

			ev("database: Mine: MINING: TIMEDOUT: blk[%d]: hash[%s]: attempts[%d]", b.Index, hash, attempts)
			return b.State, nil
		}

		b.Nonce++
	}
}

// IsHashSolved checks the hash to make sure it complies with
// the POW rules. We need to match a difficulty number of 0's.
func IsHashSolved(difficulty uint, hash string) bool {
	if len(hash) != signature.HashLength {
		return false
	}

	if difficulty > uint(len(hash)) {
		return false
	}

	return hash[:difficulty] == signature.ZeroHash[:difficulty]
}

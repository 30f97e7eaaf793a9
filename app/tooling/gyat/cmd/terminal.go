package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ardanlabs/gyatcoin/business/simulation"
	"github.com/ardanlabs/gyatcoin/foundation/blockchain/database"
	"github.com/pterm/pterm"
)

// terminal renders the progress of a simulation run with pterm.
type terminal struct {
	spinner *pterm.SpinnerPrinter
}

func (t *terminal) MiningStarted(index uint32) {
	spinner, err := pterm.DefaultSpinner.Start(fmt.Sprintf("Mining block %d...", index))
	if err != nil {
		pterm.Info.Printfln("Mining block %d...", index)
		return
	}
	t.spinner = spinner
}

func (t *terminal) BlockAppended(block database.Block, tx simulation.Transaction) {
	switch block.State {
	case database.StateMined:
		t.stop(true, fmt.Sprintf("Block mined: %d", block.Index))

	default:
		t.stop(false, fmt.Sprintf("Mining in progress... Calculated hash: %s", block.Hash))
	}

	pterm.Info.Printfln("Transaction: %s", tx)
	pterm.Println(pterm.Gray(block.String()))
	pterm.Println()
}

func (t *terminal) Finished(sum simulation.Summary) {
	data := pterm.TableData{
		{"Miner", "Total blocks", "Timed out", "$GYATCOIN traded", "Ended at"},
		{
			sum.Miner,
			strconv.Itoa(sum.TotalBlocks),
			strconv.Itoa(sum.TimedOut),
			strconv.FormatUint(sum.CoinsTraded, 10),
			sum.EndedAt.Format(time.DateTime),
		},
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Error.Println(err)
	}

	pterm.Success.Println("Congrats! Mining operation completed successfully!")
}

// stop ends the current spinner with the outcome of the mining.
func (t *terminal) stop(mined bool, msg string) {
	switch {
	case t.spinner == nil && mined:
		pterm.Success.Println(msg)
	case t.spinner == nil:
		pterm.Warning.Println(msg)
	case mined:
		t.spinner.Success(msg)
	default:
		t.spinner.Warning(msg)
	}
	t.spinner = nil
}

package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ardanlabs/gyatcoin/foundation/blockchain/database"
	"github.com/pterm/pterm"
)

func Test_HashCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"hash", "--index", "3", "--prev", "00ab", "--timestamp", "1700000000", "--data", "C→A", "--nonce", "42", "--difficulty", "65"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Should be able to run the hash command: %s", err)
	}

	b := database.Block{
		Index:         3,
		PrevBlockHash: "00ab",
		TimeStamp:     1700000000,
		Data:          "C→A",
		Nonce:         42,
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Should get back two lines of output: %q", out.String())
	}

	if lines[0] != b.ComputeHash() {
		t.Logf("got: %s", lines[0])
		t.Logf("exp: %s", b.ComputeHash())
		t.Fatalf("Should print the block hash.")
	}

	if lines[1] != "solved[65]: false" {
		t.Logf("got: %s", lines[1])
		t.Fatalf("Should print that the hash does not meet the difficulty.")
	}
}

func Test_SimulateCommand(t *testing.T) {
	pterm.DisableOutput()
	defer pterm.EnableOutput()

	rootCmd.SetArgs([]string{"simulate", "--miner", "satoshi", "--traders", "Bob,Linda,John", "--difficulty", "65", "--attempts", "3", "--pacing", "0s"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Should be able to run the simulate command: %s", err)
	}
}

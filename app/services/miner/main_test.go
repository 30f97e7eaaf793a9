package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/ardanlabs/gyatcoin/business/simulation"
	"github.com/ardanlabs/gyatcoin/foundation/blockchain/database"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func Test_ReadMinerName(t *testing.T) {
	type table struct {
		name  string
		input string
		exp   string
		fails bool
	}

	tt := []table{
		{name: "line", input: "satoshi\n", exp: "satoshi"},
		{name: "spaces", input: "  satoshi  \r\n", exp: "satoshi"},
		{name: "eof", input: "satoshi", exp: "satoshi"},
		{name: "empty", input: "\n", fails: true},
	}

	for _, tst := range tt {
		f := func(t *testing.T) {
			var out bytes.Buffer

			name, err := readMinerName(strings.NewReader(tst.input), &out)
			if tst.fails {
				if err == nil {
					t.Fatalf("Should not accept an empty miner name.")
				}
				return
			}

			if err != nil {
				t.Fatalf("Should be able to read the miner name: %s", err)
			}

			if name != tst.exp {
				t.Logf("got: %q", name)
				t.Logf("exp: %q", tst.exp)
				t.Fatalf("Should read the right miner name.")
			}

			if !strings.Contains(out.String(), "miner name") {
				t.Fatalf("Should prompt for the miner name.")
			}
		}

		t.Run(tst.name, f)
	}
}

func Test_LogReporter(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	rep := logReporter{
		log:     zap.New(core).Sugar(),
		traceID: "00000000-0000-0000-0000-000000000000",
	}

	ch, err := database.New(database.Config{Difficulty: 65, MaxAttempts: 1})
	if err != nil {
		t.Fatalf("Should be able to construct a chain: %s", err)
	}

	cfg := simulation.Config{
		MinerName:     "satoshi",
		Traders:       []string{"Bob", "Linda"},
		CoinsPerBlock: simulation.DefaultCoinsPerBlock,
	}

	if _, err := simulation.Run(context.Background(), ch, cfg, rep); err != nil {
		t.Fatalf("Should be able to run the simulation: %s", err)
	}

	if n := logs.FilterField(zap.String("status", "mining block")).Len(); n != 2 {
		t.Logf("got: %d", n)
		t.Logf("exp: %d", 2)
		t.Fatalf("Should log the start of every block.")
	}

	if n := logs.FilterField(zap.String("status", "mining in progress")).FilterLevelExact(zapcore.WarnLevel).Len(); n != 2 {
		t.Logf("got: %d", n)
		t.Logf("exp: %d", 2)
		t.Fatalf("Should warn for every timed out block.")
	}

	completed := logs.FilterField(zap.String("status", "completed")).All()
	if len(completed) != 1 {
		t.Fatalf("Should log the summary once.")
	}

	if blocks := completed[0].ContextMap()["blocks"]; blocks != int64(3) {
		t.Logf("got: %v", blocks)
		t.Logf("exp: %d", 3)
		t.Fatalf("Should log the total number of blocks.")
	}
}

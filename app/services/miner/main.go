package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/ardanlabs/gyatcoin/business/simulation"
	"github.com/ardanlabs/gyatcoin/foundation/blockchain/database"
	"github.com/ardanlabs/gyatcoin/foundation/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// build is the git version of this program. It is set using build flags in the makefile.
var build = "develop"

func main() {

	// Construct the application logger.
	log, err := logger.New("MINER")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	// Perform the startup and shutdown sequence.
	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =========================================================================
	// Configuration

	cfg := struct {
		conf.Version
		Miner struct {
			Name          string   `conf:"help:miner name read from stdin when empty"`
			Traders       []string `conf:"default:Bob;Linda;John;Omar;Eve;Svetlana;Grace;Jiro"`
			CoinsPerBlock uint64   `conf:"default:137"`
		}
		Chain struct {
			Difficulty  uint          `conf:"default:2"`
			MaxAttempts uint64        `conf:"default:100"`
			Pacing      time.Duration `conf:"default:3s"`
		}
	}{
		Version: conf.Version{
			Build: build,
			Desc:  "copyright information here",
		},
	}

	const prefix = "GYAT"
	help, err := conf.Parse(prefix, &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	// =========================================================================
	// App Starting

	log.Infow("starting service", "version", build)
	defer log.Infow("shutdown complete")

	out, err := conf.String(&cfg)
	if err != nil {
		return fmt.Errorf("generating config for output: %w", err)
	}
	log.Infow("startup", "config", out)

	// =========================================================================
	// Miner Identity

	if cfg.Miner.Name == "" {
		name, err := readMinerName(os.Stdin, os.Stdout)
		if err != nil {
			return fmt.Errorf("reading miner name: %w", err)
		}
		cfg.Miner.Name = name
	}

	// =========================================================================
	// Blockchain Support

	// Every event raised by the blockchain packages is logged with the
	// trace id of this run.
	traceID := uuid.NewString()
	ev := func(v string, args ...any) {
		s := fmt.Sprintf(v, args...)
		log.Infow(s, "traceid", traceID)
	}

	// Construction of the genesis block reads the clock. A broken clock
	// terminates the program.
	chain, err := database.New(database.Config{
		Difficulty:  cfg.Chain.Difficulty,
		MaxAttempts: cfg.Chain.MaxAttempts,
		EvHandler:   ev,
	})
	if err != nil {
		return fmt.Errorf("constructing chain: %w", err)
	}

	log.Infow("startup", "status", "genesis mined", "traceid", traceID, "block", chain.LatestBlock())

	// =========================================================================
	// Simulation

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	simCfg := simulation.Config{
		MinerName:     cfg.Miner.Name,
		Traders:       cfg.Miner.Traders,
		CoinsPerBlock: cfg.Miner.CoinsPerBlock,
		Pacing:        cfg.Chain.Pacing,
	}

	rep := logReporter{
		log:     log,
		traceID: traceID,
	}

	if _, err := simulation.Run(ctx, chain, simCfg, rep); err != nil {
		return fmt.Errorf("running simulation: %w", err)
	}

	return nil
}

// readMinerName prompts for and reads a single line holding the miner name.
func readMinerName(r io.Reader, w io.Writer) (string, error) {
	fmt.Fprintln(w, "Enter your miner name: ")

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}

	name := strings.TrimSpace(line)
	if name == "" {
		return "", errors.New("miner name is required")
	}

	return name, nil
}

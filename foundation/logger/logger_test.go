package logger_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardanlabs/gyatcoin/foundation/logger"
)

func Test_New(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")

	log, err := logger.New("TEST", path)
	if err != nil {
		t.Fatalf("Should be able to construct a logger: %s", err)
	}

	log.Infow("startup", "status", "logger test")
	log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Should be able to read the log output: %s", err)
	}

	out := string(data)
	for _, exp := range []string{`"service":"TEST"`, `"status":"logger test"`, `"msg":"startup"`} {
		if !strings.Contains(out, exp) {
			t.Logf("got: %s", out)
			t.Logf("exp: %s", exp)
			t.Fatalf("Should find the field in the log output.")
		}
	}
}

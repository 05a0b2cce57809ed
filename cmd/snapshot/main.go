// Package main is the standalone snapshot executable. It samples the system
// once and prints the snapshot as indented JSON on stdout.
//
// Usage: snapshot [limit]
//
// limit is the number of top CPU processes to list, as a plain decimal
// number. A missing or unparseable value falls back to the default of 5;
// collection.top_processes in the config file replaces that default for
// both cases. Values too large to matter are capped and list every process.
package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/Guliveer/vitalis/snapshot/internal/config"
	"github.com/Guliveer/vitalis/snapshot/internal/logging"
	"github.com/Guliveer/vitalis/snapshot/internal/payload"
	"github.com/Guliveer/vitalis/snapshot/internal/snapshot"
)

func main() {
	cfg, err := config.Load(config.Locate())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := logging.New(cfg.Logging)
	defer closeLog()

	limit := parseLimit(os.Args[1:], cfg.Collection.TopProcesses)

	a := snapshot.New(snapshot.OptionsFromConfig(cfg), logger)
	m, err := a.Assemble(context.Background(), limit)
	if err != nil {
		logger.Fatal("Snapshot failed", zap.Error(err))
	}

	data, err := payload.EncodePretty(m)
	if err != nil {
		logger.Fatal("Encoding failed", zap.Error(err))
	}
	fmt.Println(string(data))
}

// parseLimit reads the optional positional limit. Only decimal digits with
// an optional leading '+' are accepted; anything else silently yields def.
// Numbers beyond MaxInt32 are capped rather than rejected.
func parseLimit(args []string, def int) int {
	if len(args) == 0 {
		return def
	}

	digits := strings.TrimPrefix(args[0], "+")
	if digits == "" || strings.Trim(digits, "0123456789") != "" {
		return def
	}

	// Leading zeros would make cast read the number as octal.
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return 0
	}

	n, err := cast.ToUintE(digits)
	if err != nil || n > math.MaxInt32 {
		// Only overflow can fail here: the input is all digits.
		return math.MaxInt32
	}
	return int(n)
}

// generate-ref tries to produce reference outputs for BASIC test
// programs from an Apple II emulator. Automated capture is not
// implemented; the command reports which tests need references and
// whether an emulator is even installed.
//
// Usage:
//
//	generate-ref --list
//	generate-ref --test t001_arithmetic.bas
//	generate-ref --all
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cbasic-project/harness-go/internal/config"
	"github.com/cbasic-project/harness-go/internal/emulator"
	"github.com/cbasic-project/harness-go/internal/observability"
)

func main() {
	test := flag.String("test", "", "specific test file to process (e.g. t001_arithmetic.bas)")
	all := flag.Bool("all", false, "process every test program")
	list := flag.Bool("list", false, "list tests without reference outputs")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logger := observability.InitLogger(cfg.LogLevel)

	if *list {
		missing, err := emulator.MissingRefs(cfg.TestsDir, cfg.ReferenceDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Tests without reference outputs:")
		for _, name := range missing {
			fmt.Printf("  %s\n", name)
		}
		return
	}

	var tests []string
	switch {
	case *test != "":
		tests = []string{*test}
	case *all:
		missing, err := emulator.MissingRefs(cfg.TestsDir, cfg.ReferenceDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		tests = missing
	default:
		flag.Usage()
		return
	}

	lin := &emulator.Linapple{}
	for _, name := range tests {
		stem := strings.TrimSuffix(name, ".bas")
		basFile := filepath.Join(cfg.TestsDir, name)
		refFile := filepath.Join(cfg.ReferenceDir, stem+".ref")

		if _, err := os.Stat(basFile); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s not found\n", basFile)
			continue
		}
		if _, err := os.Stat(refFile); err == nil {
			fmt.Printf("Skipping %s (reference exists)\n", name)
			continue
		}

		fmt.Printf("Processing %s...\n", name)
		err := lin.GenerateRef(basFile, refFile)
		switch {
		case err == nil:
			fmt.Printf("  Generated %s\n", filepath.Base(refFile))
		case errors.Is(err, emulator.ErrManualCapture):
			fmt.Printf("  Manual generation needed for %s\n", name)
		default:
			logger.Warn("emulator unavailable", "test", name, "error", err)
			fmt.Printf("  Manual generation needed for %s (%v)\n", name, err)
		}
	}
}

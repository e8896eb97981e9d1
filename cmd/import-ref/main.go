// import-ref normalizes a transcript captured from a real Apple II or an
// emulator and stores it as the reference output for a named test.
//
// Usage:
//
//	import-ref --test t001_arithmetic --file captured_output.txt [--force]
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cbasic-project/harness-go/internal/config"
	"github.com/cbasic-project/harness-go/internal/observability"
	"github.com/cbasic-project/harness-go/internal/refimport"
)

func main() {
	test := flag.String("test", "", "test name, e.g. t001_arithmetic (required)")
	file := flag.String("file", "", "captured output file (required)")
	force := flag.Bool("force", false, "overwrite an existing reference")
	flag.Parse()

	if *test == "" || *file == "" {
		fmt.Fprintln(os.Stderr, "usage: import-ref --test <name> --file <captured> [--force]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logger := observability.InitLogger(cfg.LogLevel)

	im := &refimport.Importer{
		ReferenceDir: cfg.ReferenceDir,
		Filters:      refimport.AppleSoftFilters(),
		Force:        *force,
	}
	path, err := im.Import(*test, *file)
	if err != nil {
		logger.Error("import failed", "test", *test, "error", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Created reference: %s\n", path)
	fmt.Printf("Lines: %d\n", len(strings.Split(string(data), "\n")))
}

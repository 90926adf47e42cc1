// Command zora is ZORA's CLI: a thin wrapper over pkg/zora.Generate
// implementing the external interface spec.md §6 documents (--seed,
// --flagstring, --input-file, --output-dir, --loglevel) and the exit-code
// taxonomy §7 assigns. Flag parsing, file I/O, and process lifetime are
// the "external collaborators" spec.md §1 scopes out of the Randomization
// Core itself — this file is the thinnest possible shim around it, in the
// style of teacher's cmd/dungeongen/main.go.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zora-rando/zora/pkg/flags"
	"github.com/zora-rando/zora/pkg/logging"
	"github.com/zora-rando/zora/pkg/validate"
	"github.com/zora-rando/zora/pkg/worldmap"
	"github.com/zora-rando/zora/pkg/zora"
)

// Exit codes per spec.md §6.
const (
	exitSuccess           = 0
	exitInvalidFlags      = 2
	exitNoFeasible        = 3
	exitValidatorRejected = 4
	exitIOError           = 5
)

var (
	seedFlag       = flag.Uint64("seed", 0, "RNG master seed")
	flagstringFlag = flag.String("flagstring", "BBBBBBBBBB", "encoded flag set (spec.md §4.4)")
	inputFileFlag  = flag.String("input-file", "", "path to the base ROM image (required)")
	outputDirFlag  = flag.String("output-dir", ".", "directory to write the patched ROM into")
	loglevelFlag   = flag.String("loglevel", "info", "debug, info, warn, or error")
)

func main() {
	flag.Parse()
	logging.Initialize(*loglevelFlag)

	code := run()
	os.Exit(code)
}

func run() int {
	if *inputFileFlag == "" {
		fmt.Fprintln(os.Stderr, "zora: -input-file is required")
		return exitInvalidFlags
	}

	flagSet, err := flags.DecodeFlagstring(*flagstringFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zora: invalid flagstring: %v\n", err)
		return exitInvalidFlags
	}

	baseImage, err := os.ReadFile(*inputFileFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zora: reading input file: %v\n", err)
		return exitIOError
	}

	if err := flagSet.Validate(len(baseImage) == worldmap.BaseImageSize); err != nil {
		fmt.Fprintf(os.Stderr, "zora: invalid flag set: %v\n", err)
		return exitInvalidFlags
	}

	world := validate.DefaultWorld()
	result, err := zora.Generate(context.Background(), *seedFlag, flagSet, baseImage, world)
	if err != nil {
		return exitCodeFor(err)
	}

	patched, err := result.Patch.ApplyTo(baseImage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zora: applying patch: %v\n", err)
		return exitIOError
	}

	if err := os.MkdirAll(*outputDirFlag, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "zora: creating output directory: %v\n", err)
		return exitIOError
	}

	outPath := filepath.Join(*outputDirFlag, fmt.Sprintf("zora_%d.nes", *seedFlag))
	if err := os.WriteFile(outPath, patched, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "zora: writing output file: %v\n", err)
		return exitIOError
	}

	logging.Info("generation succeeded", "seed", *seedFlag, "attempt", result.Attempt, "output", outPath)
	fmt.Printf("wrote %s (seed=%d, patch hash=%d)\n", outPath, *seedFlag, result.Patch.Hash())
	return exitSuccess
}

// exitCodeFor maps a failed zora.Generate's error to spec.md §7's
// taxonomy: ErrUnbeatable means at least one attempt within the retry
// budget reached validation and every validated world was rejected (4);
// an invalid base image is an I/O failure (5); anything else, including
// every attempt failing to produce an item assignment at all, is 3.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, zora.ErrUnbeatable):
		fmt.Fprintf(os.Stderr, "zora: %v\n", err)
		return exitValidatorRejected
	case errors.Is(err, worldmap.ErrInvalidBaseImage):
		fmt.Fprintf(os.Stderr, "zora: %v\n", err)
		return exitIOError
	default:
		fmt.Fprintf(os.Stderr, "zora: %v\n", err)
		return exitNoFeasible
	}
}

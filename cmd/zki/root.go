package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/zkinterface-go/zki/config"
)

var (
	errExit       = errors.New("exit")
	errViolations = errors.New("violations reported")

	fieldOrderFlag  string
	witnessNbrFlag  uint64
	instanceNbrFlag uint64
	configFlag      string
	verboseFlag     bool
	noColorFlag     bool

	// loadedConfig is populated by parseFlags when --config is given; nil
	// otherwise. Subcommands fall back to its values only where the
	// corresponding flag was left at its zero value.
	loadedConfig *config.File
)

func init() {
	flag.StringVar(&fieldOrderFlag, "field-order", "", "field modulus minus one, decimal, or a preset name (secp256k1, ed25519)")
	flag.Uint64Var(&witnessNbrFlag, "witness-nbr", 0, "synthetic statement size: the larger of --witness-nbr and --instance-nbr sets both the witness and the instance count")
	flag.Uint64Var(&instanceNbrFlag, "instance-nbr", 0, "synthetic statement size: the larger of --witness-nbr and --instance-nbr sets both the witness and the instance count")
	flag.StringVar(&configFlag, "config", "", "configuration file (.yaml, .yml, or .json)")
	flag.BoolVar(&verboseFlag, "v", false, "print stack-annotated errors")
	flag.BoolVar(&noColorFlag, "no-color", false, "disable colorized violation output")
}

func parseFlags() error {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "version":
			printVersion()
			return errExit
		case "help", "-h", "--help":
			printUsage()
			return errExit
		}
	}
	if len(os.Args) < 2 {
		printUsage()
		return errExit
	}
	// os.Args[1] is the subcommand, not a flag.Parse-able token; parse the
	// remainder as flags.
	if len(os.Args) > 2 {
		if err := flag.CommandLine.Parse(os.Args[2:]); err != nil {
			return err
		}
	}
	if configFlag != "" {
		f, err := config.Load(configFlag)
		if err != nil {
			return errors.Wrap(err, "failed to load --config")
		}
		loadedConfig = f
		if fieldOrderFlag == "" {
			fieldOrderFlag = f.FieldOrder
		}
	}
	return nil
}

func printUsage() {
	fmt.Printf("Usage: %s <tool> [paths...] [flags]\n\n", appName)
	fmt.Println("Tools:")
	fmt.Println("  example PATH       write a canonical example statement into PATH")
	fmt.Println("  cat PATH...        concatenate every workspace file to stdout")
	fmt.Println("  to-json PATH...    emit the loaded statement as JSON")
	fmt.Println("  to-yaml PATH...    emit the loaded statement as YAML")
	fmt.Println("  explain PATH...    print a human-readable dump")
	fmt.Println("  validate PATH...   run the validator in verifier mode")
	fmt.Println("  simulate PATH...   run the validator (prover mode) and simulator")
	fmt.Println("  stats PATH...      print variable and constraint counts")
	fmt.Println("  clean PATH...      remove every *.zkif file in the given paths (not in subdirectories)")
	fmt.Println("  fake_prove PATH    write a sentinel proof file")
	fmt.Println("  fake_verify PATH   read and check a sentinel proof file")
	fmt.Println("\nFlags:")
	flag.PrintDefaults()
}

func runCommand() error {
	tool := os.Args[1]
	paths := flag.Args()

	switch tool {
	case "example":
		return cmdExample(paths)
	case "cat":
		return cmdCat(paths)
	case "to-json":
		return cmdDump(paths, formatJSON)
	case "to-yaml":
		return cmdDump(paths, formatYAML)
	case "explain":
		return cmdExplain(paths)
	case "validate":
		return cmdValidate(paths)
	case "simulate":
		return cmdSimulate(paths)
	case "stats":
		return cmdStats(paths)
	case "clean":
		return cmdClean(paths)
	case "fake_prove":
		return cmdFakeProve(paths)
	case "fake_verify":
		return cmdFakeVerify(paths)
	default:
		return errors.Errorf("unknown tool %q", tool)
	}
}

package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

const version = "jasm 0.1.0"

const usage = `jasm [options] <input.jasm> [output]

  -h, --help            show usage and exit
  -v, --verbose         print a banner and per-stage progress to stderr
  -V, --version         print version and exit
  -f, --format <fmt>    elf (default) or bin
  -c, --config <path>   optional TOML config file
`

func main() {
	os.Exit(run(os.Args[1:]))
}

// run implements the CLI and returns a process exit code. It is kept
// separate from main so the only call to os.Exit in the whole program
// lives in one place (SPEC_FULL.md §6.2).
func run(args []string) int {
	fs := flag.NewFlagSet("jasm", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() { fmt.Fprint(os.Stderr, usage) }

	var (
		help       bool
		verbose    bool
		showVer    bool
		format     string
		configPath string
	)
	fs.BoolVar(&help, "help", false, "show usage and exit")
	fs.BoolVar(&help, "h", false, "show usage and exit")
	fs.BoolVar(&verbose, "verbose", false, "print progress to stderr")
	fs.BoolVar(&verbose, "v", false, "print progress to stderr")
	fs.BoolVar(&showVer, "version", false, "print version and exit")
	fs.BoolVar(&showVer, "V", false, "print version and exit")
	fs.StringVar(&format, "format", "", "elf (default) or bin")
	fs.StringVar(&format, "f", "", "elf (default) or bin")
	fs.StringVar(&configPath, "config", "", "optional TOML config file")
	fs.StringVar(&configPath, "c", "", "optional TOML config file")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if help {
		fs.Usage()
		return 0
	}
	if showVer {
		fmt.Fprintln(os.Stdout, version)
		return 0
	}

	rest := fs.Args()
	if len(rest) < 1 {
		fs.Usage()
		return 2
	}
	inputPath := rest[0]
	outputPath := "a.out"
	if len(rest) > 1 {
		outputPath = rest[1]
	}

	reporter := NewReporter(os.Stderr, inputPath)

	opts := DefaultOptions()

	if configPath != "" {
		cfg, err := loadConfigFile(configPath)
		if err != nil {
			reporter.ReportErr(err)
			return 1
		}
		opts, err = applyFileConfig(opts, cfg)
		if err != nil {
			reporter.ReportErr(err)
			return 1
		}
		reporter.useColor = wantsColor(cfg)
	}

	opts, err := applyEnvOverrides(opts)
	if err != nil {
		reporter.ReportErr(err)
		return 1
	}

	if format != "" {
		f, ok := ParseOutputFormat(format)
		if !ok {
			reporter.ReportErr(fmt.Errorf("unrecognised output format %q", format))
			return 2
		}
		opts.Format = f
	}

	// An explicit -v/--verbose flag wins over config file and environment,
	// the same precedence the -f/--format flag gets above.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "v" || f.Name == "verbose" {
			opts.Verbose = verbose
		}
	})

	source, err := os.ReadFile(inputPath)
	if err != nil {
		reporter.ReportErr(wrapf(SourceIoError, err, "cannot read %q", inputPath))
		return 1
	}

	if opts.Verbose {
		fmt.Fprintf(os.Stderr, "jasm: assembling %s (format=%v, base=0x%x)\n", inputPath, opts.Format, opts.BaseAddr)
	}

	result, err := Assemble(string(source), opts)
	if err != nil {
		reporter.ReportErr(err)
		return 1
	}

	if opts.Verbose {
		fmt.Fprintf(os.Stderr, "jasm: %d bytes code, %d bytes data, %d symbols\n", result.CodeSize, result.DataSize, len(result.Symbols))
	}

	if err := os.WriteFile(outputPath, result.Payload, 0644); err != nil {
		reporter.ReportErr(wrapf(OutputIoError, err, "cannot write %q", outputPath))
		return 1
	}

	if opts.Format == FormatELF {
		if err := unix.Chmod(outputPath, 0755); err != nil {
			reporter.ReportErr(wrapf(OutputIoError, err, "cannot chmod %q", outputPath))
			return 1
		}
	}

	if opts.Verbose {
		reporter.Success("jasm: wrote %s", outputPath)
	}

	return 0
}

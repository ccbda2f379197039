package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/jmatley/ldtyper/internal/config"
	"github.com/jmatley/ldtyper/internal/engine"
	"github.com/jmatley/ldtyper/internal/errors"
	"github.com/jmatley/ldtyper/internal/formatter"
	"github.com/jmatley/ldtyper/internal/models"
	"github.com/jmatley/ldtyper/internal/parser"
	"github.com/jmatley/ldtyper/internal/renderer"
	"github.com/jmatley/ldtyper/internal/scaffold"
)

// CLI defines the command-line interface
var CLI struct {
	Input          string `help:"Path to a sample JSON or JSON-LD document. If not specified, reads from stdin." short:"i" type:"path"`
	Output         string `help:"Path to output Go file. If not specified, writes to stdout." short:"o" type:"path"`
	Package        string `help:"Package name for generated code." short:"p" default:"main"`
	RootName       string `help:"Name for the implicit root type." short:"r" default:"RootType"`
	Config         string `help:"Path to a config file. Discovered automatically when omitted." short:"c" type:"path"`
	Format         bool   `help:"Format the output code according to Go standards." short:"f" default:"true"`
	Scaffold       bool   `help:"Also emit repository scaffolding for every discovered type." short:"s"`
	ScaffoldOutput string `help:"Path to output scaffolding file. Requires --scaffold." type:"path"`
	Debug          bool   `help:"Print resolver diagnostics for skipped fields." short:"d"`
	Version        bool   `help:"Show version information." short:"v"`
	Interactive    bool   `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	cliParser := kong.Must(&CLI,
		kong.Name("ldtyper"),
		kong.Description("Derives typed record definitions from a sample JSON-LD document"),
		kong.UsageOnError(),
	)

	// No arguments means interactive mode
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	if _, err := cliParser.Parse(os.Args[1:]); err != nil {
		// Usage has already been shown by kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("ldtyper version %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: ldtyper --help\n")
		os.Exit(1)
	}
}

// run executes the main program logic
func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return errors.NewInputError("failed to load configuration", err)
	}
	if CLI.Debug {
		cfg.Dev.Debug = true
	}
	if CLI.Scaffold {
		cfg.Scaffold.Enabled = true
	}

	// 1. Parse the sample document
	ir, err := parseInput()
	if err != nil {
		return err
	}

	// 2. Resolve the type set
	result, err := engine.Generate(ir, cfg)
	if err != nil {
		return err
	}
	if cfg.Dev.Debug {
		for _, diag := range result.Diagnostics {
			fmt.Fprintf(os.Stderr, "skipped %s\n", diag)
		}
	}

	// 3. Render Go types
	rendererInst := renderer.NewRendererWithConfig(cfg)
	code, err := rendererInst.Render(result.Types, cfg.Package)
	if err != nil {
		return errors.NewRenderError("failed to render type definitions", err)
	}

	// 4. Format the code if requested
	if CLI.Format && cfg.Formatting.Enabled {
		code, err = formatCode(code)
		if err != nil {
			return err
		}
	}

	// 5. Output the result
	if err := writeOutput(code, CLI.Output); err != nil {
		return err
	}

	// 6. Optional repository scaffolding
	if cfg.Scaffold.Enabled {
		return runScaffold(result, cfg)
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	path := CLI.Config
	if path == "" {
		path = config.FindConfigFile()
	}
	return config.LoadConfigWithCLI(path, CLI.Package, CLI.RootName)
}

func formatCode(code string) (string, error) {
	formatterInst := formatter.NewFormatter()
	formatted, err := formatterInst.Format(code)
	if err != nil {
		return "", errors.NewFormatError("failed to format Go code", err)
	}
	return formatted, nil
}

// runScaffold renders repository scaffolding for every type the run
// discovered, using the same discovered-type list shape the engine produces.
func runScaffold(result engine.Result, cfg *config.Config) error {
	discovered := make([]scaffold.DiscoveredType, 0, len(result.Types))
	for _, def := range result.Types {
		discovered = append(discovered, scaffold.DiscoveredType{Name: def.Name, Package: cfg.Package})
	}

	code, err := scaffold.Generate(discovered, cfg.Scaffold.Package)
	if err != nil {
		return errors.NewScaffoldError("failed to generate repository scaffolding", err)
	}

	if CLI.Format && cfg.Formatting.Enabled {
		code, err = formatCode(code)
		if err != nil {
			return err
		}
	}

	return writeOutput(code, CLI.ScaffoldOutput)
}

// parseInput reads JSON from file or stdin
func parseInput() (models.IntermediateRepresentation, error) {
	if CLI.Input != "" {
		return parser.ParseFile(CLI.Input)
	}

	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return models.IntermediateRepresentation{}, errors.NewInputError("failed to access stdin", err)
	}

	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			return readInteractiveInput()
		}
		return models.IntermediateRepresentation{}, errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	// Read from stdin (piped input)
	jsonData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return models.IntermediateRepresentation{}, errors.NewInputError("failed to read from stdin", err)
	}

	if len(jsonData) == 0 {
		return models.IntermediateRepresentation{}, errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return parser.ParseString(string(jsonData))
}

// writeOutput writes code to file or stdout
func writeOutput(code string, path string) error {
	if path != "" {
		err := os.WriteFile(path, []byte(code), 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", path), err)
		}
		fmt.Fprintf(os.Stderr, "Generated Go code written to %s\n", path)
		return nil
	}

	_, err := fmt.Println(strings.TrimSpace(code))
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste JSON
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput() (models.IntermediateRepresentation, error) {
	fmt.Fprintln(os.Stderr, "ldtyper Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(os.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			break
		}
		if err != nil {
			return models.IntermediateRepresentation{}, errors.NewInputError("error reading input", err)
		}
		jsonBuilder.WriteString(line)
	}

	jsonData := jsonBuilder.String()
	if len(jsonData) == 0 {
		return models.IntermediateRepresentation{}, errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing JSON...")
	return parser.ParseString(jsonData)
}

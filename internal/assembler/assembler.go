package assembler

import (
	"fmt"
	"io"
	"nova/pkg/color"
	"nova/pkg/encoder"
	"nova/pkg/section"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

const (
	DefaultSourceFile      = "assembly.txt"
	DefaultInstructionFile = "instructions.txt"
	DefaultDataFile        = "data.txt"
)

var ErrMissingInputFile = errors.New("input file not found")

type Assembler struct {
	Help            bool      // Show help message
	Verbose         bool      // Enable verbose output
	NoColor         bool      // Disable colored output
	Overflow        string    // Byte overflow policy: fail, wrap or wide
	SourceFile      string    // Path to the assembly source
	InstructionFile string    // Path of the instruction output, next to the source when empty
	DataFile        string    // Path of the data output, next to the source when empty
	Stdout          io.Writer // Console echo destination, os.Stdout when nil
}

// Assemble reads the source file, encodes both sections and writes the two
// output files. Nothing is written unless every line encodes.
func (opts *Assembler) Assemble() error {
	log.Info("Processing file", "file", opts.SourceFile)

	policy, err := encoder.ParseOverflowPolicy(opts.Overflow)
	if err != nil {
		return err
	}

	lines, err := readLines(opts.SourceFile)
	if err != nil {
		return err
	}

	prog := section.Split(lines)
	enc := encoder.NewEncoder(policy)

	out, err := enc.EncodeProgram(prog)
	if err != nil {
		return errors.Wrap(err, "encoding failed")
	}

	if opts.Verbose {
		opts.listing(prog, out)
	}

	instructionHex := out.InstructionHex()
	dataHex := out.DataHex()

	if err := writeOutput(opts.instructionPath(), instructionHex); err != nil {
		return err
	}
	if err := writeOutput(opts.dataPath(), dataHex); err != nil {
		return err
	}

	w := opts.stdout()
	fmt.Fprintln(w, "Instructions:", instructionHex)
	fmt.Fprintln(w, "Data:", dataHex)

	return nil
}

// listing prints every encoded line next to its source tokens
func (opts *Assembler) listing(prog section.Program, out encoder.Encoded) {
	w := opts.stdout()

	fmt.Fprintln(w, color.GreenText("=== Text ==="))
	if len(prog.Text) == 0 {
		fmt.Fprintln(w, color.GrayText("No instructions."))
	}
	for i, l := range prog.Text {
		fmt.Fprintf(w, "%s: %s %s\n",
			color.CyanText(fmt.Sprintf("%d", l.Number)),
			color.YellowText(fmt.Sprintf("%-3s", encoder.Hex(out.Instructions[i]))),
			color.BlueText(strings.Join(l.Tokens, " ")))
	}

	fmt.Fprintln(w, color.GreenText("=== Data ==="))
	if len(prog.Data) == 0 {
		fmt.Fprintln(w, color.GrayText("No data."))
	}
	for i, l := range prog.Data {
		fmt.Fprintf(w, "%s: %s %s\n",
			color.CyanText(fmt.Sprintf("%d", l.Number)),
			color.YellowText(fmt.Sprintf("%-3s", encoder.Hex(out.Data[i]))),
			color.BlueText(strings.Join(l.Tokens, " ")))
	}
}

func (opts *Assembler) instructionPath() string {
	if opts.InstructionFile != "" {
		return opts.InstructionFile
	}
	return filepath.Join(filepath.Dir(opts.SourceFile), DefaultInstructionFile)
}

func (opts *Assembler) dataPath() string {
	if opts.DataFile != "" {
		return opts.DataFile
	}
	return filepath.Join(filepath.Dir(opts.SourceFile), DefaultDataFile)
}

func (opts *Assembler) stdout() io.Writer {
	if opts.Stdout != nil {
		return opts.Stdout
	}
	return os.Stdout
}

// readLines loads the source file as a sequence of raw lines
func readLines(path string) ([]string, error) {
	input, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrMissingInputFile, "%s", path)
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return strings.Split(string(input), "\n"), nil
}

// writeOutput replaces the file at path with content
func writeOutput(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	log.Debug("Wrote output", "file", path, "bytes", len(content))
	return nil
}

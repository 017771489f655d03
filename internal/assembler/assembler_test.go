package assembler_test

import (
	"bytes"
	"nova/internal/assembler"
	"nova/pkg/encoder"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func writeSource(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), assembler.DefaultSourceFile)
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestAssemble(t *testing.T) {
	src := ".data\nX 5\nY 10\n.text\nADD R1, R2, R3\nLDR R0, R1\n"
	path := writeSource(t, src)

	var stdout bytes.Buffer
	a := assembler.Assembler{SourceFile: path, Overflow: "fail", Stdout: &stdout}
	if err := a.Assemble(); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	dir := filepath.Dir(path)
	if got := readFile(t, filepath.Join(dir, assembler.DefaultInstructionFile)); got != "39 84" {
		t.Errorf("instructions: expected %q, got %q", "39 84", got)
	}
	if got := readFile(t, filepath.Join(dir, assembler.DefaultDataFile)); got != "5 a" {
		t.Errorf("data: expected %q, got %q", "5 a", got)
	}

	expected := "Instructions: 39 84\nData: 5 a\n"
	if stdout.String() != expected {
		t.Errorf("console: expected %q, got %q", expected, stdout.String())
	}
}

func TestAssembleOverwritesOutputs(t *testing.T) {
	path := writeSource(t, "STR R1, R2\r\n")
	dir := filepath.Dir(path)
	instructions := filepath.Join(dir, "out.hex")
	data := filepath.Join(dir, "out.data")

	for _, f := range []string{instructions, data} {
		if err := os.WriteFile(f, []byte("stale content"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	a := assembler.Assembler{
		SourceFile:      path,
		InstructionFile: instructions,
		DataFile:        data,
		Overflow:        "fail",
		Stdout:          &bytes.Buffer{},
	}
	if err := a.Assemble(); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	if got := readFile(t, instructions); got != "c9" {
		t.Errorf("instructions: expected %q, got %q", "c9", got)
	}
	if got := readFile(t, data); got != "" {
		t.Errorf("data: expected empty output, got %q", got)
	}
}

func TestAssembleErrors(t *testing.T) {
	tests := []struct {
		description string
		source      string
		expected    error
	}{
		{"invalid instruction", ".data\nX 5\n.text\nADD R1, R2\nMOV R1, R2\n", encoder.ErrInvalidInstruction},
		{"malformed register", "ADD R1, 2\n", encoder.ErrMalformedOperand},
		{"malformed data", ".data\nX five\n", encoder.ErrMalformedOperand},
		{"data overflow", ".data\nX 512\n", encoder.ErrByteOverflow},
	}

	for _, test := range tests {
		path := writeSource(t, test.source)
		var stdout bytes.Buffer
		a := assembler.Assembler{SourceFile: path, Overflow: "fail", Stdout: &stdout}

		err := a.Assemble()
		if !errors.Is(err, test.expected) {
			t.Errorf("%s: expected %v, got %v", test.description, test.expected, err)
		}

		dir := filepath.Dir(path)
		for _, name := range []string{assembler.DefaultInstructionFile, assembler.DefaultDataFile} {
			if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
				t.Errorf("%s: %s should not have been written", test.description, name)
			}
		}
		if stdout.Len() != 0 {
			t.Errorf("%s: expected no console output, got %q", test.description, stdout.String())
		}
	}
}

func TestAssembleMissingInput(t *testing.T) {
	dir := t.TempDir()
	a := assembler.Assembler{SourceFile: filepath.Join(dir, "missing.txt"), Overflow: "fail"}

	err := a.Assemble()
	if !errors.Is(err, assembler.ErrMissingInputFile) {
		t.Fatalf("expected missing input, got %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no files to be written, found %d", len(entries))
	}
}

func TestAssembleUnknownOverflowPolicy(t *testing.T) {
	path := writeSource(t, "ADD R1, R2\n")
	a := assembler.Assembler{SourceFile: path, Overflow: "saturate"}
	if err := a.Assemble(); err == nil {
		t.Fatal("expected an error for an unknown overflow policy")
	}
}

func TestAssembleVerboseListing(t *testing.T) {
	path := writeSource(t, "ADD R1, R2, R3\n")
	var stdout bytes.Buffer
	a := assembler.Assembler{SourceFile: path, Overflow: "wide", Verbose: true, Stdout: &stdout}
	if err := a.Assemble(); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !bytes.Contains(stdout.Bytes(), []byte("ADD R1 R2 R3")) {
		t.Errorf("expected the listing to show the source tokens, got %q", stdout.String())
	}
	if !bytes.Contains(stdout.Bytes(), []byte("Instructions: 39\n")) {
		t.Errorf("expected the console echo, got %q", stdout.String())
	}
}

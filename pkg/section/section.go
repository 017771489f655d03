package section

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
)

type Mode int

const (
	TEXT Mode = iota // instruction section, the initial mode
	DATA             // data declaration section
)

const (
	DataMarker = ".data"
	TextMarker = ".text"
)

// Returns a string representation of the Mode
func (m Mode) String() string {
	switch m {
	case DATA:
		return "data"
	default:
		return "text"
	}
}

// Line is a tokenized source line together with its position in the input
type Line struct {
	Number int      // 1-based line number in the source
	Tokens []string // mnemonic or name first, then operands
}

// Program holds the two token sequences produced by the splitter, in input order
type Program struct {
	Text []Line
	Data []Line
}

var delimiterRegex = regexp.MustCompile(`[ \t,]+`)

// Tokenize splits a line on runs of spaces and commas, dropping empty tokens
func Tokenize(line string) []string {
	tokens := make([]string, 0)
	for _, tok := range delimiterRegex.Split(line, -1) {
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// Split classifies every non-empty line as text or data. Marker lines switch
// the mode and are not emitted; a line containing both markers is a data marker.
func Split(lines []string) Program {
	var prog Program
	mode := TEXT

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if strings.Contains(line, DataMarker) {
			if strings.Contains(line, TextMarker) {
				log.Warn("Line holds both section markers, treating it as data", "line", i+1)
			}
			mode = DATA
			continue
		}
		if strings.Contains(line, TextMarker) {
			mode = TEXT
			continue
		}

		tokens := Tokenize(line)
		if len(tokens) == 0 {
			continue
		}

		l := Line{Number: i + 1, Tokens: tokens}
		if mode == DATA {
			prog.Data = append(prog.Data, l)
		} else {
			prog.Text = append(prog.Text, l)
		}
	}

	log.Debug("Split source", "text", len(prog.Text), "data", len(prog.Data))
	return prog
}

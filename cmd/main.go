package main

import (
	"flag"
	"fmt"
	"nova/internal/assembler"
	"nova/internal/logger"
	"nova/pkg/color"
	"os"

	"github.com/charmbracelet/log"
)

// Main entry point for the Nova assembler.
func main() {
	options := assembler.Assembler{}

	flag.BoolVar(&options.Help, "h", false, "Show help")
	flag.BoolVar(&options.Verbose, "v", false, "Verbose mode")
	flag.BoolVar(&options.NoColor, "n", false, "No color")
	flag.StringVar(&options.InstructionFile, "o", "", "Instruction output file (default instructions.txt next to the input)")
	flag.StringVar(&options.DataFile, "d", "", "Data output file (default data.txt next to the input)")
	flag.StringVar(&options.Overflow, "overflow", "fail", "Byte overflow policy (fail, wrap, wide)")

	flag.Parse()
	args := flag.Args()

	logger.Init(options.Verbose, options.NoColor)
	if options.Help {
		fmt.Printf("Usage: %s [options] [file]\n", os.Args[0])
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	options.SourceFile = assembler.DefaultSourceFile
	if len(args) > 0 {
		options.SourceFile = args[0]
	}

	if err := options.Assemble(); err != nil {
		fmt.Println(color.BrightRedText(color.BoldText("=== Assembly Failed ===")))
		log.Fatal("Assembly failed", "error", err)
	}
}

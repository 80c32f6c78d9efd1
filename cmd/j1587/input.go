package main

import (
	"fmt"
	"os"

	"github.com/truckbus/j1587/internal/hexfmt"
)

// readFrameBytes resolves the shared --hex/--input flags into raw bytes.
// An input file is binary unless hexFile is set, in which case its contents
// are parsed as hex text.
func readFrameBytes(hexInput, inputPath string, hexFile bool) ([]byte, error) {
	switch {
	case hexInput != "" && inputPath != "":
		return nil, fmt.Errorf("--hex and --input are mutually exclusive")
	case hexInput != "":
		return hexfmt.Parse(hexInput)
	case inputPath != "":
		raw, err := os.ReadFile(inputPath)
		if err != nil {
			return nil, err
		}
		if hexFile {
			return hexfmt.Parse(string(raw))
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("one of --hex or --input is required")
	}
}

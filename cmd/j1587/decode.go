package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/truckbus/j1587"
)

type decodeFlags struct {
	hexInput  string
	inputPath string
	hexFile   bool
}

func newDecodeCmd() *cobra.Command {
	flags := &decodeFlags{}

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a single frame",
		Long: `Decode parses one complete J1587 frame, verifies its checksum and
structure, and prints the message.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(flags)
		},
	}

	cmd.Flags().StringVar(&flags.hexInput, "hex", "", "Frame as hex text, e.g. \"C3 FF F5 0B ...\"")
	cmd.Flags().StringVar(&flags.inputPath, "input", "", "Read the frame from a file")
	cmd.Flags().BoolVar(&flags.hexFile, "hex-file", false, "Treat --input contents as hex text instead of binary")

	return cmd
}

func runDecode(flags *decodeFlags) error {
	raw, err := readFrameBytes(flags.hexInput, flags.inputPath, flags.hexFile)
	if err != nil {
		return err
	}
	msg, err := j1587.DecodeMessage(raw)
	if err != nil {
		return err
	}
	printMessage(os.Stdout, msg)
	return nil
}

func printMessage(w io.Writer, msg j1587.Message) {
	fmt.Fprintf(w, "MID:       %d (0x%02X)\n", msg.MID(), msg.MID())
	fmt.Fprintf(w, "Page:      %d\n", msg.Page())
	fmt.Fprintf(w, "Length:    %d bytes\n", msg.EncodedLen())
	fmt.Fprintf(w, "Checksum:  0x%02X\n", msg.Checksum())
	fmt.Fprintf(w, "Parameters:\n")
	for _, p := range msg.Parameters() {
		fmt.Fprintf(w, "  %s\n", p)
	}
}

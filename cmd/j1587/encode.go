package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/truckbus/j1587/internal/config"
	"github.com/truckbus/j1587/internal/hexfmt"
)

type encodeFlags struct {
	configPath string
	outputPath string
	format     string
}

func newEncodeCmd() *cobra.Command {
	flags := &encodeFlags{}

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a YAML frame file into wire bytes",
		Long: `Encode builds a J1587 message from a YAML frame file and emits its
exact wire byte sequence, checksum included.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(flags)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "YAML frame file to encode")
	cmd.Flags().StringVar(&flags.outputPath, "out", "", "Write output to file (default stdout)")
	cmd.Flags().StringVar(&flags.format, "format", "hex", "Output format: hex or bin")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runEncode(flags *encodeFlags) error {
	f, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	msg, err := f.Build()
	if err != nil {
		return err
	}
	raw := msg.Encode()

	switch flags.format {
	case "hex":
		out := hexfmt.Dump(raw) + "\n"
		if flags.outputPath == "" {
			fmt.Print(out)
			return nil
		}
		return os.WriteFile(flags.outputPath, []byte(out), 0o644)
	case "bin":
		if flags.outputPath == "" {
			return fmt.Errorf("binary output requires --out")
		}
		return os.WriteFile(flags.outputPath, raw, 0o644)
	default:
		return fmt.Errorf("unknown format %q (want hex or bin)", flags.format)
	}
}

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/truckbus/j1587"
	"github.com/truckbus/j1587/internal/logging"
)

type streamFlags struct {
	hexInput  string
	inputPath string
	hexFile   bool
	logFile   string
	verbose   int
}

func newStreamCmd() *cobra.Command {
	flags := &streamFlags{}

	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Decode back-to-back frames from a capture buffer",
		Long: `Stream decodes consecutive J1587 frames from a byte buffer, printing
each message with its byte offset. On the first frame that fails to decode
it reports the offset and stops; it never scans forward on its own.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStream(flags)
		},
	}

	cmd.Flags().StringVar(&flags.hexInput, "hex", "", "Buffer as hex text")
	cmd.Flags().StringVar(&flags.inputPath, "input", "", "Read the buffer from a file")
	cmd.Flags().BoolVar(&flags.hexFile, "hex-file", false, "Treat --input contents as hex text instead of binary")
	cmd.Flags().StringVar(&flags.logFile, "log", "", "Also write structured logs to a file")
	cmd.Flags().CountVarP(&flags.verbose, "verbose", "v", "Increase verbosity (-v, -vv)")

	return cmd
}

func runStream(flags *streamFlags) error {
	raw, err := readFrameBytes(flags.hexInput, flags.inputPath, flags.hexFile)
	if err != nil {
		return err
	}

	level := logging.LogLevelInfo
	switch {
	case flags.verbose >= 2:
		level = logging.LogLevelDebug
	case flags.verbose == 1:
		level = logging.LogLevelVerbose
	}
	logger, err := logging.NewLogger(level, flags.logFile)
	if err != nil {
		return err
	}
	defer logger.Close()

	dec := j1587.NewStreamDecoder(raw)
	count := 0
	for {
		start := dec.Offset()
		msg, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		var se *j1587.StreamError
		if errors.As(err, &se) {
			logger.Error("decode stopped at offset %d: %v", se.Offset, se.Err)
			return err
		}
		if err != nil {
			return err
		}
		fmt.Printf("%4d  %s\n", start, msg)
		logger.Debug("frame bytes at offset %d: % X", start, msg.Encode())
		count++
	}

	logger.Info("decoded %d frames, %d of %d bytes consumed", count, dec.Offset(), len(raw))
	return nil
}

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"termtap/internal/client"
	"termtap/internal/decoder"
	"termtap/internal/pathutil"
	"termtap/internal/system"
)

const (
	ModeHex    = "hex"
	ModeDecode = "decode"
)

var (
	termSize  int
	termMode  string
	termStdin bool
	termInput string
	termAddr  string
)

func init() {
	rootCmd.AddCommand(termCmd)
	termCmd.Flags().IntVar(&termSize, "size", 1000, "number of terminal bytes to fetch from the capture server")
	termCmd.Flags().StringVar(&termMode, "mode", ModeHex, "output mode: hex or decode")
	termCmd.Flags().BoolVar(&termStdin, "stdin", false, "read input from stdin instead of the capture server")
	termCmd.Flags().StringVar(&termInput, "input", "", "read input from a file instead of the capture server")
	termCmd.Flags().StringVarP(&termAddr, "addr", "a", "127.0.0.1:8789", "capture server address (host:port)")
}

var termCmd = &cobra.Command{
	Use:   "term [target]",
	Short: "Dump recent terminal output as hex or an annotated decode report",
	Args:  cobra.MaximumNArgs(1),
	RunE:  termRun,
}

func termRun(cmd *cobra.Command, args []string) error {
	// validate configuration before touching any input
	mode, err := resolveMode(termMode)
	if err != nil {
		return err
	}
	raw, err := readTermInput(cmd.Context(), args)
	if err != nil {
		return err
	}
	data := decoder.Normalize(raw)
	if mode == ModeDecode {
		fmt.Print(decoder.Decode(data))
	} else {
		fmt.Print(decoder.HexDump(data))
	}
	return nil
}

// readTermInput picks the byte source: stdin, a file, or the remote tail of
// a named target. Size validation applies to the remote source only.
func readTermInput(ctx context.Context, args []string) ([]byte, error) {
	if termStdin {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	if termInput != "" {
		path, err := pathutil.Expand(termInput)
		if err != nil {
			return nil, fmt.Errorf("resolving input path: %w", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading input file: %w", err)
		}
		return data, nil
	}
	if err := validateSize(termSize); err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("target name required (or use --stdin / --input)")
	}
	target := args[0]
	system.Logger.Debug("fetching tail", "target", target, "size", termSize, "addr", termAddr)
	data, err := client.New(termAddr).Tail(ctx, target, termSize)
	if err != nil {
		return nil, fmt.Errorf("reading terminal output: %w", err)
	}
	return data, nil
}

func resolveMode(mode string) (string, error) {
	m := strings.ToLower(mode)
	if m != ModeHex && m != ModeDecode {
		return "", fmt.Errorf("invalid mode %q (expected %q or %q)", mode, ModeHex, ModeDecode)
	}
	return m, nil
}

func validateSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("size must be greater than 0")
	}
	return nil
}

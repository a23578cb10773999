// unisay - Speech-bubble unicorn for your terminal
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/unisay

// Package cli provides the cobra-based command surface for unisay: flag
// parsing and validation, config/flag merging, the stdin fallback read, and
// the usage and exit-code behavior.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/unisay/internal/art"
	"github.com/ariel-frischer/unisay/internal/config"
	clierrors "github.com/ariel-frischer/unisay/internal/errors"
	"github.com/ariel-frischer/unisay/internal/layout"
	"github.com/ariel-frischer/unisay/internal/terminal"
	"github.com/ariel-frischer/unisay/internal/wrap"
)

// Version information - set via ldflags during build
var Version = "dev"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unisay [message]",
		Short: "A unicorn speaks your message in the terminal",
		Long: `unisay prints a message in a speech bubble beside (or above) an ASCII
unicorn, sized to fit the current terminal.

The message comes from the positional arguments or from piped stdin.
Defaults for every flag can be set in ~/.unisay/config.json or via
UNISAY_* environment variables.`,
		Example: `  # Side-by-side, size picked from the terminal
  unisay "Hello there"

  # Piped input, bubble stacked above a small unicorn on the right
  fortune | unisay --above --art=small --side=right`,
		Args:          cobra.ArbitraryArgs,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}

	cmd.Flags().Bool("above", false, "Stack the bubble above the unicorn")
	cmd.Flags().String("art", "", "Force the unicorn size: big or small")
	cmd.Flags().String("side", "", "Force the unicorn side: left or right")
	cmd.Flags().Bool("no-strip-ansi", false, "Keep ANSI escape sequences in the message")

	return cmd
}

// Execute runs the root command and returns an error carrying the process
// exit code. Flag parse errors surface here because SilenceErrors is set,
// so they are printed before being converted.
func Execute() error {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if _, ok := err.(*exitError); !ok {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		return NewExitError(ExitUsage)
	}
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load("")
	if err != nil {
		clierrors.FprintError(cmd.ErrOrStderr(), clierrors.ConfigLoadFailed(err))
		return NewExitError(ExitUsage)
	}

	// Flags override config.
	if cmd.Flags().Changed("art") {
		cfg.Art, _ = cmd.Flags().GetString("art")
	}
	if cmd.Flags().Changed("side") {
		cfg.Side, _ = cmd.Flags().GetString("side")
	}
	if above, _ := cmd.Flags().GetBool("above"); above {
		cfg.Above = true
	}
	if noStrip, _ := cmd.Flags().GetBool("no-strip-ansi"); noStrip {
		cfg.StripANSI = false
	}

	opts := layout.Options{Above: cfg.Above}
	if cfg.Art != "" {
		size, err := art.ParseSize(cfg.Art)
		if err != nil {
			clierrors.FprintError(cmd.ErrOrStderr(), clierrors.InvalidArtValue())
			return NewExitError(ExitUsage)
		}
		opts.Size, opts.ForceSize = size, true
	}
	if cfg.Side != "" {
		side, err := art.ParseSide(cfg.Side)
		if err != nil {
			clierrors.FprintError(cmd.ErrOrStderr(), clierrors.InvalidSideValue())
			return NewExitError(ExitUsage)
		}
		opts.Side = side
	}

	// Config validation guarantees a known mode; fall back to greedy anyway.
	mode, err := wrap.ParseMode(cfg.Wrap)
	if err != nil {
		mode = wrap.Greedy
	}

	message := readMessage(cmd, args)
	if strings.TrimSpace(message) == "" {
		fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
		return NewExitError(ExitUsage)
	}
	if cfg.StripANSI {
		message = wrap.StripANSI(message)
	}

	caps := terminal.Detect()
	decision := layout.Decide(opts, caps.Width, caps.Height)

	out := cmd.OutOrStdout()
	for _, line := range layout.Render(message, mode, decision, caps.Width) {
		fmt.Fprintln(out, line)
	}
	return nil
}

// readMessage joins the positional arguments into the message, falling back
// to piped stdin when no arguments were given.
func readMessage(cmd *cobra.Command, args []string) string {
	if len(args) > 0 {
		return strings.Join(args, " ")
	}
	if !terminal.StdinIsPipe() {
		return ""
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return ""
	}
	return strings.TrimRight(string(data), "\n")
}

// Package cli binds the command-line surface to a chip8.Emulator
// configuration, replacing the teacher's bare flag.BoolVar parsing
// with spf13/cobra while keeping the same surface: PROG [rom]
// [-p platform] [-i interpreter] [--version].
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/user-none/chip8x/chip8"
)

// Version is stamped at build time via -ldflags; "dev" otherwise.
var Version = "dev"

// Options is the fully resolved configuration a host builds an
// Emulator from: the ROM path, the platform parsed from its tag, and
// the interpreter kind. It carries no quirk or tickrate overrides.
type Options struct {
	ROMPath     string
	Platform    chip8.Platform
	Interpreter chip8.InterpreterKind
}

// Run parses args (normally os.Args[1:]) and invokes fn with the
// resolved Options. Run returns whatever error cobra's Execute
// produces (bad flags, etc.); fn's own error is returned unwrapped.
func Run(args []string, fn func(Options) error) error {
	var platformTag string
	var interpreterTag string

	root := &cobra.Command{
		Use:     "chip8x [rom]",
		Short:   "A CHIP-8 / XO-CHIP interpreter",
		Version: Version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := Options{}
			if len(args) == 1 {
				opts.ROMPath = args[0]
			}

			platform, ok := chip8.ParsePlatform(platformTag)
			if !ok {
				return fmt.Errorf("unrecognized platform %q", platformTag)
			}
			opts.Platform = platform

			kind, ok := chip8.ParseInterpreterKind(interpreterTag)
			if !ok {
				return fmt.Errorf("unrecognized interpreter %q", interpreterTag)
			}
			opts.Interpreter = kind

			return fn(opts)
		},
	}

	root.Flags().StringVarP(&platformTag, "platform", "p", chip8.OriginalChip8.String(), "target platform (originalChip8, hybridVIP, modernChip8, chip8x, chip48, superchip1, superchip, megachip8, xochip)")
	root.Flags().StringVarP(&interpreterTag, "interpreter", "i", "cached", "interpreter kind (cached, pure)")
	root.SetArgs(args)

	return root.Execute()
}

// Main is the convenience entry point cmd/chip8x's main() calls.
func Main(fn func(Options) error) {
	if err := Run(os.Args[1:], fn); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

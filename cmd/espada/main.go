package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/espada/internal/cli"
	"codeberg.org/snonux/espada/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// newProcessor runs after flags and config are applied
	newProcessor := func() *processor.Processor {
		return processor.NewProcessor(flags, cli.NewLogger(flags.LogLevel, flags.LogFormat))
	}

	rootCmd := cli.CreateRootCommand(flags, cli.Actions{
		Transcribe: func(cmd *cobra.Command, args []string) error {
			proc := newProcessor()
			if len(args) > 0 {
				return proc.ProcessArgs(cmd.Context(), args)
			}
			return proc.ProcessBatch(cmd.Context())
		},
		Prepare: func(cmd *cobra.Command, args []string) error {
			return newProcessor().Prepare(cmd.Context())
		},
		Chunk: func(cmd *cobra.Command, args []string) error {
			return newProcessor().Chunk(args[0])
		},
		Models: func(cmd *cobra.Command, args []string) error {
			return newProcessor().ListModels(cmd.Context())
		},
	})

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Interrupt stops a running batch
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Execute command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

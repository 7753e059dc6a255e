package main

import "fmt"

import "github.com/spf13/cobra"

import "github.com/neurlang/nnrun/config"
import "github.com/neurlang/nnrun/logging"
import "github.com/neurlang/nnrun/model"
import "github.com/neurlang/nnrun/params"
import "github.com/neurlang/nnrun/trainer"

type loadFunc func() (*params.FeedforwardTrainingParams, error)

// NewRootCommand returns the nnrun command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	var configPath, logLevel string
	var jsonLogs bool

	root := &cobra.Command{
		Use:          "nnrun",
		Short:        "Describe, resolve and prepare neural network training runs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if jsonLogs {
				logging.UseJSON()
			}
			if !logging.SetLevel(logLevel) {
				return fmt.Errorf("unknown log level %q", logLevel)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "config file (env "+config.PathEnv+")")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	root.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "log as JSON")

	load := func() (*params.FeedforwardTrainingParams, error) {
		manager := config.NewFileManager(configPath)
		if err := manager.Load(); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", configPath, err)
		}
		return manager.Params()
	}

	root.AddCommand(
		initCommand(&configPath),
		describeCommand(load),
		resolveCommand(load),
		prepareCommand(load),
	)
	return root
}

func initCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.Default().ToParams()
			if err != nil {
				return err
			}
			if err := config.NewFileManager(*configPath).SetParams(p); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", *configPath)
			return nil
		},
	}
}

func describeCommand(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print the training parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := load()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), params.DescribeFeedforward(p))
			return nil
		},
	}
}

func resolveCommand(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Print the model building strategy for the configured architecture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := load()
			if err != nil {
				return err
			}
			s, err := model.ResolveStrategy(p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.Name())
			return nil
		},
	}
}

func prepareCommand(load loadFunc) *cobra.Command {
	var outputBits uint8
	var strictSplit bool
	cmd := &cobra.Command{
		Use:   "prepare",
		Short: "Build the untrained network and optimizer for the run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := load()
			if err != nil {
				return err
			}
			if strictSplit {
				if err := params.CheckSplit(p.Split); err != nil {
					return err
				}
			}
			run, err := trainer.Prepare(p, outputBits)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run:%s\n", run.ID)
			fmt.Fprintf(out, "Strategy:%s\n", run.Strategy.Name())
			fmt.Fprintf(out, "Layers:%v\n", run.Network.Widths())
			fmt.Fprintf(out, "Hashtrons:%d\n", run.Network.Len())
			fmt.Fprintf(out, "Optimizer:%s lr=%g\n", run.Optimizer.Name, run.Optimizer.LearningRate)
			fmt.Fprintf(out, "Backend:%s\n", run.Device.Backend)
			return nil
		},
	}
	cmd.Flags().Uint8Var(&outputBits, "output-bits", 1, "bits predicted by the final layer")
	cmd.Flags().BoolVar(&strictSplit, "strict-split", true, "require the split fractions to sum up to 1")
	return cmd
}

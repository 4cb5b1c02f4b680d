// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command phfwd queries and edits a phone number forwarding registry.
//
// The registry is seeded from a YAML rules file and lives only for
// the duration of the command.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/gaissmai/phfwd"
)

// app is the state shared by all subcommands.
type app struct {
	v   *viper.Viper
	cfg *Config
	log *zap.Logger
	fwd *phfwd.Forwarder

	// flags
	configFile string
	verbose    bool
	asJSON     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd wires the command tree, the output of all
// subcommands goes to cmd.OutOrStdout().
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "phfwd",
		Short: "Phone number forwarding registry",
		Long: `phfwd resolves phone numbers against a set of prefix forwardings.

A forwarding maps a source prefix to a target prefix. Every number
starting with the source is forwarded to the same number with the
source replaced by the target. Only the longest matching source applies.

Numbers are made of the symbols 0-9, * and #.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default ./phfwd.yaml)")
	flags.String("rules", "", "YAML file with the initial forwardings")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	_ = a.v.BindPFlag("rules", flags.Lookup("rules"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))

	getCmd := &cobra.Command{
		Use:   "get NUMBER...",
		Short: "Print the forwarding of each number",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.query(cmd.OutOrStdout(), args, a.fwd.Get)
		},
	}

	reverseCmd := &cobra.Command{
		Use:   "reverse NUMBER...",
		Short: "Print all numbers a single forwarding maps to each number",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.query(cmd.OutOrStdout(), args, a.fwd.Reverse)
		},
	}

	getReverseCmd := &cobra.Command{
		Use:   "get-reverse NUMBER...",
		Short: "Print all numbers forwarded to each number",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.query(cmd.OutOrStdout(), args, a.fwd.GetReverse)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print all forwardings as tree",
		Args:  cobra.NoArgs,
		RunE:  a.list,
	}
	listCmd.Flags().BoolVar(&a.asJSON, "json", false, "print as JSON")

	runCmd := &cobra.Command{
		Use:   "run [SCRIPT]",
		Short: "Execute a command script from a file or stdin",
		Long: `Executes one command per line:

  ADD src dst    register a forwarding
  DEL prefix     remove all forwardings below prefix
  GET num        print the forwarding of num
  REV num        print the reverse forwardings of num
  GETREV num     print all numbers forwarded to num
  LIST           print all forwardings as tree

Each query prints a single line, multiple numbers are space separated.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.run,
	}

	rootCmd.AddCommand(getCmd, reverseCmd, getReverseCmd, listCmd, runCmd)
	return rootCmd
}

// setup loads the config, builds the logger and seeds the registry.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(a.v, a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.log, err = newLogger(cfg.Log, a.verbose); err != nil {
		return err
	}

	a.fwd = phfwd.New(phfwd.WithLogger(a.log.Named("registry")))

	if cfg.Rules == "" {
		return nil
	}

	rules, err := loadRules(cfg.Rules)
	if err != nil {
		return err
	}
	if err := rules.apply(a.fwd); err != nil {
		return fmt.Errorf("%s: %w", cfg.Rules, err)
	}

	a.log.Debug("rules loaded",
		zap.String("file", cfg.Rules),
		zap.Int("forwardings", a.fwd.Len()),
		zap.Int("nodes", a.fwd.NodeCount()))

	return nil
}

// query prints the result of fn for each number on its own line.
func (a *app) query(w io.Writer, nums []string, fn func(string) *phfwd.Numbers) error {
	for _, num := range nums {
		if err := printNumbers(w, fn(num)); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) list(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	if !a.asJSON {
		return a.fwd.Fprint(w)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(a.fwd)
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()

	if len(args) == 1 && args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
	}

	return runScript(in, cmd.OutOrStdout(), a.fwd, a.log)
}

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/chartparse/config"
)

const version = "0.1.0"

// app carries the global flags and the settings resolved from them.
type app struct {
	configPath string
	verbosity  int
	logFile    string

	cfg config.Config
	log commonlog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}

	rootCmd := &cobra.Command{
		Use:           "chartparse",
		Short:         "Earley chart recognizers for context-free grammars",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "TOML configuration file")
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().StringVar(&a.logFile, "log", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newRecognizeCmd(a))
	rootCmd.AddCommand(newBatchCmd(a))
	rootCmd.AddCommand(newDemoCmd(a))
	rootCmd.AddCommand(newBenchCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newLSPCmd(a))

	return rootCmd
}

// setup loads the config file and configures logging. Flags given on the
// command line win over the file.
func (a *app) setup(cmd *cobra.Command) error {
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if cmd.Flags().Changed("verbose") {
		a.cfg.Log.Verbosity = a.verbosity
	}
	if cmd.Flags().Changed("log") {
		a.cfg.Log.File = a.logFile
	}

	var path *string
	if a.cfg.Log.File != "" {
		path = &a.cfg.Log.File
	}
	commonlog.Configure(a.cfg.Log.Verbosity, path)
	a.log = commonlog.GetLogger("chartparse.cli")
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Stderr.WriteString("chartparse: " + err.Error() + "\n")
		os.Exit(1)
	}
}

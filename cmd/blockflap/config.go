package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/blockflap/internal/config"
)

var flagConfigEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in default configuration as YAML, ready to be saved as
~/.blockflap/config.yaml and edited.

With --effective, print the configuration that would actually be used after
the search path (--config, ~/.blockflap/config.yaml,
./configs/blockflap.yaml, built-in defaults) is applied.

Examples:
  blockflap config > ~/.blockflap/config.yaml
  blockflap config --effective --config ./slow.toml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigEffective, "effective", false, "Print the resolved configuration")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagConfigEffective {
		//nolint:errcheck // Nothing useful to do if stdout is gone
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatalf("%v", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		fatalf("encoding config: %v", err)
	}
	fmt.Print(string(data))
}

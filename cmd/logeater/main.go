// Command logeater infers schema skeletons from sample log records and bulk
// extracts chosen fields from heterogeneous JSON logs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jjustinm4/logEater/internal/config"
	"github.com/jjustinm4/logEater/internal/llm/ollama"
	"github.com/jjustinm4/logEater/internal/logging"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "logeater:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:     "logeater",
		Short:   "Schema-skeleton inference and field extraction for messy JSON logs",
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg := config.Load()
			if logLevel == "" {
				logLevel = cfg.Log.Level
			}
			// Machine output (JSON rows on stdout) only happens in extract.
			logging.Setup(logLevel, cmd.Name() == "extract")
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newRegisterCmd())
	root.AddCommand(newExtractCmd())
	root.AddCommand(newSearchCmd())
	root.AddCommand(newInsightCmd())
	return root
}

// newLLMClient builds the Ollama client from config.
func newLLMClient(cfg config.Config) *ollama.Client {
	return ollama.New(cfg.LLM.BaseURL, ollama.WithTimeout(cfg.LLM.Timeout))
}

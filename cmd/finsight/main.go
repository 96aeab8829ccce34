package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "finsight",
	Short: "FINSIGHT - financial assistant with specialist routing",
	Long: `FINSIGHT is a demonstration financial assistant. Queries are routed to a
specialist persona (stocks, portfolio, news, currency) backed by deterministic
financial calculators, with the conversation driven by a configurable LLM.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug mode")
}

func main() {
	// Provider keys commonly live in a .env file; absence is fine.
	godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

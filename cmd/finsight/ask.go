package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oakmund/finsight/internal/logger"
)

var showRoute bool

var askCmd = &cobra.Command{
	Use:   "ask [query]",
	Short: "Ask a single question and print the answer",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&showRoute, "route", false, "print the routing target and specialist")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	log := logger.Must(debug)
	defer log.Sync()

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	asst := buildAssistant(cfg, nil, log)
	query := strings.Join(args, " ")

	if showRoute {
		route, specialistName := asst.Route(query)
		fmt.Printf("route: %s (%s)\n", route, specialistName)
	}

	fmt.Println(asst.Respond(cmd.Context(), query, nil))
	return nil
}

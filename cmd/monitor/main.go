package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/dmitrijs2005/loadwatch/internal/client/api"
	"github.com/dmitrijs2005/loadwatch/internal/client/config"
	"github.com/dmitrijs2005/loadwatch/internal/client/monitor"
	"github.com/dmitrijs2005/loadwatch/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stdout)

	if cfg.Username == "" {
		fmt.Fprintln(os.Stderr, "username is required (--username)")
		return 1
	}
	if cfg.Password == "" {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "password is required (--password)")
			return 1
		}
		fmt.Print("Enter password: ")
		pw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read password: %v\n", err)
			return 1
		}
		cfg.Password = string(pw)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	client := api.NewHTTPClient(cfg.APIURL, cfg.Timeout)
	m := monitor.New(cfg, client, logger)

	if err := m.Run(ctx); err != nil {
		logger.Error(ctx, err.Error())
		return 1
	}
	return 0
}

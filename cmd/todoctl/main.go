package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/GoSim-25-26J-441/todo-backend/internal/todoctl"
	"github.com/GoSim-25-26J-441/todo-backend/internal/todos/client"
)

func main() {
	configPath := flag.String("config", todoctl.DefaultConfigPath(), "path to config.toml")
	serverURL := flag.String("server", "", "todo API base URL (overrides config and TODOS_URL)")
	flag.Parse()

	cfg, err := todoctl.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if env := os.Getenv("TODOS_URL"); env != "" {
		cfg.ServerURL = env
	}
	if *serverURL != "" {
		cfg.ServerURL = *serverURL
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	api := client.New(cfg.ServerURL, cfg.Timeout.Duration)
	code := todoctl.Run(ctx, api, flag.Args(), todoctl.Options{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
	stop()
	os.Exit(code)
}

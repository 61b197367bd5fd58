package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jira_mcp/internal/config"
	"jira_mcp/internal/logger"
	"jira_mcp/internal/service/jira"
	mcpserver "jira_mcp/internal/service/mcp-server"
)

var (
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "jira-mcp",
	Short: "MCP server exposing Jira search, issue and comment tools",
	Long: `jira-mcp is an MCP (Model Context Protocol) server that lets an agent
search Jira with JQL, inspect issues and their children, read and add
comments, and update issue fields. The protocol runs on stdin/stdout;
all logging goes to stderr.`,
	SilenceUsage: true,
	RunE:         runServer,
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "path to a config file (default: jira-mcp.yaml in the working directory)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	client := jira.NewClient(cfg)
	s, err := mcpserver.NewServer(client)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	logger.Log.Info("Starting Jira MCP server...",
		zap.String("base_url", cfg.BaseURL),
		zap.Duration("request_timeout", cfg.RequestTimeout))

	return mcpserver.Serve(s)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

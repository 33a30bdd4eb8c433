package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/naag/gh-project-mcp/internal/config"
	"github.com/naag/gh-project-mcp/internal/github"
	"github.com/naag/gh-project-mcp/internal/metrics"
	"github.com/naag/gh-project-mcp/internal/server"
	"github.com/naag/gh-project-mcp/internal/tools"
)

var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "gh-project-mcp",
	Short:        "MCP server for managing GitHub projects (v2)",
	Version:      version,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Configure logging based on verbose level. stdout belongs to the
		// stdio transport, so logs always go to stderr.
		level := slog.LevelInfo
		if verboseLevel >= 1 {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)

		config.LoadEnv(envFiles...)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the GitHub project tools over MCP (stdio by default)",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the available operations",
	Args:  cobra.NoArgs,
	RunE:  runTools,
}

var callCmd = &cobra.Command{
	Use:   "call <operation>",
	Short: "Run a single operation and print its JSON result",
	Args:  cobra.ExactArgs(1),
	RunE:  runCall,
}

var (
	verboseLevel int
	envFiles     []string
	token        string
	endpoint     string
	timeout      time.Duration
	writeFields  bool
	httpAddr     string
	callArgs     []string
	callFields   []string
)

func init() {
	rootCmd.AddCommand(serveCmd, toolsCmd, callCmd)

	rootCmd.PersistentFlags().CountVarP(&verboseLevel, "verbose", "v", "Verbosity level (-v for debug logs, -vv for debug logs and HTTP traffic)")
	rootCmd.PersistentFlags().StringArrayVar(&envFiles, "env-file", nil, "Env file to load before reading the environment (default .env, can be specified multiple times)")

	for _, cmd := range []*cobra.Command{serveCmd, callCmd} {
		cmd.Flags().StringVar(&token, "token", "", "GitHub token (defaults to $GITHUB_TOKEN)")
		cmd.Flags().StringVar(&endpoint, "endpoint", "", "GitHub GraphQL endpoint (defaults to $GITHUB_GRAPHQL_URL or "+github.DefaultEndpoint+")")
		cmd.Flags().DurationVar(&timeout, "timeout", 0, "Timeout of a single GitHub request (defaults to $GITHUB_TIMEOUT or 30s)")
		cmd.Flags().BoolVar(&writeFields, "write-fields", false, "Persist field values on update_project_item instead of echoing them (or $GH_PROJECT_WRITE_FIELDS)")
	}

	serveCmd.Flags().StringVar(&httpAddr, "http", "", "Serve streamable HTTP on this address instead of stdio (or $MCP_HTTP_ADDR)")

	callCmd.Flags().StringArrayVar(&callArgs, "arg", nil, "Argument in the format 'name=value' (can be specified multiple times)")
	callCmd.Flags().StringArrayVar(&callFields, "field", nil, "Field update in the format 'field=value' for update_project_item (can be specified multiple times)")
}

func newClient(cmd *cobra.Command) (*github.GraphQLClient, error) {
	cfg := github.Config{
		Token:       token,
		Endpoint:    endpoint,
		Timeout:     timeout,
		Debug:       verboseLevel >= 2,
		WriteFields: writeFields,
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = config.GetEnv("GITHUB_GRAPHQL_URL", github.DefaultEndpoint)
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = config.GetEnvDuration("GITHUB_TIMEOUT", github.DefaultTimeout)
	}
	if !cmd.Flags().Changed("write-fields") {
		cfg.WriteFields = config.GetEnvBool("GH_PROJECT_WRITE_FIELDS", false)
	}

	client, err := github.NewGraphQLClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize GitHub client: %w", err)
	}
	return client, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	dispatcher := server.NewDispatcher(client, metrics.New(reg))
	mcpServer := server.NewMCPServer(dispatcher, version)

	addr := httpAddr
	if addr == "" {
		addr = config.GetEnv("MCP_HTTP_ADDR", "")
	}
	if addr == "" {
		return server.ServeStdio(ctx, mcpServer)
	}
	return server.ServeHTTP(ctx, addr, server.HTTPHandler(mcpServer, reg))
}

func runTools(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, op := range tools.All() {
		fmt.Fprintf(out, "%s\t%s\n", op.Name, op.Description)
	}
	return nil
}

func runCall(cmd *cobra.Command, args []string) error {
	name := args[0]
	if _, ok := tools.Lookup(name); !ok {
		return fmt.Errorf("%w: %s", tools.ErrUnknownOperation, name)
	}

	callArguments, err := ParseArguments(callArgs)
	if err != nil {
		return err
	}
	if len(callFields) > 0 {
		updates, err := ParseFieldUpdates(callFields)
		if err != nil {
			return err
		}
		callArguments["field_updates"] = updates
	}

	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	result, err := server.NewDispatcher(client, nil).Call(context.Background(), name, callArguments)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

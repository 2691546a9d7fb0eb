// linear-pm: AI Project Manager for Linear
//
// An MCP server (stdio transport) that gives any MCP-speaking agent
// read and write access to a Linear workspace: issues, projects,
// documents, milestones, project updates, comments, and labels.
//
// Usage:
//
//	linear-pm serve [config.yaml]   # Hydrate the workspace and serve
//	linear-pm version
//
// Requires a LINEAR_API_KEY in the environment or an api_key in the
// optional config file.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/zcaceres/ai-project-manager/internal/config"
	pmserver "github.com/zcaceres/ai-project-manager/internal/server"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		configPath := ""
		if len(os.Args) > 2 {
			configPath = os.Args[2]
		}
		if err := run(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "--help", "-h", "help":
		printUsage()
	case "--version", "-v", "version":
		fmt.Printf("linear-pm v%s\n", pmserver.Version)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	s, err := pmserver.New(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	return server.ServeStdio(s)
}

func printUsage() {
	fmt.Println(`linear-pm - AI Project Manager for Linear (MCP server)

Usage:
  linear-pm serve [config.yaml]   Hydrate the workspace and serve over stdio
  linear-pm version               Print version
  linear-pm help                  Show this help

Configuration:
  LINEAR_API_KEY   Linear API key (required unless set in config.yaml)

The optional YAML config file accepts:
  api_key:    Linear API key (overrides the environment)
  endpoint:   GraphQL endpoint override`)
}

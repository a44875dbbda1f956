package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"github.com/meltforce/ftracker/internal/ingest"
	"github.com/meltforce/ftracker/internal/ingest/sensor"
	ftmcp "github.com/meltforce/ftracker/internal/mcp"
	"github.com/meltforce/ftracker/internal/upload"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	inputPath := flag.String("input", "", "YAML or JSON package list (default: built-in sample packages)")
	serverURL := flag.String("server", "", "compute on a remote ftracker server instead of locally")
	apiKey := flag.String("api-key", os.Getenv("FTRACKER_API_KEY"), "API key for -server (env FTRACKER_API_KEY)")
	serveMCP := flag.Bool("mcp", false, "serve MCP over stdio instead of printing summaries")
	verbose := flag.Bool("v", false, "debug logging")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("ftracker", Version)
		return
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	// stdout carries summaries (or the MCP stream), so logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var client *upload.Client
	if *serverURL != "" {
		client = upload.NewClient(*serverURL, *apiKey)
	}
	provider := sensor.NewProvider(log)

	if *serveMCP {
		var c ftmcp.Computer = provider
		if client != nil {
			c = client
		}
		log.Info("serving MCP over stdio", "remote", *serverURL)
		if err := server.ServeStdio(ftmcp.New(c, Version, log)); err != nil {
			log.Error("mcp server error", "error", err)
			os.Exit(1)
		}
		return
	}

	pkgs := sensor.DemoPackages()
	if *inputPath != "" {
		var err error
		pkgs, err = sensor.LoadFile(*inputPath)
		if err != nil {
			log.Error("failed to load packages", "error", err)
			os.Exit(1)
		}
	}

	var result *ingest.Result
	var err error
	if client != nil {
		result, err = client.ComputeBatch(ctx, pkgs)
	} else {
		result, err = provider.Ingest(ctx, pkgs)
	}

	printReports(os.Stdout, result)
	if err != nil {
		var pkgErr *ingest.PackageError
		if errors.As(err, &pkgErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", pkgErr)
		} else {
			log.Error("compute failed", "error", err)
		}
		os.Exit(1)
	}
}

func printReports(w io.Writer, result *ingest.Result) {
	if result == nil {
		return
	}
	var b strings.Builder
	for _, r := range result.Reports {
		b.WriteString(r.Message)
		b.WriteByte('\n')
	}
	io.WriteString(w, b.String())
}

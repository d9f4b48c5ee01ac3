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
	"path/filepath"
	"syscall"

	"github.com/eytandecker/fdmscene/internal/config"
	internalmcp "github.com/eytandecker/fdmscene/internal/mcp"
	"github.com/eytandecker/fdmscene/internal/state"
)

const usage = `Usage:
  fdmscene serve
      Run the MCP server over stdio.
  fdmscene import [-format text|yaml|json] [-no-color] <file.xml>...
      Import FDM files into one scene and print it.
`

func main() {
	os.Exit(runWithArgs(os.Args[1:], os.Stdout, os.Stderr))
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
	slog.SetDefault(log)

	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}
	switch args[0] {
	case "serve":
		if err := serve(cfg, log); err != nil {
			log.Error("MCP server exited", "err", err)
			return 1
		}
		return 0
	case "import":
		return runImport(cfg, log, args[1:], stdout, stderr)
	default:
		fmt.Fprintf(stderr, "error: unknown command %q\n\n%s", args[0], usage)
		return 2
	}
}

func serve(cfg config.Config, log *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	mgr := state.NewManager(cfg.Scene, log)
	srv := internalmcp.NewServer(mgr, internalmcp.Options{
		Name:     cfg.Server.Name,
		Files:    os.DirFS(cfg.Server.DataDir),
		Defaults: cfg.Import,
	})
	log.Info("serving MCP over stdio", "data_dir", cfg.Server.DataDir)

	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func runImport(cfg config.Config, log *slog.Logger, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", "text", "output format: text, yaml or json")
	noColor := fs.Bool("no-color", false, "disable coloured text output")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "error: at least one XML file argument is required")
		return 2
	}
	switch *format {
	case "text", "yaml", "json":
	default:
		fmt.Fprintf(stderr, "error: unknown format %q\n", *format)
		return 2
	}

	mgr := state.NewManager(cfg.Scene, log)
	failed := false
	for _, p := range fs.Args() {
		abs, err := filepath.Abs(p)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			failed = true
			continue
		}
		sum, err := mgr.Import(os.DirFS(filepath.Dir(abs)), filepath.Base(abs), cfg.Import)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			failed = true
			continue
		}
		if *format == "text" {
			fmt.Fprintf(stdout, "Imported %s as %s in %.3f ms: %d groups, %d markers\n",
				p, sum.SessionID, sum.ElapsedMS, sum.Groups, sum.Markers)
			for _, w := range sum.Warnings {
				fmt.Fprintf(stdout, "  warning: %s\n", w.Message)
			}
		}
	}

	if err := writeScene(stdout, mgr.Snapshot(), *format, !*noColor); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if failed {
		return 1
	}
	return 0
}

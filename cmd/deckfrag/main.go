// Command deckfrag applies automatic progressive-reveal fragments to a
// presentation deck. It reads an HTML or markdown deck, runs the fragment
// pass and writes the result, optionally serving it for preview.
package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/dgallion1/deckfrag/internal/config"
	"github.com/dgallion1/deckfrag/internal/deck"
	"github.com/dgallion1/deckfrag/internal/fragments"
	"github.com/dgallion1/deckfrag/internal/server"
	flag "github.com/spf13/pflag"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		output     = flag.StringP("output", "o", "", "output file (default stdout)")
		configPath = flag.String("config", "", "config file (default "+config.FileName+" if present)")
		preview    = flag.Bool("serve", false, "serve the processed deck for preview instead of writing it")
		title      = flag.String("title", "", "deck title for markdown input (default: input file name)")

		skip     = flag.Int("skip", 0, "leading siblings excluded from fragment behavior")
		start    = flag.Int("start", 0, "first fragment index")
		step     = flag.Int("step", 0, "index increment between fragments")
		relative = flag.Bool("relative", false, "treat --start as an offset on an ancestor's index")
		disable  = flag.Bool("disable", false, "disable auto-fragmenting except where directives enable it")
	)
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: deckfrag [flags] <deck.html|deck.md>")
		flag.PrintDefaults()
		return 2
	}
	input := flag.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("invalid configuration", "error", err)
		return 1
	}

	// Command-line overrides win over config file and environment.
	global := cfg.Global
	if flag.CommandLine.Changed("skip") {
		global.Skip = skip
	}
	if flag.CommandLine.Changed("start") {
		global.IndexStart = start
	}
	if flag.CommandLine.Changed("step") {
		global.IndexStep = step
	}
	if flag.CommandLine.Changed("relative") {
		global.InitRelative = relative
	}
	if *disable {
		enabled := false
		global.Enabled = &enabled
	}

	d, err := loadDeck(input, *title)
	if err != nil {
		log.Error("loading deck failed", "path", input, "error", err)
		return 1
	}

	fragments.Process(d.Doc, d.Slides, global, log)

	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		log.Error("rendering deck failed", "error", err)
		return 1
	}

	if *preview {
		return serve(cfg.Addr, buf.Bytes(), log)
	}

	if *output == "" {
		if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
			log.Error("writing deck failed", "error", err)
			return 1
		}
		return 0
	}
	if err := os.WriteFile(*output, buf.Bytes(), 0o644); err != nil {
		log.Error("writing deck failed", "path", *output, "error", err)
		return 1
	}
	log.Info("deck written", "path", *output, "slides", len(d.Slides))
	return 0
}

func loadDeck(path, title string) (*deck.Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		if title == "" {
			title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		return deck.LoadMarkdown(f, title)
	default:
		return deck.Load(f)
	}
}

func serve(addr string, rendered []byte, log *slog.Logger) int {
	srv := server.NewServer(rendered, log)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      srv,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("serving deck", "addr", addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		return 1
	}
	return 0
}

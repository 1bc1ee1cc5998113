// Command docchunk splits documents into overlapping chunks and writes
// them as JSONL, or indexes them into an embedded chromem vector database
// using Ollama embeddings.
//
// Usage:
//
//	docchunk [flags] file...
//
// Configuration is read from the environment (optionally via a .env file):
// CHUNK_SIZE, CHUNK_OVERLAP, OVERLAP_PERCENTAGE, DATA_DIR, OLLAMA_URL,
// OLLAMA_EMBED_MODEL.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	chromem "github.com/philippgille/chromem-go"

	"github.com/tsawler/docchunk"
	"github.com/tsawler/docchunk/chunk"
	"github.com/tsawler/docchunk/sink"
)

type config struct {
	ChunkSize         int     `env:"CHUNK_SIZE" envDefault:"1000"`
	ChunkOverlap      int     `env:"CHUNK_OVERLAP" envDefault:"200"`
	OverlapPercentage float64 `env:"OVERLAP_PERCENTAGE" envDefault:"0.2"`
	DataDir           string  `env:"DATA_DIR" envDefault:"./data"`
	OllamaURL         string  `env:"OLLAMA_URL" envDefault:"http://localhost:11434"`
	OllamaEmbedModel  string  `env:"OLLAMA_EMBED_MODEL" envDefault:"nomic-embed-text"`
}

func main() {
	output := flag.String("out", "", "Write chunk records as JSONL to this file (default: stdout)")
	index := flag.Bool("index", false, "Index chunks into a chromem vector database instead of exporting")
	collection := flag.String("collection", "chunks", "Vector database collection name")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("Error: no input files\nUsage: docchunk [flags] file...")
	}

	// .env is optional.
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	pcfg := docchunk.DefaultConfig()
	pcfg.Chunking.WindowSize = cfg.ChunkSize
	pcfg.Chunking.Overlap = cfg.ChunkOverlap
	pcfg.Chunking.OverlapPercentage = cfg.OverlapPercentage
	pcfg.Logger = logger

	if *index {
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			log.Fatalf("failed to create data directory: %v", err)
		}
		embed := chromem.NewEmbeddingFuncOllama(cfg.OllamaEmbedModel, cfg.OllamaURL+"/api")
		s, err := sink.NewChromem(cfg.DataDir, *collection, embed)
		if err != nil {
			log.Fatalf("failed to open vector database: %v", err)
		}
		pcfg.Sink = s
	}

	pipeline, err := docchunk.New(pcfg)
	if err != nil {
		log.Fatalf("failed to create pipeline: %v", err)
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	results := pipeline.ProcessBatch(ctx, flag.Args())

	var all []chunk.Record
	for _, path := range flag.Args() {
		records := results[path]
		fmt.Fprintf(os.Stderr, "%s: %d chunks\n", path, len(records))
		all = append(all, records...)
	}

	if *index {
		return
	}

	exporter := chunk.NewExporter()
	if *output != "" {
		if err := exporter.ExportToFile(*output, all); err != nil {
			log.Fatalf("failed to write output: %v", err)
		}
		return
	}
	if err := exporter.Export(os.Stdout, all); err != nil {
		log.Fatalf("failed to write output: %v", err)
	}
}

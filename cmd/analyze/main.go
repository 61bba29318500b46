package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"reelsmith/internal/app"
	"reelsmith/pkg/config"
	"reelsmith/pkg/ingest"
	"reelsmith/pkg/logging"
	"reelsmith/pkg/model"
)

const sampleFile = "sample_videos.json"

type options struct {
	configPath   string
	file         string
	output       string
	sample       bool
	youtube      string
	useYouTube   bool
	analysisType string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", app.DefaultConfigPath, "Path to the YAML config")
	flag.StringVar(&opts.file, "file", "", "Path to JSON file containing video data")
	flag.StringVar(&opts.output, "output", "", "Path to save analysis results (optional)")
	flag.BoolVar(&opts.sample, "sample", false, "Generate "+sampleFile+" and exit")
	flag.StringVar(&opts.analysisType, "type", "full", "Analysis type: full, hooks, format, engagement, themes")
	flag.Func("youtube", "Fetch trending shorts matching a query instead of reading -file (empty query lists the chart)", func(s string) error {
		opts.youtube = s
		opts.useYouTube = true
		return nil
	})
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, &opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts *options, out io.Writer) error {
	if opts.sample {
		if err := ingest.WriteJSON(sampleFile, ingest.SampleVideos()); err != nil {
			return err
		}
		fmt.Fprintf(out, "Sample video data saved to %s\n", sampleFile)
		return nil
	}
	if opts.file == "" && !opts.useYouTube {
		return errors.New("provide a JSON file with -file, fetch with -youtube, or generate a sample with -sample")
	}

	cfg, err := app.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logging.ParseLevel(cfg.Log.Server.Level),
	})))

	videos, err := loadVideos(ctx, opts, cfg.YouTube)
	if err != nil {
		return err
	}

	comps, err := app.Build(cfg)
	if err != nil {
		return err
	}

	ins, err := comps.Pipeline.Analyze(ctx, model.AnalysisRequest{Videos: videos, AnalysisType: opts.analysisType})
	if err != nil {
		return err
	}

	formatted, err := json.MarshalIndent(ins, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	fmt.Fprintln(out, "\n===== CONTENT ANALYSIS RESULTS =====")
	fmt.Fprintln(out, string(formatted))

	if opts.output != "" {
		if err := ingest.WriteJSON(opts.output, ins); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nResults saved to %s\n", opts.output)
	}
	return nil
}

func loadVideos(ctx context.Context, opts *options, ytCfg config.YouTubeConfig) ([]model.VideoRecord, error) {
	if !opts.useYouTube {
		videos, err := ingest.LoadFile(opts.file)
		if err != nil {
			return nil, err
		}
		return model.Records(videos), nil
	}

	yt, err := ingest.NewYouTube(ctx, ytCfg)
	if err != nil {
		return nil, err
	}
	videos, err := yt.Search(ctx, opts.youtube)
	if err != nil {
		return nil, err
	}
	slog.Info("Fetched videos from YouTube", "query", opts.youtube, "count", len(videos))
	return videos, nil
}

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
	"strings"

	"reelsmith/internal/app"
	"reelsmith/pkg/ingest"
	"reelsmith/pkg/logging"
	"reelsmith/pkg/model"
)

type options struct {
	configPath string
	script     string
	output     string
	platform   string
	demo       bool
}

// scriptFile accepts a scriptwriter result, optionally with a platform.
type scriptFile struct {
	Script   string `json:"script"`
	Title    string `json:"title"`
	CTA      string `json:"cta"`
	Theme    string `json:"theme"`
	Platform string `json:"platform"`
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", app.DefaultConfigPath, "Path to the YAML config")
	flag.StringVar(&opts.script, "script", "", "Path to JSON file containing script data")
	flag.StringVar(&opts.output, "output", "", "Path to save visual plan (optional)")
	flag.StringVar(&opts.platform, "platform", model.DefaultVisualPlatform, "Target platform: TikTok, Instagram, YouTube")
	flag.BoolVar(&opts.demo, "demo", false, "Run with demo data")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, &opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts *options, out io.Writer) error {
	platform, err := parsePlatform(opts.platform)
	if err != nil {
		return err
	}

	var req model.VisualPlanRequest
	switch {
	case opts.demo:
		req = ingest.DemoScript()
		req.Platform = platform
	case opts.script != "":
		req, err = loadScript(opts.script, platform)
		if err != nil {
			return err
		}
	default:
		return errors.New("provide a script file with -script or use -demo")
	}

	cfg, err := app.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logging.ParseLevel(cfg.Log.Server.Level),
	})))
	if req.Tone == "" {
		req.Tone = cfg.Pipeline.Tone
	}

	comps, err := app.Build(cfg)
	if err != nil {
		return err
	}
	plan := comps.Pipeline.VisualPlan(ctx, req)

	Render(out, &plan)

	if opts.output != "" {
		if err := ingest.WriteJSON(opts.output, plan); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nVisual plan saved to %s\n", opts.output)
	}
	return nil
}

func parsePlatform(s string) (string, error) {
	p := model.ParsePlatform(s)
	if !p.Known() {
		return "", fmt.Errorf("%w: unsupported platform %q (TikTok, Instagram, YouTube)", model.ErrInvalidRequest, s)
	}
	return p.Label(), nil
}

// loadScript reads a script file. The file's own platform wins over the flag.
func loadScript(path, platform string) (model.VisualPlanRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.VisualPlanRequest{}, fmt.Errorf("failed to read script: %w", err)
	}
	var sf scriptFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return model.VisualPlanRequest{}, fmt.Errorf("%w: %v", model.ErrInvalidRequest, err)
	}
	if sf.Platform != "" {
		platform = sf.Platform
	}
	plan := model.ScriptPlan{Script: sf.Script, Title: sf.Title, CTA: sf.CTA, Theme: sf.Theme}
	return model.PlanRequestFromScript(&plan, "", platform), nil
}

// Render prints the plan in the reading order an editor uses.
func Render(w io.Writer, plan *model.VisualPlan) {
	fmt.Fprint(w, "\n===== VISUAL CONTENT PLAN =====\n\n")
	fmt.Fprintf(w, "TITLE: %s\n\n", plan.Title)
	fmt.Fprintf(w, "TOTAL DURATION: %s\n\n", plan.TotalDuration)
	fmt.Fprintf(w, "VOICEOVER: %s\n\n", plan.VoiceoverStyle)
	fmt.Fprintf(w, "MUSIC: %s\n\n", plan.MusicRecommendation)

	fmt.Fprintln(w, "SCENES:")
	for i, s := range plan.Scenes {
		fmt.Fprintf(w, "\nSCENE %d: %s\n", i+1, s.Timestamp)
		fmt.Fprintf(w, "TEXT: %s\n", s.ScriptSegment)
		fmt.Fprintf(w, "STOCK FOOTAGE: %s\n", strings.Join(s.StockFootage, ", "))
		if s.TextOverlay != nil && *s.TextOverlay != "" {
			fmt.Fprintf(w, "TEXT OVERLAY: %s\n", *s.TextOverlay)
		}
		fmt.Fprintf(w, "VISUAL EFFECTS: %s\n", strings.Join(s.VisualEffects, ", "))
		fmt.Fprintf(w, "TRANSITION: %s\n", s.Transition)
	}

	fmt.Fprintln(w, "\nSTOCK FOOTAGE SOURCES:")
	for _, src := range plan.StockFootagePlatforms {
		fmt.Fprintf(w, "- %s\n", src)
	}

	fmt.Fprintln(w, "\nEDITING TIPS:")
	for _, tip := range plan.EditingTips {
		fmt.Fprintf(w, "- %s\n", tip)
	}
}

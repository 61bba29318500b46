// Package app wires configuration into a ready pipeline for the server and
// the CLIs.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"

	"reelsmith/pkg/analyzer"
	"reelsmith/pkg/config"
	"reelsmith/pkg/llm"
	"reelsmith/pkg/llm/prompts"
	"reelsmith/pkg/llm/providers"
	"reelsmith/pkg/pipeline"
	"reelsmith/pkg/planner"
	"reelsmith/pkg/probe"
	"reelsmith/pkg/request"
	"reelsmith/pkg/scriptwriter"
	"reelsmith/pkg/tracker"
)

// DefaultConfigPath is where the commands look for their config.
const DefaultConfigPath = "configs/reelsmith.yaml"

// Components holds everything built from one config.
type Components struct {
	Config   *config.Config
	Tracker  *tracker.Tracker
	LLM      llm.Provider // nil when no provider has a key
	Analyzer *analyzer.Analyzer
	Writer   *scriptwriter.Writer
	Planner  *planner.Planner
	Pipeline *pipeline.Service
}

// LoadConfig reads .env (if present) and then the YAML config, so blank
// keys in the file can come from either.
func LoadConfig(path string) (*config.Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// Build creates the provider chain, the three stages and the pipeline.
func Build(cfg *config.Config) (*Components, error) {
	tr := tracker.New()

	rc := request.New(tr, request.ClientConfig{
		Retries:   cfg.Request.Retries,
		Timeout:   cfg.Request.Timeout.Std(),
		BaseDelay: cfg.Request.Backoff.BaseDelay.Std(),
		MaxDelay:  cfg.Request.Backoff.MaxDelay.Std(),
	})

	prov, err := providers.NewChain(cfg.LLM, cfg.Log.LLM.Path, rc, tr)
	if err != nil {
		return nil, fmt.Errorf("failed to build llm chain: %w", err)
	}

	pm, err := prompts.NewManager(cfg.Prompts.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompts: %w", err)
	}

	aStrat, wStrat, pStrat := cfg.Strategies()
	timeout := cfg.LLM.Timeout.Std()

	a := analyzer.New(aStrat, prov, pm, tr)
	a.SetTimeout(timeout)
	w := scriptwriter.New(wStrat, prov, pm, tr)
	w.SetTimeout(timeout)
	p := planner.New(pStrat, prov, pm, tr)
	p.SetTimeout(timeout)

	slog.Info("Pipeline configured",
		"analyzer", aStrat,
		"scriptwriter", wStrat,
		"planner", pStrat,
		"generative", prov != nil)

	return &Components{
		Config:   cfg,
		Tracker:  tr,
		LLM:      prov,
		Analyzer: a,
		Writer:   w,
		Planner:  p,
		Pipeline: pipeline.New(a, w, p, cfg.Pipeline),
	}, nil
}

// Strategies reports the configured strategy per stage.
func (c *Components) Strategies() map[string]string {
	return map[string]string{
		"analyzer":     c.Config.Strategy.Analyzer,
		"scriptwriter": c.Config.Strategy.Scriptwriter,
		"planner":      c.Config.Strategy.Planner,
	}
}

// Probe checks the LLM chain. A failure is never fatal because every stage
// has a heuristic branch.
func (c *Components) Probe(ctx context.Context) error {
	var hc probe.HealthChecker
	if c.LLM != nil {
		hc = c.LLM
	}
	results := probe.Run(ctx, []probe.Probe{
		probe.ForHealth("LLM providers", hc, false),
	})
	return probe.AnalyzeResults(results)
}

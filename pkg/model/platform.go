package model

import (
	"fmt"
	"strings"
)

// Platform is a normalized target platform tag.
type Platform string

const (
	PlatformTikTok    Platform = "tiktok"
	PlatformYouTube   Platform = "youtube_shorts"
	PlatformInstagram Platform = "instagram_reels"
	PlatformAll       Platform = "all"
)

// ParsePlatform folds the spellings used by script and visual plan requests
// ("TikTok", "Instagram", "instagram_reels", "YouTube", "youtube_shorts") into
// one tag. Blank input maps to PlatformAll; unknown names are returned
// lower-cased so callers can fall back to their generic tables.
func ParsePlatform(s string) Platform {
	key := strings.ToLower(strings.TrimSpace(s))
	switch key {
	case "tiktok":
		return PlatformTikTok
	case "youtube", "youtube_shorts", "youtube shorts", "shorts":
		return PlatformYouTube
	case "instagram", "instagram_reels", "instagram reels", "reels":
		return PlatformInstagram
	case "", "all":
		return PlatformAll
	}
	return Platform(key)
}

// Known reports whether p is one of the three concrete platforms.
func (p Platform) Known() bool {
	return p == PlatformTikTok || p == PlatformYouTube || p == PlatformInstagram
}

// Label returns the display name used in visual plans.
func (p Platform) Label() string {
	switch p {
	case PlatformTikTok:
		return "TikTok"
	case PlatformYouTube:
		return "YouTube"
	case PlatformInstagram:
		return "Instagram"
	}
	return string(p)
}

// Strategy selects how a stage produces its result.
type Strategy string

const (
	// StrategyAuto tries the generative branch and falls back to heuristics.
	StrategyAuto Strategy = "auto"
	// StrategyHeuristic never calls the generation service.
	StrategyHeuristic Strategy = "heuristic"
)

// ParseStrategy maps a config value to a Strategy. Blank means auto.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return StrategyAuto, nil
	case "heuristic", "fallback", "template":
		return StrategyHeuristic, nil
	}
	return "", fmt.Errorf("%w: unknown strategy %q", ErrInvalidRequest, s)
}

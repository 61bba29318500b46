package planner

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"reelsmith/pkg/chance"
	"reelsmith/pkg/model"
	"reelsmith/pkg/rules"
)

const overlayLimit = 40

// Keywords returns the lower-cased words of text longer than three
// characters.
func Keywords(text string) []string {
	var out []string
	for _, w := range rules.Tokens(text) {
		if utf8.RuneCountInString(w) > 3 {
			out = append(out, strings.ToLower(w))
		}
	}
	return out
}

// StockFootage suggests footage for a segment. A niche match gives that
// niche's list. Otherwise up to three keyword visuals are padded with the
// defaults.
func StockFootage(src chance.Source, segment, niche string) []string {
	keywords := Keywords(segment)

	if list, ok := NicheFootage.Match(niche); ok {
		return nicheFootage(src, list, keywords)
	}

	if len(keywords) == 0 {
		return slices.Clone(DefaultFootage)
	}
	out := make([]string, 0, 3)
	for _, kw := range chance.Sample(src, keywords, 3) {
		out = append(out, kw+" visual")
	}
	return append(out, DefaultFootage[:3-len(out)]...)
}

// nicheFootage returns at most three entries of list. A keyword visual is
// added only when the list is shorter than that.
func nicheFootage(src chance.Source, list, keywords []string) []string {
	out := slices.Clone(list)
	if len(out) < 3 && len(keywords) > 0 {
		out = append(out, chance.Pick(src, keywords)+" visual")
	}
	if len(out) > 3 {
		out = out[:3]
	}
	return out
}

// TextOverlay returns the segment when it is short, else its first sentence
// when that is short, else its first five words. Segments of five words or
// fewer that are still too long get no overlay.
func TextOverlay(segment string) *string {
	if utf8.RuneCountInString(segment) < overlayLimit {
		return &segment
	}
	if first, _, ok := strings.Cut(segment, "."); ok {
		first = strings.TrimSpace(first)
		if first != "" && utf8.RuneCountInString(first) < overlayLimit {
			return &first
		}
	}
	if words := strings.Fields(segment); len(words) > 5 {
		s := strings.Join(words[:5], " ") + "..."
		return &s
	}
	return nil
}

// VisualEffects samples two effects from the platform pool, narrowed to the
// preferred set for hook and CTA scenes when the pool has any of them.
func VisualEffects(src chance.Source, platform model.Platform, kind SceneKind) []string {
	pool, ok := EffectPools[platform.Label()]
	if !ok {
		pool = EffectPools[model.PlatformTikTok.Label()]
	}
	var narrowed []string
	for _, e := range PreferredEffects[kind] {
		if slices.Contains(pool, e) {
			narrowed = append(narrowed, e)
		}
	}
	if len(narrowed) == 0 {
		narrowed = pool
	}
	return chance.Sample(src, narrowed, 2)
}

// Transition picks a transition. CTA scenes always fade.
func Transition(src chance.Source, kind SceneKind) string {
	if kind == SceneCTA {
		return CTATransition
	}
	return chance.Pick(src, Transitions)
}

// Music combines the niche style with an optional tone adjective.
func Music(niche, tone string) string {
	base := MusicStyles.MatchOr(niche, DefaultMusic)
	if adj, ok := MusicTones.Match(tone); ok {
		return fmt.Sprintf("%s %s", rules.Capitalize(adj), strings.ToLower(base))
	}
	return base
}

// Voiceover combines the niche voice with an optional tone suffix.
func Voiceover(niche, tone string) string {
	base := VoiceStyles.MatchOr(niche, DefaultVoice)
	if mod, ok := VoiceTones.Match(tone); ok {
		return base + " " + mod
	}
	return base
}

// Platforms samples up to four footage sources.
func Platforms(src chance.Source) []string {
	return chance.Sample(src, FootagePlatforms, 4)
}

// Tips samples up to five editing tips for the platform.
func Tips(src chance.Source, platform model.Platform) []string {
	tips, ok := EditingTips[platform.Label()]
	if !ok {
		tips = DefaultEditingTips
	}
	return chance.Sample(src, tips, 5)
}

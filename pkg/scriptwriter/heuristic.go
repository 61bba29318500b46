package scriptwriter

import (
	"fmt"
	"strings"

	"reelsmith/pkg/chance"
	"reelsmith/pkg/model"
	"reelsmith/pkg/rules"
)

const (
	minDuration = 15
	maxDuration = 60
	// wordsPerSecond is spoken pace as a fraction, 2.5 words per second.
	wordsPerSecondNum = 5
	wordsPerSecondDen = 2
)

// Hook is a chosen opening line and the pattern type it follows.
type Hook struct {
	Text string
	Type string
}

// Heuristic composes a script from the fixed template tables.
func Heuristic(src chance.Source, req model.ScriptRequest) model.ScriptPlan {
	req.ApplyDefaults()
	src = chance.Or(src)
	theme := SelectTheme(src, req.ContentThemes)
	hook := SelectHook(src, req.HookPatterns, theme)
	body := ComposeBody(hook.Text, theme)
	cta := SelectCTA(src, req.Platform, theme)
	return Assemble(hook, body, cta, theme, req.Platform)
}

// SelectTheme picks one theme uniformly, or DefaultTheme when none are given.
func SelectTheme(src chance.Source, themes []string) string {
	if len(themes) == 0 {
		return DefaultTheme
	}
	return chance.Pick(src, themes)
}

// SelectHook picks a detected pattern and fills one of its templates. With no
// patterns a shock-based line is built from the theme's first word.
func SelectHook(src chance.Source, patterns []model.HookPattern, theme string) Hook {
	if len(patterns) == 0 {
		return Hook{
			Text: fmt.Sprintf("You've been approaching %s all wrong.", rules.FirstWord(theme)),
			Type: model.HookShock,
		}
	}
	p := chance.Pick(src, patterns)
	templates, ok := HookTemplates[p.Type]
	if !ok {
		templates = HookTemplates[model.HookShock]
	}
	return Hook{Text: fillHook(src, chance.Pick(src, templates), theme), Type: p.Type}
}

func fillHook(src chance.Source, tmpl, theme string) string {
	topic := rules.FirstWord(theme)
	pairs := []string{
		"[topic]", topic,
		"[surprising claim]", fmt.Sprintf("one simple %s hack could save you hours", topic),
		"[intriguing question]", fmt.Sprintf("most people get %s completely wrong", topic),
		"[curious situation]", fmt.Sprintf("your %s isn't improving", topic),
	}
	if strings.Contains(tmpl, "[action]") {
		pairs = append(pairs, "[action]", chance.Pick(src, actionsFor(theme)))
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

func actionsFor(theme string) []string {
	return ActionRules.MatchOr(theme, []string{DefaultAction})
}

// ComposeBody returns the hook followed by the problem and solution
// paragraphs for the theme's bucket.
func ComposeBody(hook, theme string) string {
	b := BodyRules.MatchOr(theme, GenericBody)
	return hook + "\n\n" + b.Problem + "\n\n" + b.Solution
}

// SelectCTA picks a call to action for the platform. Unknown platforms use
// the generic list.
func SelectCTA(src chance.Source, platform, theme string) string {
	templates, ok := CTATemplates[model.ParsePlatform(platform)]
	if !ok {
		templates = CTATemplates[model.PlatformAll]
	}
	return strings.NewReplacer(
		"[topic]", rules.FirstWord(theme),
		"[phrase]", CTAPhrase,
	).Replace(chance.Pick(src, templates))
}

// Assemble joins body and CTA and derives the title, duration and notes.
func Assemble(hook Hook, body, cta, theme, platform string) model.ScriptPlan {
	script := body + "\n\n" + cta
	duration := EstimateDuration(script)

	notes := []string{
		fmt.Sprintf("Estimated duration: %d seconds", duration),
		"Hook type: " + hook.Type,
		"Primary theme: " + theme,
		"Target platform: " + platform,
	}
	if n, ok := PlatformNotes[model.ParsePlatform(platform)]; ok {
		notes = append(notes, n)
	}

	return model.ScriptPlan{
		Title:             rules.Truncate(hook.Text, 60, 57),
		Script:            script,
		HookType:          hook.Type,
		EstimatedDuration: duration,
		Theme:             theme,
		CTA:               cta,
		Notes:             notes,
	}
}

// EstimateDuration converts a word count at 2.5 words per second into whole
// seconds clamped to [15, 60].
func EstimateDuration(script string) int {
	secs := len(strings.Fields(script)) * wordsPerSecondDen / wordsPerSecondNum
	return max(minDuration, min(secs, maxDuration))
}

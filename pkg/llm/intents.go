package llm

// Intents name the generation calls made by the pipeline stages. Each intent
// is a profile key in the provider config.
const (
	IntentAnalysisHooks      = "analysis_hooks"
	IntentAnalysisFormats    = "analysis_formats"
	IntentAnalysisEngagement = "analysis_engagement"
	IntentAnalysisThemes     = "analysis_themes"
	IntentAnalysisSummary    = "analysis_summary"
	IntentScriptHook         = "script_hook"
	IntentScriptBody         = "script_body"
	IntentScriptCTA          = "script_cta"
	IntentVisualPlan         = "visual_plan"
)

// Intents lists every intent in pipeline order.
func Intents() []string {
	return []string{
		IntentAnalysisHooks,
		IntentAnalysisFormats,
		IntentAnalysisEngagement,
		IntentAnalysisThemes,
		IntentAnalysisSummary,
		IntentScriptHook,
		IntentScriptBody,
		IntentScriptCTA,
		IntentVisualPlan,
	}
}

var maxTokens = map[string]int{
	IntentAnalysisHooks:      300,
	IntentAnalysisFormats:    300,
	IntentAnalysisEngagement: 300,
	IntentAnalysisThemes:     300,
	IntentAnalysisSummary:    200,
	IntentScriptHook:         50,
	IntentScriptBody:         250,
	IntentScriptCTA:          50,
	IntentVisualPlan:         1200,
}

// MaxTokens returns the output budget for an intent, or 0 for no limit.
func MaxTokens(intent string) int {
	return maxTokens[intent]
}

var systemPrompts = map[string]string{
	"analysis": "You are an expert content strategist specializing in viral short-form video analysis.",
	"script":   "You are an expert social media content creator specializing in viral short-form videos.",
	"visual":   "You are an expert video producer specializing in short-form video content creation.",
}

// SystemPrompt returns the persona for the stage an intent belongs to.
func SystemPrompt(intent string) string {
	for i := 0; i < len(intent); i++ {
		if intent[i] == '_' {
			return systemPrompts[intent[:i]]
		}
	}
	return ""
}

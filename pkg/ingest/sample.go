package ingest

import "reelsmith/pkg/model"

// SampleVideos returns the five canonical sample records.
func SampleVideos() []model.VideoRecord {
	return []model.VideoRecord{
		{
			Title:       "5 Morning Habits That Changed My Life",
			Description: "I tried these 5 morning habits for 30 days and here's what happened...",
			Views:       1500000,
			PublishedAt: "2023-05-15",
			Channel:     "ProductivityGuru",
		},
		{
			Title:       "You've Been Charging Your Phone Wrong",
			Description: "This simple trick will make your battery last twice as long!",
			Views:       2300000,
			PublishedAt: "2023-06-02",
			Channel:     "TechHacks",
		},
		{
			Title:       "What I Eat in a Day as a Nutritionist",
			Description: "Healthy meal ideas that take less than 10 minutes to prepare",
			Views:       950000,
			PublishedAt: "2023-05-28",
			Channel:     "HealthyEating",
		},
		{
			Title:       "3 Exercises You're Doing Wrong",
			Description: "Fix these common mistakes to prevent injury and get better results",
			Views:       1800000,
			PublishedAt: "2023-06-10",
			Channel:     "FitnessExpert",
		},
		{
			Title:       "I Tried This Viral Productivity Hack For a Week",
			Description: "The results were shocking...",
			Views:       3200000,
			PublishedAt: "2023-05-20",
			Channel:     "LifeHacker",
		},
	}
}

// SampleNicheVideos returns sample records carrying audience research fields.
func SampleNicheVideos() []model.NicheVideoRecord {
	videos := SampleVideos()
	return []model.NicheVideoRecord{
		{
			VideoRecord:      videos[0],
			Problem:          "Lack of productivity and energy in the morning",
			Audience:         "Young professionals and students",
			Solution:         "Simple morning routine habits that increase productivity",
			Niche:            "Productivity",
			SubNiche:         "Morning routines",
			PainPoints:       "Feeling tired, unproductive, and overwhelmed",
			ValueProposition: "Boost energy and productivity with simple morning habits",
		},
		{
			VideoRecord:      videos[1],
			Problem:          "Phone battery dies too quickly",
			Audience:         "Smartphone users of all ages",
			Solution:         "Proper charging techniques to extend battery life",
			Niche:            "Technology",
			SubNiche:         "Smartphone tips",
			PainPoints:       "Frustration with short battery life, always needing a charger",
			ValueProposition: "Double your battery life with this simple change",
		},
	}
}

// SampleRequests holds one example body per POST endpoint.
type SampleRequests struct {
	Analyze          model.AnalysisRequest      `json:"analyze_endpoint"`
	NicheAnalysis    model.NicheAnalysisRequest `json:"niche_analysis_endpoint"`
	GenerateScript   model.ScriptRequest        `json:"generate_script_endpoint"`
	CreateVisualPlan model.VisualPlanRequest    `json:"create_visual_plan_endpoint"`
	FullPipeline     model.PipelineRequest      `json:"full_pipeline_endpoint"`
}

const sampleHook = "I can't believe I didn't know this behind-the-scenes secret sooner."

// Samples returns example request bodies for every endpoint.
func Samples() SampleRequests {
	return SampleRequests{
		Analyze: model.AnalysisRequest{
			Videos:       SampleVideos()[:4],
			AnalysisType: string(model.AnalysisFull),
		},
		NicheAnalysis: model.NicheAnalysisRequest{
			Videos:       SampleNicheVideos(),
			AnalysisType: string(model.AnalysisFull),
			TargetNiche:  "Productivity",
		},
		GenerateScript: model.ScriptRequest{
			HookPatterns: []model.HookPattern{
				{Type: model.HookShock, Example: "You're doing this wrong, here's why."},
				{Type: model.HookQuestion, Example: "What if I told you this one habit could change your life?"},
			},
			FormatTrends: []string{
				"Hook → Insight → Visual Demo → CTA",
				"Fast-paced cuts with meme overlays and subtitles",
			},
			EngagementTactics: []string{
				"Open loops (e.g., 'Wait for it...')",
				"Direct CTAs ('Follow me for more')",
			},
			ContentThemes: []string{
				"Time management hacks",
				"Exposing common myths",
			},
			Summary:      "The most effective viral videos use fast-paced editing with captions and B-roll, lead with a curiosity or pain-point hook, and close with direct CTAs.",
			TargetLength: model.DefaultTargetLength,
			Platform:     "TikTok",
		},
		CreateVisualPlan: model.VisualPlanRequest{
			Script: sampleHook + "\n\n" +
				"We all struggle with having too much to do and too little time. [show overwhelmed person]\n\n" +
				"Here's a simple system that changed everything for me: [cut to notebook] The 1-3-5 Rule. Each day, commit to accomplishing: 1 big thing, 3 medium things, and 5 small things. [show list] That's it. This prevents overwhelm while still ensuring progress on what matters. [show completed list]\n\n" +
				"Stitch this with your results!",
			Hook:     sampleHook,
			CTA:      "Stitch this with your results!",
			Niche:    "productivity",
			Tone:     "informative",
			Platform: "TikTok",
		},
		FullPipeline: model.PipelineRequest{
			Videos:         SampleNicheVideos(),
			Platform:       "TikTok",
			TargetNiche:    "Productivity",
			TargetDuration: 50,
		},
	}
}

// DemoScript is the script used by the visual plan demo.
func DemoScript() model.VisualPlanRequest {
	return model.VisualPlanRequest{
		Script:   "They said this kitchen was a lost cause. But $3,000 and 6 weekends later? It's now our favorite room.",
		Hook:     "You won't believe this transformation.",
		CTA:      "Follow for more budget renovation ideas.",
		Niche:    "home renovation",
		Tone:     "inspiring and upbeat",
		Platform: "TikTok",
	}
}

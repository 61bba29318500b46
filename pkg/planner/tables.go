package planner

import "reelsmith/pkg/rules"

// Transitions are sampled for hook and content scenes.
var Transitions = []string{
	"Cut",
	"Fade",
	"Dissolve",
	"Wipe",
	"Zoom In",
	"Zoom Out",
	"Slide Left",
	"Slide Right",
	"Whip Pan",
	"Split Screen",
}

// CTATransition closes every plan.
const CTATransition = "Fade"

// EffectPools are keyed by platform label. Unknown platforms use TikTok.
var EffectPools = map[string][]string{
	"TikTok": {
		"Slow Motion",
		"Text Animation",
		"Green Screen",
		"Duet Effect",
		"Background Blur",
		"Color Filter",
		"Time Warp Scan",
		"Sticker Overlay",
		"Glitch Effect",
		"Tracking Text",
	},
	"Instagram": {
		"Boomerang",
		"Superzoom",
		"Face Filters",
		"GIF Stickers",
		"Color Filter",
		"Drawing Tools",
		"3D Text",
		"AR Effects",
		"Depth Effect",
		"Slow Motion",
	},
	"YouTube": {
		"Lower Thirds",
		"Closed Captions",
		"End Screen Elements",
		"Pop-up Cards",
		"Split Screen",
		"Screen-in-Screen",
		"Zoom Emphasis",
		"Motion Graphics",
		"Cross Fade",
		"Color Grading",
	},
}

// PreferredEffects narrow the pool for hook and CTA scenes.
var PreferredEffects = map[SceneKind][]string{
	SceneHook: {"Text Animation", "Zoom In", "Color Filter", "Motion Graphics"},
	SceneCTA:  {"Text Animation", "Sticker Overlay", "3D Text", "GIF Stickers"},
}

// FootagePlatforms are the stock footage sources sampled per plan.
var FootagePlatforms = []string{
	"Pexels",
	"Pixabay",
	"Unsplash",
	"Storyblocks",
	"Mixkit",
	"Videvo",
	"Coverr",
}

// NicheFootage maps a niche keyword to its footage suggestions.
var NicheFootage = rules.Table[[]string]{
	{Keywords: []string{"productivity"}, Value: []string{"person working at desk", "calendar planning", "time management app"}},
	{Keywords: []string{"tech"}, Value: []string{"smartphone usage", "app interface", "tech gadget closeup"}},
	{Keywords: []string{"health"}, Value: []string{"healthy meal prep", "workout sequence", "meditation scene"}},
	{Keywords: []string{"finance"}, Value: []string{"money saving visualization", "investment chart", "budgeting app"}},
	{Keywords: []string{"home"}, Value: []string{"home organization", "cleaning transformation", "interior design"}},
	{Keywords: []string{"beauty"}, Value: []string{"skincare routine", "makeup application", "before/after transition"}},
	{Keywords: []string{"fashion"}, Value: []string{"outfit styling", "fabric closeup", "accessory details"}},
	{Keywords: []string{"travel"}, Value: []string{"destination views", "packing process", "travel hacks"}},
	{Keywords: []string{"cooking"}, Value: []string{"ingredient preparation", "cooking technique", "final dish reveal"}},
	{Keywords: []string{"fitness"}, Value: []string{"workout demonstration", "before/after body transformation", "gym equipment"}},
}

// DefaultFootage pads or replaces keyword footage.
var DefaultFootage = []string{
	"person speaking to camera",
	"relevant B-roll footage",
	"text animation on solid background",
}

// MusicStyles map a niche keyword to a base music style.
var MusicStyles = rules.Table[string]{
	{Keywords: []string{"productivity"}, Value: "Upbeat lo-fi with light percussion"},
	{Keywords: []string{"tech"}, Value: "Modern electronic with tech sounds"},
	{Keywords: []string{"health"}, Value: "Calm ambient with nature elements"},
	{Keywords: []string{"finance"}, Value: "Professional corporate with positive progression"},
	{Keywords: []string{"home"}, Value: "Cozy acoustic with warm tones"},
	{Keywords: []string{"beauty"}, Value: "Stylish pop with fashionable beats"},
	{Keywords: []string{"fashion"}, Value: "Trendy electronic with runway vibes"},
	{Keywords: []string{"travel"}, Value: "Exotic instrumental with cultural elements"},
	{Keywords: []string{"cooking"}, Value: "Light jazz with kitchen-friendly rhythm"},
	{Keywords: []string{"fitness"}, Value: "High-energy EDM with strong beat"},
}

// DefaultMusic is used when no niche keyword matches.
const DefaultMusic = "Trendy background music"

// MusicTones map a tone keyword to an adjective prefixed to the music style.
var MusicTones = rules.Table[string]{
	{Keywords: []string{"energetic"}, Value: "high-energy"},
	{Keywords: []string{"calm"}, Value: "soothing"},
	{Keywords: []string{"professional"}, Value: "polished"},
	{Keywords: []string{"fun"}, Value: "playful"},
	{Keywords: []string{"emotional"}, Value: "moving"},
	{Keywords: []string{"informative"}, Value: "neutral"},
	{Keywords: []string{"inspiring"}, Value: "uplifting"},
	{Keywords: []string{"humorous"}, Value: "quirky"},
}

// VoiceStyles map a niche keyword to a base voiceover style.
var VoiceStyles = rules.Table[string]{
	{Keywords: []string{"productivity"}, Value: "Clear and motivational"},
	{Keywords: []string{"tech"}, Value: "Knowledgeable and straightforward"},
	{Keywords: []string{"health"}, Value: "Calming and authoritative"},
	{Keywords: []string{"finance"}, Value: "Professional and trustworthy"},
	{Keywords: []string{"home"}, Value: "Friendly and approachable"},
	{Keywords: []string{"beauty"}, Value: "Enthusiastic and detailed"},
	{Keywords: []string{"fashion"}, Value: "Stylish and confident"},
	{Keywords: []string{"travel"}, Value: "Adventurous and descriptive"},
	{Keywords: []string{"cooking"}, Value: "Warm and instructional"},
	{Keywords: []string{"fitness"}, Value: "Energetic and encouraging"},
}

// DefaultVoice is used when no niche keyword matches.
const DefaultVoice = "Engaging and conversational"

// VoiceTones map a tone keyword to a suffix appended to the voiceover style.
var VoiceTones = rules.Table[string]{
	{Keywords: []string{"energetic"}, Value: "with high energy"},
	{Keywords: []string{"calm"}, Value: "with a soothing tone"},
	{Keywords: []string{"professional"}, Value: "with expert delivery"},
	{Keywords: []string{"fun"}, Value: "with playful inflection"},
	{Keywords: []string{"emotional"}, Value: "with authentic feeling"},
	{Keywords: []string{"informative"}, Value: "with clear articulation"},
	{Keywords: []string{"inspiring"}, Value: "with motivational emphasis"},
	{Keywords: []string{"humorous"}, Value: "with comedic timing"},
}

// EditingTips are keyed by platform label.
var EditingTips = map[string][]string{
	"TikTok": {
		"Keep transitions snappy - no longer than 0.3 seconds",
		"Use trending sounds/music to increase discoverability",
		"Add closed captions for better engagement (80% watch with sound off)",
		"Maintain high-energy pacing throughout",
		"Include text overlays for key points",
		"Use trending effects when they match your content",
		"Front-load the hook in the first 1-2 seconds",
		"End with a strong call-to-action",
	},
	"Instagram": {
		"Maintain 9:16 aspect ratio for optimal display",
		"Use Instagram's built-in effects for better algorithmic performance",
		"Include a mix of on-screen text and voiceover",
		"Tag relevant accounts/products in the video",
		"Use Instagram's music library for better reach",
		"Create shareable moments for Stories reshares",
		"Design colorful and vibrant visuals",
		"End with a question to encourage comments",
	},
	"YouTube": {
		"Include a clear hook within the first 3 seconds",
		"Add a branded subscribe animation at the end",
		"Use YouTube's end screen elements for the last 5-10 seconds",
		"Optimize brightness and contrast for mobile viewing",
		"Include closed captions for accessibility",
		"Use chapters/timestamps in video description",
		"Create a consistent color grade throughout",
		"Include subtle background music at 10-15% volume under narration",
	},
}

// DefaultEditingTips apply to platforms without their own list.
var DefaultEditingTips = []string{
	"Keep editing pace fast with cuts every 1-2 seconds",
	"Add text overlays for all key points",
	"Use subtle zoom effects to maintain visual interest",
	"Include motion graphics for statistics or numbers",
	"Ensure clear audio quality for voiceover",
}

package scriptwriter

import (
	"reelsmith/pkg/model"
	"reelsmith/pkg/rules"
)

// DefaultTheme is used when the insights carry no themes.
const DefaultTheme = "productivity hacks"

// HookTemplates are keyed by hook type. Bracketed placeholders are filled by
// fillHook.
var HookTemplates = map[string][]string{
	model.HookShock: {
		"You've been [action] wrong this whole time.",
		"This is the biggest mistake people make when [action].",
		"I can't believe I didn't know this [topic] secret sooner.",
		"Stop [action] immediately if you're doing this.",
	},
	model.HookQuestion: {
		"What if I told you [surprising claim]?",
		"Ever wondered why [intriguing question]?",
		"Do you make this common [topic] mistake?",
		"Want to know the real reason [curious situation]?",
	},
	model.HookNumber: {
		"3 [topic] hacks that changed my life.",
		"The #1 reason your [topic] isn't working.",
		"5 seconds that will change how you [action].",
		"These 3 [topic] tips saved me hours every day.",
	},
	model.HookPersonal: {
		"I tried [action] for 30 days and here's what happened.",
		"My [topic] routine was completely wrong until I discovered this.",
		"I was shocked when I learned this [topic] secret.",
		"Let me show you how I [action] to get these results.",
	},
}

// CTATemplates are keyed by normalized platform.
var CTATemplates = map[model.Platform][]string{
	model.PlatformTikTok: {
		"Hit that follow button if you want more [topic] tips like this.",
		"Comment '[phrase]' if you're going to try this.",
		"Stitch this with your results!",
		"Save this for later when you need it!",
	},
	model.PlatformYouTube: {
		"Subscribe for more [topic] hacks that actually work.",
		"Let me know in the comments if this helped you.",
		"Check the link in my bio for the full tutorial.",
		"Hit the bell so you don't miss part 2!",
	},
	model.PlatformInstagram: {
		"Save this to your collection for when you need it.",
		"Tag someone who needs to see this [topic] hack.",
		"DM me your before and after if you try this!",
		"Share this with someone who's been struggling with [topic].",
	},
	model.PlatformAll: {
		"Follow for more [topic] tips that nobody talks about.",
		"Comment if you're going to try this today.",
		"Like and save this for later!",
		"Let me know your results in the comments!",
	},
}

// CTAPhrase replaces [phrase] in CTA templates.
const CTAPhrase = "I'll try this"

// ActionRules map theme keywords to candidate [action] phrases.
var ActionRules = rules.Table[[]string]{
	{Keywords: []string{"productivity", "habit", "time management"}, Value: []string{"planning your day", "setting priorities", "managing your time"}},
	{Keywords: []string{"tech", "phone"}, Value: []string{"charging your phone", "using your apps", "backing up your data"}},
	{Keywords: []string{"health", "diet", "nutrition"}, Value: []string{"meal prepping", "counting calories", "planning your diet"}},
	{Keywords: []string{"life hack", "problem-solving"}, Value: []string{"organizing your space", "saving money", "simplifying your life"}},
}

// DefaultAction fills [action] when no rule matches.
const DefaultAction = "doing this"

// Body is one problem/solution pair with bracketed visual cues.
type Body struct {
	Problem  string
	Solution string
}

// BodyRules route a theme to its body template.
var BodyRules = rules.Table[Body]{
	{
		Keywords: []string{"productivity", "habit", "time management"},
		Value: Body{
			Problem:  "Most people waste hours every day on tasks that don't move the needle. [show frustrated person]",
			Solution: "Instead, try time blocking: [cut to phone calendar] First, identify your top 3 priorities for tomorrow. [show list] Then, schedule specific time blocks for each one. [show calendar] The key is to work in 25-minute focused sessions with 5-minute breaks. [show timer]",
		},
	},
	{
		Keywords: []string{"tech", "phone"},
		Value: Body{
			Problem:  "Your phone battery dying mid-day is not just annoying\u2014it's preventable. [show phone at 1%]",
			Solution: "Here's what actually kills your battery: [cut to settings] Background apps constantly refreshing. [show settings menu] Go to Settings → General → Background App Refresh and turn it off for apps you don't need instant updates from. [show toggling off] This one change can give you 2-3 extra hours of battery life. [show battery percentage increasing]",
		},
	},
	{
		Keywords: []string{"health", "diet", "nutrition"},
		Value: Body{
			Problem:  "That afternoon energy crash isn't normal, and it's probably because of what you're eating for lunch. [show tired person at desk]",
			Solution: "Try this instead: [cut to meal prep] Combine protein, healthy fats, and complex carbs in every meal. [show food items] For example: grilled chicken, avocado, and sweet potato. [show meal] This balanced combo prevents blood sugar spikes and keeps your energy stable all day. [show energetic person working]",
		},
	},
}

// GenericBody is used when no body rule matches.
var GenericBody = Body{
	Problem:  "We all struggle with having too much to do and too little time. [show overwhelmed person]",
	Solution: "Here's a simple system that changed everything for me: [cut to notebook] The 1-3-5 Rule. Each day, commit to accomplishing: 1 big thing, 3 medium things, and 5 small things. [show list] That's it. This prevents overwhelm while still ensuring progress on what matters. [show completed list]",
}

// PlatformNotes add one formatting reminder per known platform.
var PlatformNotes = map[model.Platform]string{
	model.PlatformTikTok:    "Optimize for mobile vertical format (9:16)",
	model.PlatformYouTube:   "Include subscribe reminder overlay in final seconds",
	model.PlatformInstagram: "Consider adding trending sound/music for additional reach",
}

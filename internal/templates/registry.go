package templates

// Channel identifies a delivery surface for testimonial-collection messages.
type Channel string

const (
	ChannelEmail      Channel = "email"
	ChannelChat       Channel = "chat"
	ChannelSocial     Channel = "social"
	ChannelCustomPage Channel = "custom-page"
)

// MessageType identifies what a template is for within a channel.
type MessageType string

const (
	MessageRequest      MessageType = "request"
	MessageThankYou     MessageType = "thank-you"
	MessageFollowUp     MessageType = "follow-up"
	MessagePageTitle    MessageType = "page-title"
	MessageHeadline     MessageType = "headline"
	MessageSubheadline  MessageType = "subheadline"
	MessageCallToAction MessageType = "call-to-action"
)

// Platform narrows a social template to one network. Empty means the
// channel has no per-platform variants.
type Platform string

const (
	PlatformNone      Platform = ""
	PlatformTwitter   Platform = "twitter"
	PlatformFacebook  Platform = "facebook"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformInstagram Platform = "instagram"
)

type registryKey struct {
	channel     Channel
	messageType MessageType
	platform    Platform
}

type registryEntry struct {
	defaultBody string
	suggestions []string
}

// Static defaults consulted to seed a brand's configuration the first time a
// channel is opened and to back the "reset to default" action. Entries are
// never mutated at runtime.
var registry = map[registryKey]registryEntry{
	// Email
	{ChannelEmail, MessageRequest, PlatformNone}: {
		defaultBody: "Hi {{name}}, thanks for using {{product}}! Would you take a minute to share your experience with {{brand}}? It means the world to us.",
		suggestions: []string{
			"Hey {{name}}! We'd love to hear how {{product}} is working for you. Got 60 seconds to leave {{brand}} a quick testimonial?",
			"Hi {{name}}, your feedback shapes what we build next at {{brand}}. Could you share a few words about {{product}}?",
		},
	},
	{ChannelEmail, MessageThankYou, PlatformNone}: {
		defaultBody: "Thank you so much, {{name}}! Your words help {{brand}} grow and we're grateful you took the time.",
		suggestions: []string{
			"{{name}}, you're the best. Thanks for supporting {{brand}}!",
		},
	},
	{ChannelEmail, MessageFollowUp, PlatformNone}: {
		defaultBody: "Hi {{name}}, just a gentle nudge — we'd still love your thoughts on {{product}}. It only takes a minute.",
		suggestions: []string{
			"Hey {{name}}, no pressure at all, but your testimonial would mean a lot to the {{brand}} team.",
		},
	},

	// Chat
	{ChannelChat, MessageRequest, PlatformNone}: {
		defaultBody: "Hey {{name}} 👋 Loving {{product}}? Tap here to leave {{brand}} a quick testimonial!",
		suggestions: []string{
			"Hi {{name}}! Got a sec? We'd love a shout-out for {{brand}} 🙌",
		},
	},
	{ChannelChat, MessageThankYou, PlatformNone}: {
		defaultBody: "You're amazing, {{name}}! Thanks for the kind words 💜",
	},
	{ChannelChat, MessageFollowUp, PlatformNone}: {
		defaultBody: "Hey {{name}}, still hoping to hear what you think of {{product}} — whenever you have a minute!",
	},

	// Social, per platform
	{ChannelSocial, MessageRequest, PlatformTwitter}: {
		defaultBody: "We'd love to feature you, {{username}}! Share your {{product}} story and tag {{brand}} 🚀",
		suggestions: []string{
			"{{username}}, your {{product}} win deserves a spotlight. Mind if {{brand}} shares it?",
		},
	},
	{ChannelSocial, MessageRequest, PlatformFacebook}: {
		defaultBody: "Hi {{name}}! We're collecting stories from {{brand}} customers — we'd be honored to share yours about {{product}}.",
	},
	{ChannelSocial, MessageRequest, PlatformLinkedIn}: {
		defaultBody: "Hi {{name}}, we're highlighting professionals getting results with {{product}}. Would you share a short testimonial for {{brand}}?",
	},
	{ChannelSocial, MessageRequest, PlatformInstagram}: {
		defaultBody: "Hey {{username}}! Tag {{brand}} in your {{product}} story and we'll feature you ✨",
	},
	{ChannelSocial, MessageThankYou, PlatformTwitter}: {
		defaultBody: "Huge thanks to {{username}} for the love! 💜 — the {{brand}} team",
	},

	// Custom page
	{ChannelCustomPage, MessagePageTitle, PlatformNone}: {
		defaultBody: "{{brand}} — Wall of Love",
	},
	{ChannelCustomPage, MessageHeadline, PlatformNone}: {
		defaultBody: "See why people love {{product}}",
		suggestions: []string{
			"Real stories from real {{brand}} customers",
			"Don't take our word for it",
		},
	},
	{ChannelCustomPage, MessageSubheadline, PlatformNone}: {
		defaultBody: "Join thousands of happy {{brand}} customers.",
	},
	{ChannelCustomPage, MessageCallToAction, PlatformNone}: {
		defaultBody: "Share your story",
	},
}

// Per-platform character budgets for social posts. Zero means unlimited.
var platformLimits = map[Platform]int{
	PlatformTwitter:   280,
	PlatformFacebook:  63206,
	PlatformLinkedIn:  3000,
	PlatformInstagram: 2200,
}

// GetDefault returns the static default template for the triple. Unknown
// triples return "" rather than an error so initialization code can write
// initial values without branching on existence first.
func GetDefault(channel Channel, messageType MessageType, platform Platform) string {
	return registry[registryKey{channel, messageType, platform}].defaultBody
}

// ListSuggestions returns the curated alternatives for the triple in
// authored order, or an empty list when none are registered.
func ListSuggestions(channel Channel, messageType MessageType, platform Platform) []string {
	entry, ok := registry[registryKey{channel, messageType, platform}]
	if !ok || len(entry.suggestions) == 0 {
		return nil
	}
	out := make([]string, len(entry.suggestions))
	copy(out, entry.suggestions)
	return out
}

// CharacterLimit returns the platform's post budget, or 0 when the platform
// imposes none (or is unknown).
func CharacterLimit(platform Platform) int {
	return platformLimits[platform]
}

// FitsLimit reports whether text fits the platform's character budget.
// Counted in runes, matching how the networks count.
func FitsLimit(platform Platform, text string) bool {
	limit := CharacterLimit(platform)
	if limit == 0 {
		return true
	}
	return len([]rune(text)) <= limit
}

// Descriptor names one registered template slot.
type Descriptor struct {
	Channel     Channel
	MessageType MessageType
	Platform    Platform
}

// RegisteredDefaults returns every triple with a registered default. Used by
// the dashboard to enumerate editable slots.
func RegisteredDefaults() []Descriptor {
	out := make([]Descriptor, 0, len(registry))
	for k := range registry {
		out = append(out, Descriptor{k.channel, k.messageType, k.platform})
	}
	return out
}

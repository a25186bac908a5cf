package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every slot the dashboard renders an editor for. A missing default here
// would reach production as an empty seed value.
var referencedSlots = []Descriptor{
	{ChannelEmail, MessageRequest, PlatformNone},
	{ChannelEmail, MessageThankYou, PlatformNone},
	{ChannelEmail, MessageFollowUp, PlatformNone},
	{ChannelChat, MessageRequest, PlatformNone},
	{ChannelChat, MessageThankYou, PlatformNone},
	{ChannelChat, MessageFollowUp, PlatformNone},
	{ChannelSocial, MessageRequest, PlatformTwitter},
	{ChannelSocial, MessageRequest, PlatformFacebook},
	{ChannelSocial, MessageRequest, PlatformLinkedIn},
	{ChannelSocial, MessageRequest, PlatformInstagram},
	{ChannelCustomPage, MessagePageTitle, PlatformNone},
	{ChannelCustomPage, MessageHeadline, PlatformNone},
	{ChannelCustomPage, MessageSubheadline, PlatformNone},
	{ChannelCustomPage, MessageCallToAction, PlatformNone},
}

func TestGetDefault_CompleteForReferencedSlots(t *testing.T) {
	for _, d := range referencedSlots {
		got := GetDefault(d.Channel, d.MessageType, d.Platform)
		assert.NotEmpty(t, got, "missing default for %s/%s/%s", d.Channel, d.MessageType, d.Platform)
	}
}

func TestGetDefault_UnknownTripleReturnsEmpty(t *testing.T) {
	assert.Equal(t, "", GetDefault(ChannelEmail, MessagePageTitle, PlatformNone))
	assert.Equal(t, "", GetDefault(Channel("sms"), MessageRequest, PlatformNone))
	assert.Equal(t, "", GetDefault(ChannelSocial, MessageRequest, Platform("mastodon")))
}

func TestListSuggestions_AuthoredOrder(t *testing.T) {
	got := ListSuggestions(ChannelEmail, MessageRequest, PlatformNone)
	require.Len(t, got, 2)
	assert.True(t, strings.HasPrefix(got[0], "Hey {{name}}!"))
	assert.True(t, strings.HasPrefix(got[1], "Hi {{name}},"))
}

func TestListSuggestions_EmptyWhenNoneRegistered(t *testing.T) {
	assert.Empty(t, ListSuggestions(ChannelChat, MessageThankYou, PlatformNone))
	assert.Empty(t, ListSuggestions(Channel("sms"), MessageRequest, PlatformNone))
}

func TestListSuggestions_ReturnsCopy(t *testing.T) {
	got := ListSuggestions(ChannelCustomPage, MessageHeadline, PlatformNone)
	require.NotEmpty(t, got)
	got[0] = "mutated"

	again := ListSuggestions(ChannelCustomPage, MessageHeadline, PlatformNone)
	assert.NotEqual(t, "mutated", again[0])
}

func TestPlatformDefaults_FitTheirOwnLimits(t *testing.T) {
	for _, d := range RegisteredDefaults() {
		if d.Platform == PlatformNone {
			continue
		}
		rendered := Resolve(GetDefault(d.Channel, d.MessageType, d.Platform), PreviewContext("Acme"))
		assert.True(t, FitsLimit(d.Platform, rendered),
			"default for %s/%s/%s exceeds its own platform limit", d.Channel, d.MessageType, d.Platform)
	}
}

func TestCharacterLimits(t *testing.T) {
	assert.Equal(t, 280, CharacterLimit(PlatformTwitter))
	assert.Equal(t, 3000, CharacterLimit(PlatformLinkedIn))
	assert.Equal(t, 0, CharacterLimit(PlatformNone))

	assert.True(t, FitsLimit(PlatformTwitter, strings.Repeat("x", 280)))
	assert.False(t, FitsLimit(PlatformTwitter, strings.Repeat("x", 281)))
	// Runes, not bytes.
	assert.True(t, FitsLimit(PlatformTwitter, strings.Repeat("é", 280)))
	// No limit means everything fits.
	assert.True(t, FitsLimit(PlatformNone, strings.Repeat("x", 100000)))
}

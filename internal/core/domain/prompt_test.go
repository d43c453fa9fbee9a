package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPromptModeDetection(t *testing.T) {
	tests := []struct {
		name        string
		userContext string
		mode        Mode
		wantMode    Mode
	}{
		{
			name:        "direct keyword only",
			userContext: "at the beach during sunset",
			mode:        ModeAuto,
			wantMode:    ModeDirect,
		},
		{
			name:        "mirror keyword only",
			userContext: "wearing a red dress",
			mode:        ModeAuto,
			wantMode:    ModeMirror,
		},
		{
			name:        "both keyword sets resolve to direct",
			userContext: "wearing sunglasses at a cafe",
			mode:        ModeAuto,
			wantMode:    ModeDirect,
		},
		{
			name:        "no keywords default to mirror",
			userContext: "doing something unusual",
			mode:        ModeAuto,
			wantMode:    ModeMirror,
		},
		{
			name:        "case insensitive matching",
			userContext: "at a fancy RESTAURANT",
			mode:        ModeAuto,
			wantMode:    ModeDirect,
		},
		{
			name:        "hyphenated keyword",
			userContext: "a close-up shot",
			mode:        ModeAuto,
			wantMode:    ModeDirect,
		},
		{
			name:        "explicit mirror wins over direct keywords",
			userContext: "at a cafe",
			mode:        ModeMirror,
			wantMode:    ModeMirror,
		},
		{
			name:        "explicit direct wins over mirror keywords",
			userContext: "wearing a suit",
			mode:        ModeDirect,
			wantMode:    ModeDirect,
		},
		{
			name:        "empty context defaults to mirror",
			userContext: "",
			mode:        ModeAuto,
			wantMode:    ModeMirror,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gotMode, _ := BuildPrompt(tc.userContext, tc.mode)
			assert.Equal(t, tc.wantMode, gotMode)
		})
	}
}

func TestBuildPromptMirrorTemplate(t *testing.T) {
	mode, prompt := BuildPrompt("wearing a santa hat", ModeAuto)

	assert.Equal(t, ModeMirror, mode)
	assert.Equal(t, "make a pic of this person, but wearing a santa hat. the person is taking a mirror selfie", prompt)
}

func TestBuildPromptDirectTemplate(t *testing.T) {
	mode, prompt := BuildPrompt("a cozy cafe with warm lighting", ModeAuto)

	assert.Equal(t, ModeDirect, mode)
	assert.Equal(t, "a close-up selfie taken by herself at a cozy cafe with warm lighting, "+
		"direct eye contact with the camera, looking straight into the lens, "+
		"eyes centered and clearly visible, not a mirror selfie, "+
		"phone held at arm's length, face fully visible", prompt)
}

func TestBuildPromptIsDeterministic(t *testing.T) {
	_, first := BuildPrompt("wearing a suit at a beach", ModeAuto)
	_, second := BuildPrompt("wearing a suit at a beach", ModeAuto)

	assert.Equal(t, first, second)
}

func TestParseMode(t *testing.T) {
	for _, valid := range []string{"auto", "mirror", "direct"} {
		mode, err := ParseMode(valid)
		require.NoError(t, err)
		assert.Equal(t, Mode(valid), mode)
	}

	_, err := ParseMode("selfie")
	require.Error(t, err)
}

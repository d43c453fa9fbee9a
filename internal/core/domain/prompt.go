package domain

import (
	"fmt"
	"regexp"
)

type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeMirror Mode = "mirror"
	ModeDirect Mode = "direct"
)

// The direct set is checked first, so text matching both sets resolves to
// direct. Keep this order, downstream prompts depend on it.
var (
	directKeywords = regexp.MustCompile(`(?i)\b(cafe|restaurant|beach|park|city|close-up|portrait|face|eyes|smile)\b`)
	mirrorKeywords = regexp.MustCompile(`(?i)\b(outfit|wearing|clothes|dress|suit|fashion|full-body|mirror)\b`)
)

const (
	mirrorTemplate = "make a pic of this person, but %s. the person is taking a mirror selfie"
	directTemplate = "a close-up selfie taken by herself at %s, direct eye contact with the camera, " +
		"looking straight into the lens, eyes centered and clearly visible, not a mirror selfie, " +
		"phone held at arm's length, face fully visible"
)

// BuildPrompt resolves the selfie mode for the given user context and renders
// the matching template. It is a pure function, identical input always yields
// identical output.
func BuildPrompt(userContext string, mode Mode) (Mode, string) {
	resolved := mode
	if resolved == ModeAuto || resolved == "" {
		resolved = detectMode(userContext)
	}

	if resolved == ModeDirect {
		return ModeDirect, fmt.Sprintf(directTemplate, userContext)
	}

	return ModeMirror, fmt.Sprintf(mirrorTemplate, userContext)
}

func detectMode(userContext string) Mode {
	if directKeywords.MatchString(userContext) {
		return ModeDirect
	}

	if mirrorKeywords.MatchString(userContext) {
		return ModeMirror
	}

	return ModeMirror
}

// ParseMode maps a CLI flag value onto a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAuto, ModeMirror, ModeDirect:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown mode: %s", s)
	}
}

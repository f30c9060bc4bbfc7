package intelligence

import (
	"strings"

	"saathi/utils"
)

// StripCodeFences removes markdown code fences the model sometimes
// wraps around JSON replies.
func StripCodeFences(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

// MatchSkills filters a comma-separated model reply down to tags from
// the closed vocabulary. "NONE" and unrecognised tokens drop out.
func MatchSkills(raw string) []string {
	matched := []string{}
	for _, token := range strings.Split(strings.ToUpper(raw), ",") {
		tag := utils.CanonicalSkill(token)
		if tag == "" || tag == "NONE" {
			continue
		}
		if utils.IsValidSkill(tag) && !contains(matched, tag) {
			matched = append(matched, tag)
		}
	}
	return matched
}

func contains(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// DetectAudioMimeType infers the payload mime type from the uploaded
// file name, defaulting to webm.
func DetectAudioMimeType(filename string) string {
	switch {
	case strings.HasSuffix(filename, ".mp3"):
		return "audio/mp3"
	case strings.HasSuffix(filename, ".wav"):
		return "audio/wav"
	case strings.HasSuffix(filename, ".m4a"):
		return "audio/mp4"
	case strings.HasSuffix(filename, ".ogg"):
		return "audio/ogg"
	case strings.HasSuffix(filename, ".flac"):
		return "audio/flac"
	case strings.HasSuffix(filename, ".aac"):
		return "audio/aac"
	case strings.HasSuffix(filename, ".webm"):
		return "audio/webm"
	}
	return "audio/webm"
}

package parser

import (
	"encoding/json"
	"strings"

	"study-assistant-be/internal/entity"
)

// LegacyMarker identifies summaries written before chapter parsing existed.
// The old pipeline stored the raw model output as a single chapter whose
// title was the opening code fence.
const LegacyMarker = "```json"

// IsLegacy reports whether a chapter list is an unparsed legacy record.
func IsLegacy(chapters []entity.Chapter) bool {
	return len(chapters) == 1 && strings.TrimSpace(chapters[0].Title) == LegacyMarker
}

// UpgradeLegacyChapters rewrites a legacy record into proper chapters by
// recovering the JSON array embedded in its content. Any failure returns the
// input unchanged; old records must never be corrupted by a bad upgrade.
func UpgradeLegacyChapters(chapters []entity.Chapter) []entity.Chapter {
	if !IsLegacy(chapters) {
		return chapters
	}

	content := chapters[0].Content
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start < 0 || end <= start {
		return chapters
	}

	var upgraded []entity.Chapter
	if err := json.Unmarshal([]byte(content[start:end+1]), &upgraded); err != nil {
		return chapters
	}

	valid := make([]entity.Chapter, 0, len(upgraded))
	for _, ch := range upgraded {
		ch.Title = strings.TrimSpace(ch.Title)
		ch.Content = strings.TrimSpace(ch.Content)
		if ch.Title == "" && ch.Content == "" {
			continue
		}
		valid = append(valid, ch)
	}
	if len(valid) == 0 {
		return chapters
	}
	return valid
}

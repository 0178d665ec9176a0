// Package parser turns raw model output into structured quiz and summary
// data. Model responses are unreliable: sometimes clean fenced JSON, sometimes
// JSON buried in prose, sometimes plain text. Every entry point degrades
// gracefully instead of trusting the format.
package parser

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"study-assistant-be/internal/entity"
)

var (
	ErrNoJSON = errors.New("no JSON payload found in response")

	fencedJSONRe = regexp.MustCompile("(?s)```(?:json)?\\s*([\\[{].*?[\\]}])\\s*```")
)

// ExtractFencedJSON pulls the first fenced JSON object or array out of a
// response. Returns "" when the text carries no fenced payload.
func ExtractFencedJSON(text string) string {
	m := fencedJSONRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

type quizPayload struct {
	Questions []entity.Question `json:"questions"`
}

// ParseQuiz decodes a quiz response. The payload may be fenced or bare.
// Questions that fail validation are dropped; the error is reserved for
// responses with no decodable JSON at all.
func ParseQuiz(text string) ([]entity.Question, error) {
	raw := ExtractFencedJSON(text)
	if raw == "" {
		raw = strings.TrimSpace(text)
	}

	var payload quizPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, ErrNoJSON
	}

	valid := make([]entity.Question, 0, len(payload.Questions))
	for _, q := range payload.Questions {
		if validQuestion(q) {
			valid = append(valid, q)
		}
	}
	return valid, nil
}

func validQuestion(q entity.Question) bool {
	if strings.TrimSpace(q.Question) == "" {
		return false
	}
	if len(q.Options) != 4 {
		return false
	}
	seen := make(map[int]bool, 4)
	answerValid := false
	for _, opt := range q.Options {
		if seen[opt.Id] {
			return false
		}
		seen[opt.Id] = true
		if strings.TrimSpace(opt.Text) == "" {
			return false
		}
		if opt.Id == q.CorrectAnswer {
			answerValid = true
		}
	}
	return answerValid
}

// Renumber assigns sequential ids starting at 1. Used after questions from
// several files are merged into one quiz.
func Renumber(questions []entity.Question) []entity.Question {
	for i := range questions {
		questions[i].Id = i + 1
	}
	return questions
}

// ParseChapters decodes a summary response into chapters. Three tiers: fenced
// JSON array, bare JSON array, then a plain-text heuristic split. It never
// fails; text that yields no usable chapter produces an empty result. Every
// returned chapter has a non-empty title and content.
func ParseChapters(text string) []entity.Chapter {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	if raw := ExtractFencedJSON(text); raw != "" {
		if chapters := decodeChapters(raw); chapters != nil {
			return chapters
		}
	}

	if chapters := decodeChapters(strings.TrimSpace(text)); chapters != nil {
		return chapters
	}

	return splitPlainText(text)
}

func decodeChapters(raw string) []entity.Chapter {
	var chapters []entity.Chapter
	if err := json.Unmarshal([]byte(raw), &chapters); err != nil {
		return nil
	}

	valid := make([]entity.Chapter, 0, len(chapters))
	for _, ch := range chapters {
		ch.Title = strings.TrimSpace(ch.Title)
		ch.Content = strings.TrimSpace(ch.Content)
		if ch.Title == "" || ch.Content == "" {
			continue
		}
		valid = append(valid, ch)
	}
	if len(valid) == 0 {
		return nil
	}
	return valid
}

var headingRe = regexp.MustCompile(`^(#+\s+|Chapter\b|Section\b|\d+\.\s+)`)

// splitPlainText carves prose into chapters on blank-line boundaries. The
// first line of each block is the title and the rest is the body; a block
// that is only a heading titles the block that follows. Blocks that cannot
// yield both a title and a body are dropped.
func splitPlainText(text string) []entity.Chapter {
	blocks := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n")

	chapters := make([]entity.Chapter, 0, len(blocks))
	pending := ""
	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		lines := strings.SplitN(block, "\n", 2)
		first := strings.TrimSpace(lines[0])

		if len(lines) == 1 && headingRe.MatchString(first) {
			pending = strings.TrimSpace(strings.TrimLeft(first, "# "))
			continue
		}

		if pending != "" {
			chapters = append(chapters, entity.Chapter{Title: pending, Content: block})
			pending = ""
			continue
		}

		if len(lines) < 2 {
			continue
		}

		title := strings.TrimSpace(strings.TrimLeft(first, "# "))
		content := strings.TrimSpace(lines[1])
		if title == "" || content == "" {
			continue
		}
		chapters = append(chapters, entity.Chapter{Title: title, Content: content})
	}

	return chapters
}

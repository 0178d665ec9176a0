package gemini

import (
	"context"
	"fmt"
	"strings"

	"study-assistant-be/pkg/llm"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Provider talks to the Gemini API. A fresh chat session is created per call
// so request history fully determines the context.
type Provider struct {
	client *genai.Client
	model  string
}

func NewProvider(ctx context.Context, apiKey, model string) (*Provider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Provider{
		client: client,
		model:  model,
	}, nil
}

func (p *Provider) Close() error {
	return p.client.Close()
}

func (p *Provider) newModel(system string) *genai.GenerativeModel {
	m := p.client.GenerativeModel(p.model)
	m.SetTemperature(0.5)
	m.SetTopK(10)
	m.SetTopP(0.95)
	m.SetMaxOutputTokens(4096)
	m.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockMediumAndAbove},
	}
	if system != "" {
		m.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(system)},
		}
	}
	return m
}

func (p *Provider) GenerateContent(ctx context.Context, req *llm.Request) (string, error) {
	model := p.newModel(req.System)
	session := model.StartChat()
	session.History = toGenaiHistory(req.History)

	resp, err := session.SendMessage(ctx, toGenaiParts(req.Parts)...)
	if err != nil {
		return "", err
	}

	return extractText(resp), nil
}

func toGenaiHistory(history []llm.Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		contents = append(contents, &genai.Content{
			Role:  mapRole(msg.Role),
			Parts: []genai.Part{genai.Text(msg.Text)},
		})
	}
	return contents
}

// mapRole converts stored roles to what the API expects. Assistant turns are
// persisted as "assistant" but Gemini only knows "model".
func mapRole(role string) string {
	if role == "assistant" {
		return llm.RoleModel
	}
	return role
}

func toGenaiParts(parts []llm.Part) []genai.Part {
	out := make([]genai.Part, 0, len(parts))
	for _, p := range parts {
		switch {
		case p.Text != "":
			out = append(out, genai.Text(p.Text))
		case p.FileURI != "":
			out = append(out, genai.FileData{
				MIMEType: p.FileMIME,
				URI:      p.FileURI,
			})
		case len(p.InlineData) > 0:
			out = append(out, genai.Blob{
				MIMEType: p.InlineMIME,
				Data:     p.InlineData,
			})
		}
	}
	return out
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				text.WriteString(string(t))
			}
		}
	}
	return text.String()
}

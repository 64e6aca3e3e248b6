// Package advisor answers free form questions about a ledger with a
// Gemini model. The local rule based analysis stays available offline;
// this package is the optional online companion behind the assist
// command.
package advisor

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is the model used when the caller does not pick one.
const DefaultModel = "gemini-2.5-flash"

const systemPrompt = `You are a personal finance advisor. The user will
give you a summary of their ledger (accounts, month totals, budgets)
followed by a question. Answer in short practical markdown. Never invent
numbers that are not in the summary.`

// Advisor holds a chat session with the model.
type Advisor struct {
	model string
	chat  *genai.Chat
}

// New opens a chat session. The genai client picks its API key up from
// the environment.
func New(ctx context.Context, client *genai.Client, model string) (*Advisor, error) {
	if model == "" {
		model = DefaultModel
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt}}},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return nil, fmt.Errorf("could not start advisor chat: %w", err)
	}
	return &Advisor{model: model, chat: chat}, nil
}

// Ask sends the ledger summary and question, returning the model's
// markdown answer.
func (a *Advisor) Ask(ctx context.Context, summary, question string) (string, error) {
	prompt := fmt.Sprintf("Ledger summary:\n%s\n\nQuestion: %s", summary, question)
	resp, err := a.chat.Send(ctx, &genai.Part{Text: prompt})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from model %s", a.model)
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/sindico-pro/sindicopro-sub/internal/scope"
)

const defaultModel = openai.GPT4

// completionClient is the subset of openai.Client the provider uses; it is
// easy to stub in tests.
type completionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIGenerator generates replies through the OpenAI chat completion API
// using the Sub persona.
type OpenAIGenerator struct {
	client completionClient
	model  string
}

// NewOpenAIGenerator creates a generator backed by the OpenAI API.
func NewOpenAIGenerator(apiKey, model string) *OpenAIGenerator {
	if model == "" {
		model = defaultModel
	}
	return &OpenAIGenerator{client: openai.NewClient(apiKey), model: model}
}

// Generate produces a reply for an in-scope message.
func (g *OpenAIGenerator) Generate(ctx context.Context, message, recentContext string, hints *scope.Hints) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt(recentContext, hints)},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}

func systemPrompt(recentContext string, hints *scope.Hints) string {
	userContext := "Síndico ou administrador de condomínio"
	if hints != nil && (hints.UserRole != "" || hints.CondoType != "") {
		parts := []string{}
		if hints.UserRole != "" {
			parts = append(parts, "papel: "+hints.UserRole)
		}
		if hints.CondoType != "" {
			parts = append(parts, "tipo de condomínio: "+hints.CondoType)
		}
		userContext = strings.Join(parts, ", ")
	}

	var b strings.Builder
	b.WriteString(`Você é o Sub (Subsíndico IA), um assistente especializado em gestão condominial.

Suas características:
- Você é amigável, profissional e sempre busca a melhor solução
- Você tem conhecimento sobre legislação condominial, manutenção, finanças e comunicação
- Você sempre responde em português brasileiro
- Você é conciso mas completo em suas respostas
- Você oferece orientações práticas e acionáveis
- Você sempre se apresenta como o Sub

Contexto do usuário: `)
	b.WriteString(userContext)
	if recentContext != "" {
		b.WriteString("\n\nConversa recente:\n")
		b.WriteString(recentContext)
	}
	b.WriteString("\n\nResponda de forma clara e útil, sempre se apresentando como o Sub.")
	return b.String()
}

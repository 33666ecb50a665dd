package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sindico-pro/sindicopro-sub/internal/scope"
)

type stubCompletionClient struct {
	req  openai.ChatCompletionRequest
	resp openai.ChatCompletionResponse
	err  error
}

func (c *stubCompletionClient) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	c.req = req
	return c.resp, c.err
}

func TestGenerate(t *testing.T) {
	client := &stubCompletionClient{
		resp: openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "Olá! Sou o Sub."}},
			},
		},
	}
	g := &OpenAIGenerator{client: client, model: defaultModel}

	reply, err := g.Generate(context.Background(), "Qual a taxa?", "Usuário: Olá", nil)
	require.NoError(t, err)
	assert.Equal(t, "Olá! Sou o Sub.", reply)

	require.Len(t, client.req.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, client.req.Messages[0].Role)
	assert.Contains(t, client.req.Messages[0].Content, "gestão condominial")
	assert.Contains(t, client.req.Messages[0].Content, "Usuário: Olá")
	assert.Equal(t, "Qual a taxa?", client.req.Messages[1].Content)
	assert.Equal(t, 500, client.req.MaxTokens)
}

func TestGenerateError(t *testing.T) {
	g := &OpenAIGenerator{client: &stubCompletionClient{err: errors.New("boom")}, model: defaultModel}

	_, err := g.Generate(context.Background(), "Qual a taxa?", "", nil)
	assert.Error(t, err)
}

func TestGenerateEmptyChoices(t *testing.T) {
	g := &OpenAIGenerator{client: &stubCompletionClient{}, model: defaultModel}

	_, err := g.Generate(context.Background(), "Qual a taxa?", "", nil)
	assert.Error(t, err)
}

func TestSystemPromptHints(t *testing.T) {
	prompt := systemPrompt("", &scope.Hints{UserRole: "síndico", CondoType: "residencial"})
	assert.Contains(t, prompt, "papel: síndico")
	assert.Contains(t, prompt, "tipo de condomínio: residencial")

	prompt = systemPrompt("", nil)
	assert.Contains(t, prompt, "Síndico ou administrador de condomínio")
}

package ai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

type OpenAIClient struct {
	client *openai.Client
	model  string
	log    logrus.FieldLogger
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // пусто — api.openai.com
}

func NewOpenAIClient(cfg OpenAIConfig, log logrus.FieldLogger) *OpenAIClient {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
		log:    log.WithField("component", "ai"),
	}
}

func (c *OpenAIClient) Complete(
	ctx context.Context,
	instructions string,
	input string,
	limits Limits,
) (string, error) {

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: instructions},
			{Role: openai.ChatMessageRoleUser, Content: input},
		},
		MaxCompletionTokens: limits.MaxOutputTokens,
		Temperature:         limits.Temperature,
	})
	if err != nil {
		c.log.WithError(err).Error("completion failed")
		return "", err
	}

	if len(resp.Choices) == 0 {
		c.log.Warn("empty choices")
		return "", nil
	}

	raw := resp.Choices[0].Message.Content

	c.log.WithFields(logrus.Fields{
		"model":         resp.Model,
		"finish_reason": resp.Choices[0].FinishReason,
		"output_tokens": resp.Usage.CompletionTokens,
	}).Debug("completion received")

	return raw, nil
}

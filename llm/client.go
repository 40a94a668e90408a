package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"golang.org/x/time/rate"

	"github.com/sportsmockery/smgo/config"
)

const askSystemPrompt = "You are the Sports Mockery assistant, an expert on Chicago sports " +
	"(Bears, Bulls, Cubs, White Sox, Blackhawks). Answer reader questions concisely " +
	"in plain text. Stay on Chicago sports; politely decline anything else."

const gradeSystemPrompt = "You are an NFL/NBA/MLB/NHL front-office analyst grading proposed " +
	"trades for realism and value. You only output JSON."

// Client wraps the chat model behind /api/ask-ai and GM trade grading.
type Client struct {
	cm      model.ChatModel
	limiter *rate.Limiter
}

// New builds an LLM client from application config. Returns an error when no
// API key is configured; callers keep a nil client and fall back to
// heuristics in that case.
func New(ctx context.Context, cfg config.AppConfig) (*Client, error) {
	if cfg.LLMAPIKey == "" {
		return nil, fmt.Errorf("llm: no API key configured")
	}

	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: cfg.LLMBaseURL,
		APIKey:  cfg.LLMAPIKey,
		Model:   cfg.LLMModel,
	})
	if err != nil {
		return nil, fmt.Errorf("llm: init chat model: %w", err)
	}

	limiter := rate.NewLimiter(rate.Limit(float64(cfg.LLMRPM)/60.0), 1)
	return &Client{cm: cm, limiter: limiter}, nil
}

// Answer returns a single plain-text reply to a reader question.
func (c *Client) Answer(ctx context.Context, question string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	messages := []*schema.Message{
		{Role: schema.System, Content: askSystemPrompt},
		{Role: schema.User, Content: question},
	}
	resp, err := c.cm.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("llm: generate: %w", err)
	}
	return strings.TrimSpace(resp.Content), nil
}

// TradeGrade is the parsed grading verdict.
type TradeGrade struct {
	Grade    int    `json:"grade"`
	Verdict  string `json:"verdict"`
	Analysis string `json:"analysis"`
}

// GradeTrade asks the model to grade a proposed trade. tradeJSON is the raw
// trade document as submitted by the client.
func (c *Client) GradeTrade(ctx context.Context, team string, tradeJSON string) (*TradeGrade, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`Grade the following trade proposed by the general manager of the %s.

Trade document:
%s

Return strictly this JSON, no markdown fences:
{"grade": <integer 0-100, 100 = franchise-altering win>, "verdict": "<short label like 'Fleece' or 'Overpay'>", "analysis": "<2-4 sentences on value, fit, and cap impact>"}`, team, tradeJSON)

	messages := []*schema.Message{
		{Role: schema.System, Content: gradeSystemPrompt},
		{Role: schema.User, Content: prompt},
	}
	resp, err := c.cm.Generate(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("llm: generate: %w", err)
	}

	var grade TradeGrade
	if err := json.Unmarshal([]byte(ExtractJSON(resp.Content)), &grade); err != nil {
		return nil, fmt.Errorf("llm: parse grade reply: %w", err)
	}
	if grade.Grade < 0 {
		grade.Grade = 0
	}
	if grade.Grade > 100 {
		grade.Grade = 100
	}
	return &grade, nil
}

// ExtractJSON pulls the first top-level JSON object out of a model reply,
// tolerating markdown code fences and prose around it.
func ExtractJSON(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			return s[start : end+1]
		}
	}
	return s
}

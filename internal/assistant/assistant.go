// Package assistant is the orchestration entry point: it classifies a query,
// dispatches to the matching specialist, runs the LLM exchange with that
// specialist's tool set, and maps failures into user-safe messages.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/oakmund/finsight/internal/classify"
	"github.com/oakmund/finsight/internal/core"
	"github.com/oakmund/finsight/internal/llm"
	"github.com/oakmund/finsight/internal/metrics"
	"github.com/oakmund/finsight/internal/session"
	"github.com/oakmund/finsight/internal/specialist"
	"github.com/oakmund/finsight/internal/tools"
)

// Config holds assistant tuning parameters.
type Config struct {
	MaxTokens    int
	Temperature  float64
	ToolRounds   int // max tool invocations per exchange
	HistoryLimit int // prior turns included as context; 0 means all
}

// DefaultConfig returns default assistant configuration.
func DefaultConfig() Config {
	return Config{
		MaxTokens:    2000,
		Temperature:  0.3,
		ToolRounds:   4,
		HistoryLimit: 40,
	}
}

// Assistant routes queries to specialists and drives the LLM exchange.
type Assistant struct {
	cfg        Config
	provider   llm.Provider
	classifier *classify.Classifier
	table      *specialist.Table
	registry   *tools.Registry
	logger     *zap.Logger
	metrics    *metrics.Registry
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithConfig overrides the default tuning parameters.
func WithConfig(cfg Config) Option {
	return func(a *Assistant) { a.cfg = cfg }
}

// WithClassifier overrides the default rule set.
func WithClassifier(c *classify.Classifier) Option {
	return func(a *Assistant) { a.classifier = c }
}

// WithTable overrides the default specialist table.
func WithTable(t *specialist.Table) Option {
	return func(a *Assistant) { a.table = t }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *Assistant) { a.logger = l }
}

// WithMetrics attaches a metrics registry.
func WithMetrics(m *metrics.Registry) Option {
	return func(a *Assistant) { a.metrics = m }
}

// New creates an assistant. provider may be nil; every call then fails with a
// configuration error rather than a panic, mirroring a missing credential.
func New(provider llm.Provider, registry *tools.Registry, opts ...Option) *Assistant {
	a := &Assistant{
		cfg:        DefaultConfig(),
		provider:   provider,
		classifier: classify.New(),
		table:      specialist.DefaultTable(),
		registry:   registry,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = zap.NewNop()
	}
	return a
}

// ToolCall records one executed tool invocation within an exchange.
type ToolCall struct {
	Tool   string
	Args   json.RawMessage
	Result any
	Err    error
}

// Result is the outcome of one successful exchange.
type Result struct {
	Route      core.Route
	Specialist string
	Text       string
	ToolCalls  []ToolCall
}

// Route classifies a query without running it, returning the routing target
// and the specialist it selects.
func (a *Assistant) Route(query string) (core.Route, string) {
	route := a.classifier.Route(query)
	return route, a.table.For(route).Name
}

// Run processes a single query to completion and returns the structured
// result. The session, when present, supplies conversational context; Run
// does not append to it — Respond does.
func (a *Assistant) Run(ctx context.Context, query string, sess *session.Session) (*Result, error) {
	if a.provider == nil {
		return nil, core.ErrConfigMissing
	}

	start := time.Now()
	route := a.classifier.Route(query)
	sp := a.table.For(route)

	a.logger.Debug("query routed",
		zap.String("route", string(route)),
		zap.String("specialist", sp.Name),
	)

	result, err := a.exchange(ctx, query, sess, sp)
	if err != nil {
		classified := core.ClassifyProviderError(err)
		if a.metrics != nil {
			a.metrics.RecordError(classified.Code)
		}
		return nil, classified
	}

	result.Route = route
	result.Specialist = sp.Name
	if a.metrics != nil {
		a.metrics.RecordQuery(string(route), time.Since(start).Seconds())
	}
	return result, nil
}

// Respond runs a query and always returns a user-safe string. Failures come
// back as ⚠️-prefixed messages per the error contract. When a session is
// provided, the query and the returned string are appended as one exchange,
// so a session holds exactly two turns per call.
func (a *Assistant) Respond(ctx context.Context, query string, sess *session.Session) string {
	result, err := a.Run(ctx, query, sess)

	var text string
	if err != nil {
		text = UserMessage(err)
		a.logger.Warn("query failed", zap.Error(err))
	} else {
		text = result.Text
	}

	if sess != nil {
		sess.Append(session.RoleUser, query)
		sess.Append(session.RoleAssistant, text)
	}
	return text
}

// exchange drives the LLM conversation for one query, executing tool calls
// the model requests until it produces a final answer or the round budget is
// exhausted.
func (a *Assistant) exchange(ctx context.Context, query string, sess *session.Session, sp specialist.Specialist) (*Result, error) {
	messages := a.historyMessages(sess)
	messages = append(messages, llm.Message{Role: "user", Content: query})

	result := &Result{}
	systemPrompt := a.systemPrompt(sp)

	for round := 0; ; round++ {
		resp, err := a.chat(ctx, llm.ChatRequest{
			SystemPrompt: systemPrompt,
			Messages:     messages,
			MaxTokens:    a.cfg.MaxTokens,
			Temperature:  a.cfg.Temperature,
		})
		if err != nil {
			return nil, err
		}

		call, ok := parseToolCall(resp.Content)
		if !ok || round >= a.cfg.ToolRounds {
			result.Text = resp.Content
			return result, nil
		}

		output := a.executeTool(ctx, sp, call)
		result.ToolCalls = append(result.ToolCalls, output)

		payload, perr := json.Marshal(output.Result)
		feedback := string(payload)
		if output.Err != nil {
			feedback = fmt.Sprintf(`{"error": %q}`, output.Err.Error())
		} else if perr != nil {
			feedback = fmt.Sprintf(`{"error": %q}`, perr.Error())
		}

		messages = append(messages,
			llm.Message{Role: "assistant", Content: resp.Content},
			llm.Message{Role: "user", Content: fmt.Sprintf("Tool %s returned: %s\nUse this result to answer the original question.", call.Tool, feedback)},
		)
	}
}

// chat wraps the provider call with latency/token metrics.
func (a *Assistant) chat(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	start := time.Now()
	resp, err := a.provider.Chat(ctx, req)
	if a.metrics != nil {
		status := "ok"
		var in, out int
		if err != nil {
			status = "error"
		} else {
			in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
		}
		a.metrics.RecordLLMRequest(a.provider.Name(), status, time.Since(start).Seconds(), in, out)
	}
	return resp, err
}

// executeTool runs one requested tool, enforcing the specialist's allow-list.
func (a *Assistant) executeTool(ctx context.Context, sp specialist.Specialist, call toolCall) ToolCall {
	out := ToolCall{Tool: call.Tool, Args: call.Arguments}

	if !sp.AllowsTool(call.Tool) {
		out.Err = core.WrapError(core.ErrInvalidArgument,
			fmt.Errorf("tool %q not available to %s", call.Tool, sp.Name))
	} else {
		out.Result, out.Err = a.registry.Call(ctx, call.Tool, call.Arguments)
	}

	if a.metrics != nil {
		status := "ok"
		if out.Err != nil {
			status = "error"
		}
		a.metrics.RecordToolCall(call.Tool, status)
	}

	a.logger.Debug("tool executed",
		zap.String("tool", call.Tool),
		zap.Bool("ok", out.Err == nil),
	)
	return out
}

// historyMessages converts prior session turns into provider messages,
// bounded by the history limit.
func (a *Assistant) historyMessages(sess *session.Session) []llm.Message {
	if sess == nil {
		return nil
	}
	turns := sess.Turns()
	if a.cfg.HistoryLimit > 0 && len(turns) > a.cfg.HistoryLimit {
		turns = turns[len(turns)-a.cfg.HistoryLimit:]
	}
	messages := make([]llm.Message, len(turns))
	for i, t := range turns {
		messages[i] = llm.Message{Role: string(t.Role), Content: t.Content}
	}
	return messages
}

// systemPrompt combines the persona with its tool protocol.
func (a *Assistant) systemPrompt(sp specialist.Specialist) string {
	toolHelp := a.registry.Describe(sp.Tools)
	if toolHelp == "" {
		return sp.SystemPrompt
	}
	return sp.SystemPrompt + "\n\nAvailable tools:\n" + toolHelp +
		"\nTo use a tool, reply with ONLY a JSON object of the form " +
		`{"tool": "<name>", "arguments": {...}}` +
		". Otherwise reply with the final answer in plain text."
}

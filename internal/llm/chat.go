package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// maxToolRounds ограничивает число циклов вызова инструментов на одну реплику.
const maxToolRounds = 8

const systemPrompt = "Ты — ассистент оператора симулируемого манипулятора. " +
	"Используй предоставленные инструменты для выполнения команд оператора. " +
	"Отвечай кратко и сообщай результат каждого действия. " +
	"Если действие завершилось ошибкой, объясни причину и не повторяй его вслепую."

// ToolExecutor выполняет именованное действие манипулятора и возвращает
// сериализованный результат.
type ToolExecutor interface {
	ExecuteTool(ctx context.Context, name string, arguments json.RawMessage) (string, error)
}

// Session ведет диалог с LLM, выполняя запрошенные вызовы инструментов.
type Session struct {
	client   openai.Client
	executor ToolExecutor
	model    string
	messages []openai.ChatCompletionMessageParamUnion
}

// NewSession создает диалоговую сессию с заданной моделью.
func NewSession(apiKey, model string, executor ToolExecutor) *Session {
	return &Session{
		client:   openai.NewClient(option.WithAPIKey(apiKey)),
		executor: executor,
		model:    model,
		messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
		},
	}
}

// Send отправляет реплику пользователя и возвращает финальный ответ модели,
// выполнив по пути все запрошенные вызовы инструментов.
func (s *Session) Send(ctx context.Context, userText string) (string, error) {
	s.messages = append(s.messages, openai.UserMessage(userText))

	for round := 0; round < maxToolRounds; round++ {
		completion, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
			Model:    openai.ChatModel(s.model),
			Messages: s.messages,
			Tools:    ToolSchemas(),
		})
		if err != nil {
			return "", fmt.Errorf("запрос к LLM не удался: %w", err)
		}
		if len(completion.Choices) == 0 {
			return "", fmt.Errorf("LLM вернула пустой ответ")
		}

		msg := completion.Choices[0].Message
		s.messages = append(s.messages, msg.ToParam())

		if len(msg.ToolCalls) == 0 {
			return msg.Content, nil
		}

		for _, call := range msg.ToolCalls {
			result, err := s.executor.ExecuteTool(ctx, call.Function.Name, json.RawMessage(call.Function.Arguments))
			if err != nil {
				result = fmt.Sprintf(`{"ok":false,"error":%q}`, err.Error())
			}
			s.messages = append(s.messages, openai.ToolMessage(result, call.ID))
		}
	}

	return "", fmt.Errorf("превышен лимит циклов вызова инструментов (%d)", maxToolRounds)
}

package ai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/floor-assistant/internal/application/ports"
	"github.com/jhoicas/floor-assistant/internal/domain"
)

func TestOpenAI_SinAPIKey(t *testing.T) {
	_, err := NewOpenAIService("", "", "").ChatWithTools(context.Background(), ports.ChatRequest{})
	assert.True(t, errors.Is(err, domain.ErrAIUnavailable))
}

func TestOpenAI_ToolCalls(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id":"chatcmpl-1","object":"chat.completion","created":1,"model":"gpt-test",
			"choices":[{"index":0,"finish_reason":"tool_calls","message":{
				"role":"assistant","content":null,
				"tool_calls":[{"id":"call_9","type":"function","function":{"name":"get_our_store_info","arguments":"{}"}}]
			}}],
			"usage":{"prompt_tokens":1,"completion_tokens":1,"total_tokens":2}
		}`))
	}))
	defer srv.Close()

	svc := NewOpenAIService("k", "gpt-test", srv.URL+"/")
	resp, err := svc.ChatWithTools(context.Background(), ports.ChatRequest{
		System: "sys",
		Messages: []ports.ChatMessage{
			{Role: ports.RoleUser, Content: "where are we?"},
		},
		Tools:     []ports.ToolSpec{{Name: "get_our_store_info", Description: "d", Schema: json.RawMessage(`{"type":"object","properties":{}}`)}},
		MaxTokens: 128,
	})
	require.NoError(t, err)

	assert.Equal(t, "tool_calls", resp.StopReason)
	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, "call_9", resp.ToolCalls[0].ID)
	assert.Equal(t, "get_our_store_info", resp.ToolCalls[0].Name)

	assert.Equal(t, "gpt-test", body["model"])
	msgs, ok := body["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 2)
	first, _ := msgs[0].(map[string]any)
	assert.Equal(t, "system", first["role"])
}

func TestToOpenAIMessages_Herramientas(t *testing.T) {
	msgs := toOpenAIMessages("", []ports.ChatMessage{
		{Role: ports.RoleUser, Content: "hola"},
		{Role: ports.RoleAssistant, ToolCalls: []ports.ToolCall{{ID: "a", Name: "list_store_ids"}}},
		{Role: ports.RoleTool, ToolCallID: "a", Content: "Available stores:"},
	})

	require.Len(t, msgs, 3)
	require.NotNil(t, msgs[1].OfAssistant)
	assert.Equal(t, "{}", msgs[1].OfAssistant.ToolCalls[0].Function.Arguments)
	require.NotNil(t, msgs[2].OfTool)
	assert.Equal(t, "a", msgs[2].OfTool.ToolCallID)
}

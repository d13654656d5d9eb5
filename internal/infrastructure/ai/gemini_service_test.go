package ai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/floor-assistant/internal/application/ports"
	"github.com/jhoicas/floor-assistant/internal/domain"
)

func TestGemini_SinAPIKey(t *testing.T) {
	_, err := NewGeminiService("", "").ChatWithTools(context.Background(), ports.ChatRequest{})
	assert.True(t, errors.Is(err, domain.ErrAIUnavailable))
}

func TestGemini_FunctionCall(t *testing.T) {
	var got geminiRequest
	var path, key string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		key = r.URL.Query().Get("key")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[
			{"functionCall":{"name":"check_our_store_inventory","args":{"color":"Red"}}}
		]},"finishReason":"STOP"}]}`))
	}))
	defer srv.Close()

	svc := NewGeminiService("k-1", "gemini-test").WithBaseURL(srv.URL)
	resp, err := svc.ChatWithTools(context.Background(), ports.ChatRequest{
		System:   "sys",
		Messages: []ports.ChatMessage{{Role: ports.RoleUser, Content: "red chairs?"}},
		Tools: []ports.ToolSpec{
			{Name: "check_our_store_inventory", Description: "d", Schema: json.RawMessage(`{"type":"object","properties":{"color":{"type":"string"}}}`)},
			{Name: "list_store_ids", Description: "d", Schema: json.RawMessage(`{"type":"object","properties":{}}`)},
		},
		MaxTokens: 512,
	})
	require.NoError(t, err)

	assert.Equal(t, "/models/gemini-test:generateContent", path)
	assert.Equal(t, "k-1", key)
	require.NotNil(t, got.SystemInstruction)
	assert.Equal(t, "sys", got.SystemInstruction.Parts[0].Text)
	require.Len(t, got.Tools, 1)
	require.Len(t, got.Tools[0].FunctionDeclarations, 2)
	assert.NotEmpty(t, got.Tools[0].FunctionDeclarations[0].Parameters)
	assert.Empty(t, got.Tools[0].FunctionDeclarations[1].Parameters)
	assert.Equal(t, 512, got.GenerationConfig.MaxOutputTokens)

	require.Len(t, resp.ToolCalls, 1)
	tc := resp.ToolCalls[0]
	assert.Equal(t, "check_our_store_inventory", tc.Name)
	assert.JSONEq(t, `{"color":"Red"}`, tc.ArgsJSON)
	assert.True(t, strings.HasPrefix(tc.ID, "call_"))
}

func TestGemini_ErrorDeAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid"}}`))
	}))
	defer srv.Close()

	_, err := NewGeminiService("bad", "").WithBaseURL(srv.URL).ChatWithTools(context.Background(), ports.ChatRequest{
		Messages: []ports.ChatMessage{{Role: ports.RoleUser, Content: "hola"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestToGeminiContents_AgrupaRespuestasDeHerramientas(t *testing.T) {
	contents := toGeminiContents([]ports.ChatMessage{
		{Role: ports.RoleUser, Content: "hola"},
		{Role: ports.RoleAssistant, ToolCalls: []ports.ToolCall{
			{ID: "a", Name: "list_store_ids", ArgsJSON: ""},
			{ID: "b", Name: "get_our_store_info", ArgsJSON: "{}"},
		}},
		{Role: ports.RoleTool, ToolCallID: "a", ToolName: "list_store_ids", Content: "Available stores:"},
		{Role: ports.RoleTool, ToolCallID: "b", ToolName: "get_our_store_info", Content: "Our store information:"},
		{Role: ports.RoleAssistant, Content: "listo"},
	})

	require.Len(t, contents, 4)
	assert.Equal(t, "model", contents[1].Role)
	require.Len(t, contents[1].Parts, 2)
	assert.JSONEq(t, `{}`, string(contents[1].Parts[0].FunctionCall.Args))

	assert.Equal(t, "user", contents[2].Role)
	require.Len(t, contents[2].Parts, 2)
	assert.Equal(t, "get_our_store_info", contents[2].Parts[1].FunctionResponse.Name)
	assert.Equal(t, "Our store information:", contents[2].Parts[1].FunctionResponse.Response["content"])

	assert.Equal(t, "listo", contents[3].Parts[0].Text)
}

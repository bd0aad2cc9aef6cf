package http

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"assist_server/core/agent/llm"
	"assist_server/core/domain"
	"assist_server/core/service/ai"
	"assist_server/core/service/stub"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingFallback struct {
	calls int
}

func (f *countingFallback) Classify(email *domain.EmailMessage) domain.Classification {
	f.calls++
	return stub.New().Classify(email)
}

func (f *countingFallback) Draft(req *domain.ToneRequest) domain.DraftReply {
	f.calls++
	return stub.New().Draft(req)
}

type brokenRemote struct {
	calls int
}

func (r *brokenRemote) Provider() string { return "openai" }

func (r *brokenRemote) Classify(context.Context, *domain.EmailMessage) llm.Result[domain.Classification] {
	r.calls++
	return llm.RemoteFailure[domain.Classification](llm.ReasonTransport, errors.New("connection reset"))
}

func (r *brokenRemote) Draft(context.Context, *domain.ToneRequest) llm.Result[domain.DraftReply] {
	r.calls++
	return llm.RemoteFailure[domain.DraftReply](llm.ReasonParse, errors.New("not json"))
}

func newAIApp(registry *llm.ProviderRegistry, remote ai.Remote, fallback ai.Fallback) *fiber.App {
	app := fiber.New()
	api := app.Group("/api")
	NewAIHandler(ai.NewService(registry, remote, fallback)).Register(api)
	return app
}

func post(t *testing.T, app *fiber.App, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

const dealBody = `{"email":{"sender":"a@b.com","subject":"Deal","body":"...","category":"Sales","labels":["Sales"],"priorityScore":40}}`

func TestStatusWithoutCredentials(t *testing.T) {
	app := newAIApp(llm.NewProviderRegistry(nil), nil, stub.New())

	var bodies []string
	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/ai/status", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		b, _ := io.ReadAll(resp.Body)
		bodies = append(bodies, string(b))
	}

	var status map[string]any
	require.NoError(t, json.Unmarshal([]byte(bodies[0]), &status))
	assert.Equal(t, false, status["available"])
	assert.Contains(t, status, "provider")
	assert.Nil(t, status["provider"])
	assert.Equal(t, bodies[0], bodies[1], "status is idempotent")
}

func TestStatusPicksHighestPriority(t *testing.T) {
	app := newAIApp(llm.NewProviderRegistry(map[llm.Provider]string{
		llm.ProviderMistral: "m-key",
		llm.ProviderGemini:  "g-key",
	}), nil, stub.New())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/ai/status", nil))
	require.NoError(t, err)

	var status domain.ProviderStatus
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.True(t, status.Available)
	require.NotNil(t, status.Provider)
	assert.Equal(t, "gemini", *status.Provider)
	assert.True(t, status.Providers["mistral"])
	assert.False(t, status.Providers["openai"])
}

func TestClassifyStubScenario(t *testing.T) {
	app := newAIApp(llm.NewProviderRegistry(nil), nil, stub.New())

	code, body := post(t, app, "/api/ai/classify", dealBody)
	require.Equal(t, 200, code, body)

	var got domain.Classification
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, []string{"Sales"}, got.Labels)
	assert.Equal(t, 40, got.PriorityScore)
	assert.Contains(t, got.Summary, "a@b.com")
}

func TestClassifyFallbackIsByteIdenticalToStub(t *testing.T) {
	stubApp := newAIApp(llm.NewProviderRegistry(nil), nil, stub.New())
	remote := &brokenRemote{}
	failingApp := newAIApp(llm.NewProviderRegistry(map[llm.Provider]string{llm.ProviderOpenAI: "sk-test"}), remote, stub.New())

	stubCode, stubBody := post(t, stubApp, "/api/ai/classify", dealBody)
	code, body := post(t, failingApp, "/api/ai/classify", dealBody)

	assert.Equal(t, 200, stubCode)
	assert.Equal(t, 200, code, "remote failure is not visible to the caller")
	assert.Equal(t, stubBody, body)
	assert.Equal(t, 1, remote.calls)
}

func TestDraftFallbackIsByteIdenticalToStub(t *testing.T) {
	draftBody := `{"email":{"sender":"a@b.com","subject":"Deal"},"tone":"Brief","snippets":[]}`

	stubApp := newAIApp(llm.NewProviderRegistry(nil), nil, stub.New())
	failingApp := newAIApp(llm.NewProviderRegistry(map[llm.Provider]string{llm.ProviderOpenAI: "sk-test"}), &brokenRemote{}, stub.New())

	stubCode, stubBody := post(t, stubApp, "/api/ai/draft", draftBody)
	code, body := post(t, failingApp, "/api/ai/draft", draftBody)
	require.Equal(t, 200, stubCode)
	require.Equal(t, 200, code)
	assert.Equal(t, stubBody, body)

	var got domain.DraftReply
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Len(t, got.Variants, 3)
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		body    string
		message string
	}{
		{"classify empty object", "/api/ai/classify", `{}`, "missing required field: email"},
		{"classify empty body", "/api/ai/classify", ``, "missing required field: email"},
		{"classify null email", "/api/ai/classify", `{"email":null}`, "missing required field: email"},
		{"draft without email", "/api/ai/draft", `{"tone":"Brief"}`, "missing required field: email"},
		{"draft without tone", "/api/ai/draft", `{"email":{"sender":"a@b.com"}}`, "missing required field: tone"},
		{"draft unknown tone", "/api/ai/draft", `{"email":{"sender":"a@b.com"},"tone":"Angry"}`, "invalid input for 'tone': must be one of Professional, Friendly, Brief"},
		{"malformed json", "/api/ai/classify", `{"email":`, "invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := &brokenRemote{}
			fallback := &countingFallback{}
			app := newAIApp(llm.NewProviderRegistry(map[llm.Provider]string{llm.ProviderGroq: "gsk"}), remote, fallback)

			code, body := post(t, app, tt.path, tt.body)
			assert.Equal(t, 400, code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal([]byte(body), &resp))
			assert.Equal(t, tt.message, resp["error"])

			assert.Zero(t, remote.calls, "no remote call on invalid input")
			assert.Zero(t, fallback.calls, "no stub call on invalid input")
		})
	}
}

func TestHealthAndReady(t *testing.T) {
	app := fiber.New()
	svc := ai.NewService(llm.NewProviderRegistry(map[llm.Provider]string{llm.ProviderAnthropic: "sk-ant"}), nil, stub.New())
	NewHealthHandler(svc).Register(app)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/ready", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var ready struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ready))
	assert.Equal(t, "ready", ready.Status)
	assert.Equal(t, "anthropic", ready.Checks["llm"])
}

package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"postforge/config"
	"postforge/controllers"
	"postforge/middlewares"
	"postforge/services"
	"postforge/store"
)

// staticVerifier stands in for the identity provider.
type staticVerifier struct{}

func (staticVerifier) Verify(_ context.Context, token string) (services.Identity, error) {
	if token == "good-token" {
		return services.Identity{UserID: "user-1", Email: "user@example.com"}, nil
	}
	return services.Identity{}, errors.New("unknown token")
}

// upstream emulates the model gateway. It picks a scripted reply from the
// system prompt of each request and counts how often it was reached.
type upstream struct {
	calls int64

	// when set, every call answers with this status and body instead
	status int
	body   string

	// when set, every completion is this free text (used to force the
	// parse-failure paths)
	prose string
}

func (u *upstream) callCount() int64 {
	return atomic.LoadInt64(&u.calls)
}

func (u *upstream) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&u.calls, 1)

		if u.status != 0 {
			w.WriteHeader(u.status)
			w.Write([]byte(u.body))
			return
		}

		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Messages) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		content := u.prose
		if content == "" {
			content = scriptedReply(req.Messages[0].Content)
		}
		b, _ := json.Marshal(content)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": ` + string(b) + `}}]}`))
	}
}

func scriptedReply(systemPrompt string) string {
	switch {
	case strings.Contains(systemPrompt, "brand analyst"):
		return "```json\n" + `{
			"voice": {"tone": "Confident", "emojiUsage": "minimal", "ctaStyle": "Direct", "languagePatterns": ["Short sentences"]},
			"visualIdentity": {"colors": ["#102030", "#405060", "#708090", "#A0B0C0"], "layoutStyle": "Clean", "typographyStyle": "Sans-serif"},
			"messagingPatterns": {"themes": ["Craft"], "valueProps": ["Reliability"], "targetAudience": "Builders"},
			"summary": "A confident, craft-focused brand."
		}` + "\n```"
	case strings.Contains(systemPrompt, "content creator"):
		return "```json\n" + `{"variations": [
			{"id": "v1", "caption": "First take on the launch story.", "imageDescription": "Hero shot", "textOverlay": "LAUNCH DAY IS HERE", "hashtags": ["launch"], "qualityScore": 84, "strengths": ["clear"], "improvements": ["hook"]},
			{"id": "v2", "caption": "Second take with a question hook.", "imageDescription": "Team at work", "textOverlay": "BIG NEWS TODAY", "hashtags": ["news"], "qualityScore": 82, "strengths": ["hook"], "improvements": ["cta"]},
			{"id": "v3", "caption": "Third take focused on the community.", "imageDescription": "Community collage", "textOverlay": "MADE WITH YOU", "hashtags": ["community"], "qualityScore": 81, "strengths": ["warmth"], "improvements": ["length"]}
		]}` + "\n```"
	case strings.Contains(systemPrompt, "quality reviewer"):
		return "```json\n" + `{
			"evaluations": [
				{"criterion": "Brand Consistency", "score": 90, "feedback": "On voice"},
				{"criterion": "Message Clarity", "score": 70, "feedback": "Dense", "suggestion": "Shorten"},
				{"criterion": "CTA Effectiveness", "score": 90, "feedback": "Fine"},
				{"criterion": "Text Readability", "score": 90, "feedback": "Fine"}
			],
			"overallScore": 85,
			"needsImprovement": true,
			"improvedCaption": "Reviewed and sharpened launch caption.",
			"improvedTextOverlay": "SHARPER LAUNCH",
			"summary": "Improved clarity"
		}` + "\n```"
	case strings.Contains(systemPrompt, "content editor"):
		return "```json\n" + `{
			"improvedCaption": "Tightened caption after feedback.",
			"improvedTextOverlay": "TIGHT",
			"changes": ["Removed filler"],
			"qualityScore": 91
		}` + "\n```"
	default:
		return "unscripted prompt"
	}
}

// testEnv wires the full router against a scripted upstream.
type testEnv struct {
	router *gin.Engine
	store  *store.Store
	up     *upstream
}

func newTestEnv(t *testing.T, up *upstream) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	server := httptest.NewServer(up.handler())
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Gateway.URL = server.URL
	cfg.Gateway.ApiKey = "test-key"
	cfg.Gateway.Model = "test-model"
	cfg.Gateway.ImageModel = "test-image-model"
	services.InitContentService(cfg, zerolog.Nop())

	st := store.New()
	st.Seed()

	router := gin.New()
	auth := router.Group("/")
	auth.Use(middlewares.AuthMiddleware(staticVerifier{}))
	SetupContentRoutes(auth, controllers.NewBrandController(st))
	SetupSessionRoutes(auth, controllers.NewPlanController(st), controllers.NewVariationController(st), controllers.NewWorkflowController(st))

	return &testEnv{router: router, store: st, up: up}
}

func (e *testEnv) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

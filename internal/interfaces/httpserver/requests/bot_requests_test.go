package requests_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"duck-server/services/bot-api/internal/interfaces/httpserver/requests"
)

func bindBotRequest(t *testing.T, payload map[string]string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)

	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req

	var parsed requests.BotRequest
	return c.ShouldBindJSON(&parsed)
}

func completePayload() map[string]string {
	return map[string]string{
		"src":         "https://cdn.example.com/avatars/owl.png",
		"name":        "Professor Hoot",
		"description": "A patient algebra tutor",
		"instruction": strings.Repeat("a", 200),
		"seed":        strings.Repeat("b", 200),
		"categoryId":  "cat_01hv5ka9x5r8z0q3w2y7m4t6d1",
	}
}

func TestBotRequest_Binding(t *testing.T) {
	if err := bindBotRequest(t, completePayload()); err != nil {
		t.Fatalf("expected complete payload to bind, got %v", err)
	}

	// Every field is required; dropping any one of them fails.
	for _, field := range []string{"src", "name", "description", "instruction", "seed", "categoryId"} {
		payload := completePayload()
		delete(payload, field)
		if err := bindBotRequest(t, payload); err == nil {
			t.Errorf("expected binding to fail without %s", field)
		}
	}
}

func TestBotRequest_MinimumLengths(t *testing.T) {
	payload := completePayload()
	payload["instruction"] = strings.Repeat("a", 199)
	if err := bindBotRequest(t, payload); err == nil {
		t.Error("expected binding to fail with a 199 char instruction")
	}

	payload = completePayload()
	payload["seed"] = strings.Repeat("b", 199)
	if err := bindBotRequest(t, payload); err == nil {
		t.Error("expected binding to fail with a 199 char seed")
	}

	// Exactly at the boundary is accepted.
	if err := bindBotRequest(t, completePayload()); err != nil {
		t.Errorf("expected 200 char fields to bind, got %v", err)
	}
}

func TestBotRequest_Params(t *testing.T) {
	req := requests.BotRequest{
		Src:         "https://cdn.example.com/a.png",
		Name:        "Professor Hoot",
		Description: "tutor",
		Instruction: strings.Repeat("a", 200),
		Seed:        strings.Repeat("b", 200),
		CategoryID:  "cat_1",
	}

	params := req.Params()
	if params.Name != req.Name || params.CategoryID != req.CategoryID {
		t.Errorf("params do not mirror the request: %+v", params)
	}
	if params.Instruction != req.Instruction || params.Seed != req.Seed {
		t.Error("instruction and seed must pass through unchanged")
	}
}

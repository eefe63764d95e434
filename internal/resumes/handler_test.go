package resumes_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"resume-tailor/internal/identity"
	"resume-tailor/internal/resumes"
	"resume-tailor/internal/shared/config"
	"resume-tailor/internal/shared/server"
)

func newResumesRouter(repo resumes.Repo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := &resumes.Service{Repo: repo}
	return server.NewRouter(server.RouterDeps{
		Config:         config.Config{},
		ResumesHandler: resumes.NewHandler(svc),
		Resolver:       identity.StaticResolver{"valid-token": {ID: "user-1"}},
	})
}

func doJSON(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestSaveRequiresToken(t *testing.T) {
	router := newResumesRouter(resumes.NewMemoryRepo())

	resp := doJSON(router, http.MethodPost, "/api/resume", "", `{"resume":"r","tailored":"t","jobDescription":"j"}`)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
	if got := resp.Body.String(); got != `{"error":"No auth token"}` {
		t.Fatalf("unexpected body %s", got)
	}
}

func TestListRejectsInvalidToken(t *testing.T) {
	repo := resumes.NewMemoryRepo()
	router := newResumesRouter(repo)

	resp := doJSON(router, http.MethodGet, "/api/resume", "wrong-token", "")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
	if got := resp.Body.String(); got != `{"error":"Invalid auth"}` {
		t.Fatalf("unexpected body %s", got)
	}
}

func TestSaveMissingFields(t *testing.T) {
	router := newResumesRouter(resumes.NewMemoryRepo())

	for name, body := range map[string]string{
		"no tailored": `{"resume":"r","jobDescription":"j"}`,
		"no resume":   `{"tailored":"t","jobDescription":"j"}`,
		"not json":    `oops`,
	} {
		t.Run(name, func(t *testing.T) {
			resp := doJSON(router, http.MethodPost, "/api/resume", "valid-token", body)
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.Code)
			}
			if got := resp.Body.String(); got != `{"error":"Missing fields"}` {
				t.Fatalf("unexpected body %s", got)
			}
		})
	}
}

func TestSaveThenListReturnsRecordFirst(t *testing.T) {
	repo := resumes.NewMemoryRepo()
	router := newResumesRouter(repo)

	// A prior record, clearly older than anything saved below.
	prior := resumes.Record{
		ID:             "prior",
		UserID:         "user-1",
		Resume:         "old resume",
		Tailored:       "old tailored",
		JobDescription: "old job",
		CreatedAt:      time.Now().UTC().Add(-time.Hour),
	}
	if err := repo.CreateRecord(context.Background(), prior); err != nil {
		t.Fatalf("seed prior record: %v", err)
	}

	resp := doJSON(router, http.MethodPost, "/api/resume", "valid-token", `{"resume":"r","tailored":"<h2>T</h2>","jobDescription":"j"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if got := resp.Body.String(); got != `{"success":true}` {
		t.Fatalf("unexpected body %s", got)
	}

	listResp := doJSON(router, http.MethodGet, "/api/resume", "valid-token", "")
	if listResp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", listResp.Code)
	}

	var body struct {
		Resumes []struct {
			ID       string `json:"id"`
			Tailored string `json:"tailored"`
		} `json:"resumes"`
	}
	if err := json.NewDecoder(listResp.Body).Decode(&body); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(body.Resumes) != 2 {
		t.Fatalf("expected 2 records, got %d", len(body.Resumes))
	}
	if body.Resumes[0].Tailored != "<h2>T</h2>" {
		t.Fatalf("expected newest record first, got %+v", body.Resumes[0])
	}
	if body.Resumes[1].ID != "prior" {
		t.Fatalf("expected prior record second, got %+v", body.Resumes[1])
	}
}

func TestResumeWrongMethod(t *testing.T) {
	router := newResumesRouter(resumes.NewMemoryRepo())

	resp := doJSON(router, http.MethodDelete, "/api/resume", "valid-token", "")
	if resp.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.Code)
	}
}

//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/linskybing/consult-go/internal/config/db"
	"github.com/linskybing/consult-go/internal/domain/caseref"
	"github.com/linskybing/consult-go/internal/domain/ticket"
)

// performRequest runs one request through the test router. An empty token
// sends no Authorization header.
func performRequest(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	testCtx.Router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

// newCase inserts a fresh case so tests do not contend for the shared one.
func newCase(t *testing.T, customerID uint) *caseref.Case {
	t.Helper()
	c := &caseref.Case{CustomerID: customerID, Subject: fmt.Sprintf("case for %s", t.Name())}
	if err := db.DB.Create(c).Error; err != nil {
		t.Fatalf("failed to create case: %v", err)
	}
	return c
}

// resetTickets clears queue state between tests.
func resetTickets(t *testing.T) {
	t.Helper()
	if err := db.DB.Where("1 = 1").Delete(&ticket.Ticket{}).Error; err != nil {
		t.Fatalf("failed to reset tickets: %v", err)
	}
}

func setAdvisorOnline(t *testing.T, token string, online bool) {
	t.Helper()
	w := performRequest(t, http.MethodPut, "/presence", map[string]interface{}{"online": online}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("failed to set presence: %d %s", w.Code, w.Body.String())
	}
}

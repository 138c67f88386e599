package agentapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/voicecart/internal/fraud"
	"github.com/jcmexdev/voicecart/internal/fraud/sqlite"
)

func newFraudServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "fraud_cases.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.SaveCase(t.Context(), &fraud.Case{
		UserName:              "Priya Sharma",
		VerificationAnswer:    "Blue Heron",
		SuspiciousTransaction: "card-not-present charge of 48,000",
		Status:                fraud.StatusPending,
	}))

	srv := httptest.NewServer(NewFraudRouter(NewFraudHandler(store)))
	t.Cleanup(srv.Close)
	return srv
}

func TestFraudFlow(t *testing.T) {
	srv := newFraudServer(t)

	// Load — case-insensitive path segment, answer never exposed.
	res, err := http.Get(srv.URL + "/cases/priya%20sharma")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var c CaseResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&c))
	res.Body.Close()
	assert.Equal(t, "Priya Sharma", c.UserName)
	assert.Equal(t, string(fraud.StatusPending), c.Status)

	// Verify.
	res = postJSON(t, srv.URL+"/cases/Priya%20Sharma/verify", VerifyRequest{Answer: "blue heron"})
	require.Equal(t, http.StatusOK, res.StatusCode)
	var v VerifyResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&v))
	res.Body.Close()
	assert.True(t, v.Verified)

	res = postJSON(t, srv.URL+"/cases/Priya%20Sharma/verify", VerifyRequest{Answer: "wrong"})
	require.NoError(t, json.NewDecoder(res.Body).Decode(&v))
	res.Body.Close()
	assert.False(t, v.Verified)

	// Resolve.
	res = postJSON(t, srv.URL+"/cases/priya%20sharma/status", UpdateStatusRequest{
		Status: string(fraud.StatusConfirmedSafe),
		Note:   "caller verified, transaction recognised",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	res.Body.Close()

	res, err = http.Get(srv.URL + "/cases/PRIYA%20SHARMA")
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(res.Body).Decode(&c))
	res.Body.Close()
	assert.Equal(t, string(fraud.StatusConfirmedSafe), c.Status)
	assert.Equal(t, "caller verified, transaction recognised", c.Notes)
	assert.NotEmpty(t, c.UpdatedAt)
}

func TestFraud_UnknownUser(t *testing.T) {
	srv := newFraudServer(t)

	res, err := http.Get(srv.URL + "/cases/nobody")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// Unknown user verifies as false, not 404 — the agent must not leak
	// which names have open cases through the verify endpoint.
	vres := postJSON(t, srv.URL+"/cases/nobody/verify", VerifyRequest{Answer: "anything"})
	require.Equal(t, http.StatusOK, vres.StatusCode)
	var v VerifyResponse
	require.NoError(t, json.NewDecoder(vres.Body).Decode(&v))
	vres.Body.Close()
	assert.False(t, v.Verified)

	sres := postJSON(t, srv.URL+"/cases/nobody/status", UpdateStatusRequest{Status: "confirmed_safe"})
	require.Equal(t, http.StatusNotFound, sres.StatusCode)
	sres.Body.Close()
}

func TestFraud_StatusRequired(t *testing.T) {
	srv := newFraudServer(t)

	res := postJSON(t, srv.URL+"/cases/priya%20sharma/status", UpdateStatusRequest{})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	defer res.Body.Close()

	var out ErrorResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	assert.Equal(t, "status_required", out.Error)
}

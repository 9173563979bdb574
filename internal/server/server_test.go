package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	json "github.com/goccy/go-json"

	"github.com/hangeul-nlp/postagger/decode"
	"github.com/hangeul-nlp/postagger/lemma"
	"github.com/hangeul-nlp/postagger/model"
)

func newTestDecoder(t *testing.T) *decode.Decoder {
	t.Helper()
	store, err := model.Load(strings.NewReader(`{
		"emission": {"Noun": {"나": -0.6}, "Josa": {"는": -0.3}},
		"transition": {"Noun_Josa": -0.2},
		"begin": {"Noun": -0.1}
	}`))
	require.NoError(t, err)
	return decode.NewDecoder(store, lemma.NewBridge(nil))
}

func TestHandleTagReturnsMorphs(t *testing.T) {
	h := New(newTestDecoder(t))

	req := httptest.NewRequest(http.MethodPost, "/api/tag", strings.NewReader(`{"text":"나는"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp tagResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Morphs, 2)
	assert.Equal(t, "나", resp.Morphs[0].Surface)
	assert.Equal(t, "Noun", resp.Morphs[0].Tag)
}

func TestHandleTagRejectsEmptyText(t *testing.T) {
	h := New(newTestDecoder(t))

	req := httptest.NewRequest(http.MethodPost, "/api/tag", strings.NewReader(`{"text":""}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleTagRejectsGet(t *testing.T) {
	h := New(newTestDecoder(t))

	req := httptest.NewRequest(http.MethodGet, "/api/tag", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

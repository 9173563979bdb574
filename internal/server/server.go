// Package server exposes a Decoder over a small JSON HTTP API, the same
// shape cours-de-latin-go-collatinus/cmd/server wraps its lemmatizer in.
package server

import (
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/rs/cors"

	"github.com/hangeul-nlp/postagger/decode"
)

type morphJSON struct {
	Surface string `json:"surface"`
	Tag     string `json:"tag"`
}

type tagRequest struct {
	Text string `json:"text"`
}

type tagResponse struct {
	Morphs []morphJSON `json:"morphs"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// New returns an http.Handler exposing POST /api/tag over d, wrapped with
// a permissive CORS policy so a browser-based client can call it
// directly.
func New(d *decode.Decoder) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tag", handleTag(d))

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodPost},
	})
	return c.Handler(mux)
}

func handleTag(d *decode.Decoder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}

		var body tagRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
			return
		}

		morphs, err := d.Tag(body.Text)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		out := make([]morphJSON, len(morphs))
		for i, m := range morphs {
			out[i] = morphJSON{Surface: m.Surface, Tag: m.Tag}
		}
		writeJSON(w, http.StatusOK, tagResponse{Morphs: out})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

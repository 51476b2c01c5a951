// Package http provides the HTTP handlers and router for the Nexus API.
package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
)

// errBadBody is returned by readFields for bodies that cannot be decoded.
var errBadBody = errors.New("invalid request body")

// writeJSON sets the content type, writes status and encodes v.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the uniform failure envelope.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "error": msg})
}

// readFields decodes a JSON object or a URL-encoded form and returns
// a getter for its string fields. Non-string JSON values read as empty.
// An empty body reads as an empty object.
func readFields(r *http.Request) (func(string) string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return nil, errBadBody
		}
		return r.PostForm.Get, nil
	}

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		return nil, errBadBody
	}
	return func(key string) string {
		s, _ := body[key].(string)
		return s
	}, nil
}

package client

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
)

// DefaultSessionFile is where login stores the token.
const DefaultSessionFile = ".nexus-session.json"

// Session is the CLI state kept between invocations.
type Session struct {
	URL   string `json:"url"`
	Token string `json:"token"`
}

// LoadSession reads path. A missing file yields an empty session.
func LoadSession(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Session{}, nil
	}
	if err != nil {
		return nil, err
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Save writes the session readable by the owner only.
func (s *Session) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

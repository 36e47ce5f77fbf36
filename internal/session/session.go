package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Credentials holds the bearer token obtained at login. It is set at login,
// cleared at logout, and read-only everywhere else.
type Credentials struct {
	path string

	AccessToken string `json:"access_token"`
	Email       string `json:"email"`
}

// Load reads credentials from disk. A missing file yields empty credentials.
func Load(path string) (*Credentials, error) {
	credentials := &Credentials{path: path}
	bytes, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return credentials, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading credentials file")
	}
	if err := json.Unmarshal(bytes, credentials); err != nil {
		return nil, errors.Wrap(err, "unmarshaling credentials")
	}
	return credentials, nil
}

// Token returns the bearer token, empty when logged out.
func (c *Credentials) Token() string { return c.AccessToken }

// Present reports whether a credential is available.
func (c *Credentials) Present() bool { return c.AccessToken != "" }

// Save persists a fresh token to disk with owner-only permissions.
func (c *Credentials) Save(token, email string) error {
	c.AccessToken = token
	c.Email = email

	dir, _ := filepath.Split(c.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "creating folders")
	}
	bytes, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling credentials")
	}
	if err := os.WriteFile(c.path, bytes, 0600); err != nil {
		return errors.Wrap(err, "writing credentials file")
	}
	return nil
}

// Clear removes the persisted credential.
func (c *Credentials) Clear() error {
	c.AccessToken = ""
	c.Email = ""
	if err := os.Remove(c.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "removing credentials file")
	}
	return nil
}

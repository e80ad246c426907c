package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/BloggingApp/blog-store/internal/model"
)

const STORAGE_VERSION = 2

var errUnsupportedVersion = errors.New("unsupported storage version")

// envelope is the persisted layout of the post collection. Revision grows
// by one on every write.
type envelope struct {
	Version  int          `json:"version"`
	Revision int64        `json:"revision"`
	Posts    []model.Post `json:"posts"`
}

func encodeCollection(env envelope) ([]byte, error) {
	env.Version = STORAGE_VERSION
	if env.Posts == nil {
		env.Posts = []model.Post{}
	}
	return json.Marshal(env)
}

// decodeCollection reads the current envelope, or a bare array written
// before versioning existed.
func decodeCollection(data []byte, catalog model.Catalog) (envelope, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		posts, err := migrateLegacy(trimmed, catalog)
		if err != nil {
			return envelope{}, err
		}
		return envelope{Version: STORAGE_VERSION, Posts: posts}, nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return envelope{}, err
	}
	if env.Version != STORAGE_VERSION {
		return envelope{}, fmt.Errorf("%w: %d", errUnsupportedVersion, env.Version)
	}

	if env.Posts == nil {
		env.Posts = []model.Post{}
	}
	for i := range env.Posts {
		env.Posts[i].Normalize()
	}

	return env, nil
}

package id

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
)

const (
	alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	size     = 12
)

// Generate returns prefix-<nanoid>, e.g. "list-V1StGXR8Z5jd".
func Generate(prefix string) (string, error) {
	id, err := gonanoid.Generate(alphabet, size)
	if err != nil {
		return "", errors.Wrap(err, "generate nanoid")
	}
	return prefix + "-" + id, nil
}

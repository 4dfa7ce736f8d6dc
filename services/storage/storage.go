package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/feetrack/api/config"
	"github.com/google/uuid"
)

// ProofStorage is the backend holding payment proof images. Keys are
// generated server-side and never reused, so writes cannot race.
type ProofStorage interface {
	// Save writes the file and returns the public URL for the key.
	Save(ctx context.Context, key string, data io.Reader, contentType string) (string, error)
	// Remove deletes the file for a key. Missing files are not an error.
	Remove(ctx context.Context, key string) error
	// List returns every stored key under the proofs prefix.
	List(ctx context.Context) ([]string, error)
}

// NewFromConfig builds the backend the environment selects: local disk by
// default, S3-compatible Spaces when STORAGE_BACKEND=spaces.
func NewFromConfig(env *config.EnviornmentVariable) (ProofStorage, error) {
	switch env.STORAGE_BACKEND {
	case "spaces":
		return NewSpacesStorage(SpacesConfig{
			AccessKey: env.SPACES_ACCESS_KEY,
			SecretKey: env.SPACES_SECRET_KEY,
			Bucket:    env.SPACES_BUCKET,
			Region:    env.SPACES_REGION,
			Endpoint:  env.SPACES_ENDPOINT,
			CDNURL:    env.SPACES_CDN_URL,
		})
	case "local", "":
		return NewLocalStorage(env.UPLOAD_DIR)
	}
	return nil, fmt.Errorf("unknown storage backend %q", env.STORAGE_BACKEND)
}

// GenerateProofKey builds a unique storage key for an uploaded proof,
// keeping the original extension so content type survives.
func GenerateProofKey(paymentID uint, originalFilename string) string {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	return fmt.Sprintf("payment_proofs/%d/%s_%s%s",
		paymentID, time.Now().UTC().Format("20060102"), uuid.New().String(), ext)
}

// ContentTypeFor maps a filename to its MIME type, defaulting to a
// binary stream for anything unrecognized.
func ContentTypeFor(filename string) string {
	ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename)))
	if ct == "" {
		return "application/octet-stream"
	}
	return ct
}

package shared

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Image is an uploaded room-number photo.
type Image struct {
	Data        []byte
	ContentType string
	Filename    string
}

type RoomVerifier interface {
	// Recognize returns the room identifier read from the image.
	Recognize(ctx context.Context, img Image) (string, error)
}

type ImageArchive interface {
	Archive(ctx context.Context, key string, img Image) error
}

type Cache interface {
	// Get decodes the cached value into dest and reports whether the key was present.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// Generation returns how often key has been invalidated; zero when never.
	Generation(ctx context.Context, key string) (int64, error)
	// Invalidate bumps the generation of every key so entries stored under an older one are never read.
	Invalidate(ctx context.Context, keys ...string) error
}

// GenerationKey is where the entry for key at generation gen is stored.
func GenerationKey(key string, gen int64) string {
	return key + "@" + strconv.FormatInt(gen, 10)
}

func UsageSummaryCacheKey(userID uuid.UUID) string {
	return "usage-summary:" + userID.String()
}

func TrustScoreCacheKey(userID uuid.UUID) string {
	return "trust-score:" + userID.String()
}

//go:build unit

package storage_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"classroom-reservation/internal/infra/storage"
	"classroom-reservation/internal/usecase/shared"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	f.body, _ = io.ReadAll(params.Body)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3Archive_Archive(t *testing.T) {
	ctx := context.Background()
	img := shared.Image{Data: []byte("jpeg-bytes"), ContentType: "image/jpeg", Filename: "door.jpg"}

	t.Run("uploads to the configured bucket", func(t *testing.T) {
		putter := &fakePutter{}
		archive := storage.NewS3Archive(putter, "checkins")

		require.NoError(t, archive.Archive(ctx, "checkins/abc/check-in-1.jpg", img))
		assert.Equal(t, "checkins", aws.ToString(putter.input.Bucket))
		assert.Equal(t, "checkins/abc/check-in-1.jpg", aws.ToString(putter.input.Key))
		assert.Equal(t, "image/jpeg", aws.ToString(putter.input.ContentType))
		assert.Equal(t, int64(len(img.Data)), aws.ToInt64(putter.input.ContentLength))
		assert.Equal(t, img.Data, putter.body)
	})

	t.Run("missing content type falls back to octet-stream", func(t *testing.T) {
		putter := &fakePutter{}
		archive := storage.NewS3Archive(putter, "checkins")

		require.NoError(t, archive.Archive(ctx, "k", shared.Image{Data: []byte("x")}))
		assert.Equal(t, "application/octet-stream", aws.ToString(putter.input.ContentType))
	})

	t.Run("upload failure is returned", func(t *testing.T) {
		putter := &fakePutter{err: errors.New("access denied")}
		archive := storage.NewS3Archive(putter, "checkins")

		err := archive.Archive(ctx, "k", img)
		assert.ErrorContains(t, err, "access denied")
	})
}

//go:build unit || e2e

// Package httptest drives a gin router in-process and decodes its JSON responses.
package httptest

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// PerformRequest sends body as JSON when it is non-nil. An empty token sends no Authorization header.
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, authToken string) *httptest.ResponseRecorder {
	t.Helper()
	return serve(router, NewRequest(t, method, path, body, authToken))
}

// PerformMultipartRequest uploads content as a single file part. An empty field sends an empty form.
func PerformMultipartRequest(t *testing.T, router *gin.Engine, method, path, field, filename string, content []byte, authToken string) *httptest.ResponseRecorder {
	t.Helper()
	return serve(router, NewMultipartRequest(t, method, path, field, filename, content, authToken))
}

// NewRequest builds what PerformRequest would send without serving it.
func NewRequest(t *testing.T, method, path string, body any, authToken string) *http.Request {
	t.Helper()

	var payload io.Reader = http.NoBody
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err, "encode request body")
		payload = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, payload)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return authorize(req, authToken)
}

// NewMultipartRequest builds what PerformMultipartRequest would send without serving it.
func NewMultipartRequest(t *testing.T, method, path, field, filename string, content []byte, authToken string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if field != "" {
		part, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err, "create form file")
		_, err = part.Write(content)
		require.NoError(t, err, "write form file")
	}
	require.NoError(t, mw.Close(), "close multipart writer")

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return authorize(req, authToken)
}

// PerformConcurrently releases every request at the same moment and returns the recorders in request order.
func PerformConcurrently(router *gin.Engine, reqs ...*http.Request) []*httptest.ResponseRecorder {
	recs := make([]*httptest.ResponseRecorder, len(reqs))
	start := make(chan struct{})

	var wg sync.WaitGroup
	for i, req := range reqs {
		wg.Add(1)
		go func(i int, req *http.Request) {
			defer wg.Done()
			<-start
			recs[i] = serve(router, req)
		}(i, req)
	}
	close(start)
	wg.Wait()
	return recs
}

// StatusCounts tallies response codes.
func StatusCounts(recs []*httptest.ResponseRecorder) map[int]int {
	counts := make(map[int]int, 2)
	for _, rec := range recs {
		counts[rec.Code]++
	}
	return counts
}

// DecodeResponseBody fails the test on malformed JSON; the returned error is for callers that chain require.NoError.
func DecodeResponseBody(t *testing.T, body *bytes.Buffer, target any) error {
	t.Helper()

	err := json.NewDecoder(body).Decode(target)
	require.NoError(t, err, "decode response body: %s", body.String())
	return err
}

func authorize(req *http.Request, authToken string) *http.Request {
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	return req
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

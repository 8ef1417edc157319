package verifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"classroom-reservation/internal/pkg/config"
	"classroom-reservation/internal/pkg/errs"
	"classroom-reservation/internal/usecase/shared"
)

var (
	ErrRecognitionUnavailable = errs.New("recognition service unavailable")
	ErrNothingRecognized      = errs.New("no room number recognized")
)

const maxResponseBytes = 64 << 10

type recognizeResponse struct {
	Room string `json:"room"`
}

// HTTPVerifier posts the photo to an OCR service that answers {"room": "<id>"}.
type HTTPVerifier struct {
	endpoint string
	client   *http.Client
}

func NewHTTPVerifier(cfg config.VerifierConfig) *HTTPVerifier {
	return &HTTPVerifier{
		endpoint: cfg.Endpoint,
		client:   &http.Client{Timeout: cfg.Timeout},
	}
}

func (v *HTTPVerifier) Recognize(ctx context.Context, img shared.Image) (string, error) {
	body, contentType, err := encodeImage(img)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, body)
	if err != nil {
		return "", errs.Wrap(err, "failed to build recognition request")
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "recognition request failed"), ErrRecognitionUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errs.Mark(errs.Newf("recognition service returned status %d", resp.StatusCode), ErrRecognitionUnavailable)
	}

	var out recognizeResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return "", errs.Mark(errs.Wrap(err, "failed to decode recognition response"), ErrRecognitionUnavailable)
	}

	room := strings.TrimSpace(out.Room)
	if room == "" {
		return "", ErrNothingRecognized
	}
	return room, nil
}

func encodeImage(img shared.Image) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	filename := img.Filename
	if filename == "" {
		filename = "image"
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	if img.ContentType != "" {
		header.Set("Content-Type", img.ContentType)
	}

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", errs.Wrap(err, "failed to create multipart part")
	}
	if _, err := part.Write(img.Data); err != nil {
		return nil, "", errs.Wrap(err, "failed to write image")
	}
	if err := w.Close(); err != nil {
		return nil, "", errs.Wrap(err, "failed to finalize multipart body")
	}
	return &buf, w.FormDataContentType(), nil
}

package pkg

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	maxJSONBodyBytes       = 1 << 20
	multipartOverheadBytes = 1 << 20
)

var ErrInvalidContentType = errors.New("invalid content type")

// DecodeJSON reads a JSON request body into dst.
func DecodeJSON(r *http.Request, dst any) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), ContentType.JSON) {
		return ErrInvalidContentType
	}
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxJSONBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decode json body: %w", err)
	}
	return nil
}

var (
	ErrMissingFormFile = errors.New("missing form file")
	ErrFormFileTooBig  = errors.New("form file too big")
)

// ReadFormFile reads a multipart file field fully, returning its bytes and content type.
func ReadFormFile(r *http.Request, field string, maxBytes int64) ([]byte, string, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBytes+multipartOverheadBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, "", ErrFormFileTooBig
		}
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, "", ErrMissingFormFile
		}
		return nil, "", fmt.Errorf("parse multipart form: %w", err)
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, "", ErrMissingFormFile
		}
		return nil, "", err
	}
	defer file.Close()

	if header.Size > maxBytes {
		return nil, "", ErrFormFileTooBig
	}
	content, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("read form file: %w", err)
	}
	if int64(len(content)) > maxBytes {
		return nil, "", ErrFormFileTooBig
	}
	if len(content) == 0 {
		return nil, "", ErrMissingFormFile
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(content)
	}
	return content, contentType, nil
}

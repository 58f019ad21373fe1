package discord

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"strings"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// multipartBody encodes a JSON payload and its files into a
// multipart/form-data body, with the payload under payload_json as
// discord expects.
func multipartBody(payload interface{}, files []File) (contentType string, body []byte, err error) {
	requestBody := &bytes.Buffer{}
	writer := multipart.NewWriter(requestBody)

	payloadJSON, err := Marshal(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	partHeaders := textproto.MIMEHeader{}
	partHeaders.Set("Content-Disposition", `form-data; name="payload_json"`)
	partHeaders.Set("Content-Type", "application/json")

	part, err := writer.CreatePart(partHeaders)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create part: %w", err)
	}

	if _, err = part.Write(payloadJSON); err != nil {
		return "", nil, fmt.Errorf("failed to write part: %w", err)
	}

	for index, file := range files {
		fileContentType := file.ContentType
		if fileContentType == "" {
			fileContentType = "application/octet-stream"
		}

		partHeaders := textproto.MIMEHeader{}
		partHeaders.Set("Content-Disposition",
			`form-data; name="files[`+strconv.Itoa(index)+`]"; filename="`+quoteEscaper.Replace(file.Name)+`"`)
		partHeaders.Set("Content-Type", fileContentType)

		part, err := writer.CreatePart(partHeaders)
		if err != nil {
			return "", nil, fmt.Errorf("failed to create part: %w", err)
		}

		if _, err = io.Copy(part, file.Reader); err != nil {
			return "", nil, fmt.Errorf("failed to write part: %w", err)
		}
	}

	if err = writer.Close(); err != nil {
		return "", nil, fmt.Errorf("failed to close writer: %w", err)
	}

	return writer.FormDataContentType(), requestBody.Bytes(), nil
}

// formBody encodes plain form fields and a single file part. Used by
// the sticker upload endpoint, which does not take payload_json.
func formBody(fields map[string]string, file File) (contentType string, body []byte, err error) {
	requestBody := &bytes.Buffer{}
	writer := multipart.NewWriter(requestBody)

	for name, value := range fields {
		if err = writer.WriteField(name, value); err != nil {
			return "", nil, fmt.Errorf("failed to write field: %w", err)
		}
	}

	fileContentType := file.ContentType
	if fileContentType == "" {
		fileContentType = "application/octet-stream"
	}

	partHeaders := textproto.MIMEHeader{}
	partHeaders.Set("Content-Disposition",
		`form-data; name="file"; filename="`+quoteEscaper.Replace(file.Name)+`"`)
	partHeaders.Set("Content-Type", fileContentType)

	part, err := writer.CreatePart(partHeaders)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create part: %w", err)
	}

	if _, err = io.Copy(part, file.Reader); err != nil {
		return "", nil, fmt.Errorf("failed to write part: %w", err)
	}

	if err = writer.Close(); err != nil {
		return "", nil, fmt.Errorf("failed to close writer: %w", err)
	}

	return writer.FormDataContentType(), requestBody.Bytes(), nil
}

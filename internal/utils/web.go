package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"

	"github.com/go-playground/validator/v10"
	internal_errors "github.com/itchan-dev/boards/internal/errors"
	"github.com/itchan-dev/boards/internal/logger"
)

// maxBodySize bounds request bodies. A 4000-character post in 4-byte runes fits easily.
const maxBodySize = 64 << 10

var validate = validator.New(validator.WithRequiredStructEnabled())

// WriteErrorAndStatusCode writes err with the status it carries.
// Errors without a status are logged and reported as a generic 500.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	var e *internal_errors.ErrorWithStatusCode
	if errors.As(err, &e) {
		http.Error(w, e.Message, e.StatusCode)
		return
	}
	logger.Log.Error("internal error", "error", err)
	http.Error(w, "Internal error", http.StatusInternalServerError)
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// GetIP returns the client ip from RemoteAddr. Forwarding headers are not trusted.
func GetIP(r *http.Request) (string, error) {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	if net.ParseIP(ip) == nil {
		return "", fmt.Errorf("invalid IP address: %s", ip)
	}
	return ip, nil
}

// DecodeValidate fills body from a JSON or form-encoded request and runs
// its validate tags. Form fields are matched by their json tag names.
func DecodeValidate(r *http.Request, body any) error {
	if err := Decode(r, body); err != nil {
		return err
	}
	if err := validate.Struct(body); err != nil {
		logger.Log.Debug("request validation failed", "error", err)
		return internal_errors.Validation("Required fields missing")
	}
	return nil
}

func Decode(r *http.Request, body any) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return decodeForm(r, body)
	default:
		return decodeJSON(http.MaxBytesReader(nil, r.Body, maxBodySize), body)
	}
}

func decodeJSON(r io.ReadCloser, body any) error {
	defer r.Close()
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("invalid json body", "error", err)
		return internal_errors.Validation("Body is invalid json")
	}
	return nil
}

func decodeForm(r *http.Request, body any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodySize)
	if err := r.ParseMultipartForm(maxBodySize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		logger.Log.Debug("invalid form body", "error", err)
		return internal_errors.Validation("Body is invalid form")
	}
	fields := make(map[string]string, len(r.PostForm))
	for k, v := range r.PostForm {
		if len(v) > 0 {
			fields[k] = v[0]
		}
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to re-encode form: %w", err)
	}
	if err := json.Unmarshal(raw, body); err != nil {
		return internal_errors.Validation("Body is invalid form")
	}
	return nil
}

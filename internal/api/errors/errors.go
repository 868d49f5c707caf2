package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind represents the different failure classes of the pipeline API.
type ErrorKind string

const (
	KindNoFileProvided      ErrorKind = "no_file_provided"
	KindEmptyFilename       ErrorKind = "empty_filename"
	KindInvalidFileType     ErrorKind = "invalid_file_type"
	KindPayloadTooLarge     ErrorKind = "payload_too_large"
	KindTranscriptionFailed ErrorKind = "transcription_failed"
	KindCompletionFailed    ErrorKind = "completion_failed"
	KindPersistenceFailed   ErrorKind = "persistence_failed"
	KindHistoryReadFailed   ErrorKind = "history_read_failed"
	KindBadRequest          ErrorKind = "bad_request"
	KindInternal            ErrorKind = "internal"
)

// APIError is the structured error carried from the pipeline up to the
// transport boundary and serialized as the error payload.
type APIError struct {
	Kind      ErrorKind `json:"kind"`
	Message   string    `json:"error"`
	RequestID string    `json:"request_id,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Is matches errors by kind, so callers can test against a sentinel kind
// without comparing messages.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	return ok && t.Kind == e.Kind
}

// HTTPStatus maps the error kind to a response status. The first three kinds
// are client-caused validation failures; payload size gets its dedicated
// status; everything else is a server-side failure.
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindNoFileProvided, KindEmptyFilename, KindInvalidFileType, KindBadRequest:
		return http.StatusBadRequest
	case KindPayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// NewNoFileError signals a request without an audio file field.
func NewNoFileError() *APIError {
	return &APIError{Kind: KindNoFileProvided, Message: "No audio file provided"}
}

// NewEmptyFilenameError signals an upload with a blank filename.
func NewEmptyFilenameError() *APIError {
	return &APIError{Kind: KindEmptyFilename, Message: "No file selected"}
}

// NewInvalidFileTypeError signals a disallowed upload extension.
func NewInvalidFileTypeError(allowed []string) *APIError {
	return &APIError{
		Kind:    KindInvalidFileType,
		Message: fmt.Sprintf("Invalid file type. Allowed: %s", strings.Join(allowed, ", ")),
	}
}

// NewPayloadTooLargeError signals an upload over the configured size cap.
func NewPayloadTooLargeError(maxBytes int64) *APIError {
	return &APIError{
		Kind:    KindPayloadTooLarge,
		Message: fmt.Sprintf("File too large. Maximum size is %d bytes", maxBytes),
	}
}

// NewTranscriptionError wraps a transcription collaborator failure, keeping
// the underlying message for diagnostics.
func NewTranscriptionError(err error) *APIError {
	return &APIError{
		Kind:    KindTranscriptionFailed,
		Message: fmt.Sprintf("Transcription failed: %v", err),
	}
}

// NewCompletionError wraps a language model collaborator failure.
func NewCompletionError(err error) *APIError {
	return &APIError{
		Kind:    KindCompletionFailed,
		Message: fmt.Sprintf("Analysis failed: %v", err),
	}
}

// NewPersistenceError wraps a record save failure.
func NewPersistenceError(err error) *APIError {
	return &APIError{
		Kind:    KindPersistenceFailed,
		Message: fmt.Sprintf("Failed to save analysis record: %v", err),
	}
}

// NewHistoryReadError wraps a failure to enumerate the record directory.
func NewHistoryReadError(err error) *APIError {
	return &APIError{
		Kind:    KindHistoryReadFailed,
		Message: fmt.Sprintf("Failed to read history: %v", err),
	}
}

// NewBadRequestError creates a generic client error for malformed requests.
func NewBadRequestError(message string) *APIError {
	return &APIError{Kind: KindBadRequest, Message: message}
}

// NewInternalError creates a generic internal error.
func NewInternalError(message string) *APIError {
	return &APIError{Kind: KindInternal, Message: message}
}

package intake

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	apierrors "github.com/parnika15-9/meeting-summarizer/internal/api/errors"
	"github.com/parnika15-9/meeting-summarizer/internal/config"
)

// TimestampLayout is the fixed-width stamp prefixed to stored files. Its
// lexicographic order matches chronological order, which the record store
// relies on for history listing.
const TimestampLayout = "20060102_150405"

// Intake validates uploaded audio payloads and stores them under the upload
// directory with a timestamp-prefixed name.
type Intake struct {
	uploadDir string
	maxBytes  int64
	now       func() time.Time
}

// New creates an Intake writing into uploadDir with the given size cap.
func New(uploadDir string, maxBytes int64) *Intake {
	return &Intake{
		uploadDir: uploadDir,
		maxBytes:  maxBytes,
		now:       time.Now,
	}
}

// Store validates the filename and extension, then writes the payload to
// <uploadDir>/<timestamp>_<filename>. It returns the stored path and the
// timestamp that identifies this run. Uniqueness is best-effort at second
// resolution: a same-second upload of an identically named file overwrites
// the earlier one, matching the service's documented boundary condition.
func (in *Intake) Store(filename string, src io.Reader) (string, string, error) {
	if strings.TrimSpace(filename) == "" {
		return "", "", apierrors.NewEmptyFilenameError()
	}
	if !Allowed(filename) {
		return "", "", apierrors.NewInvalidFileTypeError(AllowedList())
	}

	if err := os.MkdirAll(in.uploadDir, 0o755); err != nil {
		return "", "", apierrors.NewInternalError(fmt.Sprintf("failed to create upload directory: %v", err))
	}

	timestamp := in.now().Format(TimestampLayout)
	stored := filepath.Join(in.uploadDir, timestamp+"_"+filepath.Base(filename))

	dst, err := os.Create(stored)
	if err != nil {
		return "", "", apierrors.NewInternalError(fmt.Sprintf("failed to store upload: %v", err))
	}
	defer dst.Close()

	// Copy at most maxBytes+1 so an oversized payload is detected without
	// buffering it whole.
	written, err := io.CopyN(dst, src, in.maxBytes+1)
	if err != nil && err != io.EOF {
		os.Remove(stored)
		return "", "", apierrors.NewInternalError(fmt.Sprintf("failed to store upload: %v", err))
	}
	if written > in.maxBytes {
		os.Remove(stored)
		return "", "", apierrors.NewPayloadTooLargeError(in.maxBytes)
	}

	return stored, timestamp, nil
}

// Allowed reports whether the filename carries an accepted audio extension,
// case-insensitively.
func Allowed(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return false
	}
	return config.AllowedExtensions[strings.TrimPrefix(ext, ".")]
}

// AllowedList returns the accepted extensions in stable order for messages
// and the service banner.
func AllowedList() []string {
	exts := make([]string, 0, len(config.AllowedExtensions))
	for ext := range config.AllowedExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

package order

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"

	"storefront/internal/pkg/errs"
)

// FileKind tells which side of the service workflow a file belongs to.
// Each kind accepts its own set of MIME types.
type FileKind int

const (
	// KindDocument is the buyer's document to verify.
	KindDocument FileKind = iota + 1
	// KindReport is the admin's verification report.
	KindReport
)

func (k FileKind) String() string {
	switch k {
	case KindDocument:
		return "document"
	case KindReport:
		return "report"
	}
	return "unknown"
}

// AllowedMimeTypes returns the MIME types accepted for the kind.
func (k FileKind) AllowedMimeTypes() []string {
	switch k {
	case KindDocument:
		return []string{
			"application/pdf",
			"application/msword",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		}
	case KindReport:
		return []string{"application/pdf", "image/jpeg", "image/png"}
	}
	return nil
}

func (k FileKind) allows(mimeType string) bool {
	for _, allowed := range k.AllowedMimeTypes() {
		if allowed == mimeType {
			return true
		}
	}
	return false
}

const dataURIBase64Marker = ";base64,"

// UploadedFile is a file attached to a service order: metadata plus the whole
// content carried as a "data:<mime>;base64,<payload>" URI.
//
// Invariants:
//   - Name is non-blank and MIME type is allowed for the file kind
//   - The data URI declares the same MIME type
//   - The decoded payload is exactly Size bytes and Size is positive
type UploadedFile struct {
	kind     FileKind
	name     string
	mimeType string
	size     int64
	dataURI  string
}

// NewUploadedFile validates the metadata against the content.
//
// Example:
//
//	file, err := order.NewUploadedFile(order.KindDocument, "thesis.pdf", "application/pdf", 4,
//	    "data:application/pdf;base64,JVBERg==")
func NewUploadedFile(kind FileKind, name, mimeType string, size int64, dataURI string) (UploadedFile, error) {
	f := UploadedFile{
		kind:     kind,
		name:     strings.TrimSpace(name),
		mimeType: strings.ToLower(strings.TrimSpace(mimeType)),
		size:     size,
		dataURI:  dataURI,
	}
	if err := f.validate(); err != nil {
		return UploadedFile{}, err
	}
	return f, nil
}

func (f UploadedFile) validate() error {
	if f.name == "" {
		return errs.NewValueIsRequiredError("file name")
	}
	if !f.kind.allows(f.mimeType) {
		return errs.NewValueIsInvalidErrorWithCause("file mime type",
			fmt.Errorf("%q is not accepted for a %s, want one of %s",
				f.mimeType, f.kind, strings.Join(f.kind.AllowedMimeTypes(), ", ")))
	}
	if f.size <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("file size", fmt.Errorf("%d is not greater than 0", f.size))
	}

	declared, payload, err := splitDataURI(f.dataURI)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("file content", err)
	}
	if !strings.EqualFold(declared, f.mimeType) {
		return errs.NewValueIsInvalidErrorWithCause("file content",
			fmt.Errorf("data URI declares %q but file is %q", declared, f.mimeType))
	}
	if got := int64(len(payload)); got != f.size {
		return errs.NewValueIsInvalidErrorWithCause("file size",
			fmt.Errorf("declared %d bytes but content has %d", f.size, got))
	}
	return nil
}

func splitDataURI(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, fmt.Errorf("content is not a data URI")
	}
	mimeType, encoded, ok := strings.Cut(rest, dataURIBase64Marker)
	if !ok {
		return "", nil, fmt.Errorf("data URI is not base64 encoded")
	}
	payload, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", nil, fmt.Errorf("data URI payload: %w", err)
	}
	return mimeType, payload, nil
}

// Kind returns the workflow side the file belongs to.
func (f UploadedFile) Kind() FileKind { return f.kind }

func (f UploadedFile) Name() string { return f.name }

func (f UploadedFile) MimeType() string { return f.mimeType }

// Size returns the decoded content length in bytes.
func (f UploadedFile) Size() int64 { return f.size }

func (f UploadedFile) DataURI() string { return f.dataURI }

// Content decodes the data URI payload.
func (f UploadedFile) Content() []byte {
	_, payload, err := splitDataURI(f.dataURI)
	if err != nil {
		return nil
	}
	return bytes.Clone(payload)
}

// SizeLabel renders Size for people: "0 Bytes", "512 Bytes", "1.5 KB", "2 MB".
// Values are rounded to two decimals with trailing zeros dropped.
func (f UploadedFile) SizeLabel() string {
	return FormatSize(f.size)
}

// FormatSize renders a byte count with 1024-based units.
func FormatSize(n int64) string {
	if n <= 0 {
		return "0 Bytes"
	}
	units := []string{"Bytes", "KB", "MB", "GB", "TB"}
	exp, divisor := 0, int64(1)
	for exp < len(units)-1 && n >= divisor*1024 {
		exp++
		divisor *= 1024
	}
	value := math.Round(float64(n)/float64(divisor)*100) / 100
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + units[exp]
}

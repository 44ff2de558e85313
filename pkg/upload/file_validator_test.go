package upload_test

import (
	"bytes"
	"testing"

	"go-jobboard-backend/pkg/upload"

	"github.com/stretchr/testify/assert"
)

var pdfBytes = append([]byte("%PDF-1.7"), bytes.Repeat([]byte{0x20}, 16)...)

func TestValidateFile(t *testing.T) {
	t.Run("accepts a well-formed pdf", func(t *testing.T) {
		res := upload.ValidateFile("cv.pdf", pdfBytes, "application/pdf")
		assert.True(t, res.Valid)
		assert.Equal(t, ".pdf", res.Extension)
	})

	t.Run("rejects spoofed content", func(t *testing.T) {
		res := upload.ValidateFile("cv.pdf", []byte("MZ\x90\x00 not a pdf"), "application/pdf")
		assert.False(t, res.Valid)
		assert.Contains(t, res.Error, "does not match extension")
	})

	t.Run("rejects disallowed extensions", func(t *testing.T) {
		res := upload.ValidateFile("cv.exe", pdfBytes, "application/pdf")
		assert.False(t, res.Valid)
	})

	t.Run("rejects octet-stream except for word documents", func(t *testing.T) {
		res := upload.ValidateFile("cv.pdf", pdfBytes, "application/octet-stream")
		assert.False(t, res.Valid)

		docx := append([]byte{0x50, 0x4B, 0x03, 0x04}, bytes.Repeat([]byte{0}, 16)...)
		res = upload.ValidateFile("cv.docx", docx, "application/octet-stream")
		assert.True(t, res.Valid)
	})

	t.Run("rejects MIME types inconsistent with the extension", func(t *testing.T) {
		res := upload.ValidateFile("cv.pdf", pdfBytes, "application/msword")
		assert.False(t, res.Valid)
	})

	t.Run("rejects oversized files", func(t *testing.T) {
		big := append(append([]byte{}, pdfBytes...), bytes.Repeat([]byte{0}, upload.MaxFileSize)...)
		res := upload.ValidateFile("cv.pdf", big, "application/pdf")
		assert.False(t, res.Valid)
	})
}

func TestExtensionMatchesMIME(t *testing.T) {
	assert.True(t, upload.ExtensionMatchesMIME("cv.pdf", "application/pdf"))
	assert.True(t, upload.ExtensionMatchesMIME("cv.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"))
	assert.False(t, upload.ExtensionMatchesMIME("cv.docx", "application/pdf"))
	assert.False(t, upload.ExtensionMatchesMIME("cv", "application/pdf"))
}

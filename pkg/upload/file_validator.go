package upload

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
)

// MaxFileSize is the hard cap for uploaded CV/portfolio documents.
const MaxFileSize = 10 << 20 // 10MB

// FileValidationResult contains the result of file validation
type FileValidationResult struct {
	Valid        bool   // Whether the file passed all validation checks
	Extension    string // Detected file extension
	DetectedMIME string // Detected MIME type
	Error        string // Error message if validation failed
}

// Magic byte signatures for allowed document types.
// Maps lowercase extension to possible magic byte prefixes.
var magicBytes = map[string][][]byte{
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                         // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}}, // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                         // ZIP (PK..)
}

// extensionMIME maps each allowed extension to the MIME types a client
// may legitimately declare for it.
var extensionMIME = map[string][]string{
	".pdf":  {"application/pdf"},
	".doc":  {"application/msword"},
	".docx": {"application/vnd.openxmlformats-officedocument.wordprocessingml.document", "application/zip"},
}

// Strict MIME types - DO NOT include application/octet-stream
var strictMIMETypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	// ZIP-based documents (DOCX detection fallback)
	"application/zip": true,
}

// ValidateFile performs 3-layer file validation on a CV document:
// 1. Extension whitelist check
// 2. Magic byte verification (content matches extension)
// 3. MIME type whitelist (application/octet-stream REJECTED)
func ValidateFile(filename string, data []byte, detectedMIME string) FileValidationResult {
	result := FileValidationResult{
		DetectedMIME: detectedMIME,
	}

	if len(filename) > 255 {
		result.Error = "file name exceeds 255 characters"
		return result
	}
	if len(data) > MaxFileSize {
		result.Error = "file exceeds the 10MB size limit"
		return result
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		result.Error = "file has no extension"
		return result
	}
	result.Extension = ext

	// Layer 1: Extension whitelist
	if _, ok := extensionMIME[ext]; !ok {
		result.Error = "file extension not allowed: " + ext
		return result
	}

	// Layer 2: Magic byte validation
	if !validateMagicBytes(ext, data) {
		result.Error = "file content does not match extension (potential file spoofing detected)"
		return result
	}

	// Layer 3: MIME type whitelist
	// Reject application/octet-stream - it allows arbitrary binary uploads.
	// Exception: .doc/.docx are sometimes detected as octet-stream; their
	// magic bytes were already verified above.
	if detectedMIME == "application/octet-stream" {
		if ext != ".doc" && ext != ".docx" {
			result.Error = "binary files not allowed; file type could not be determined"
			return result
		}
	} else if !strictMIMETypes[detectedMIME] {
		result.Error = "MIME type not allowed: " + detectedMIME
		return result
	} else if detectedMIME != "application/octet-stream" && !mimeAllowedForExtension(ext, detectedMIME) {
		result.Error = "MIME type " + detectedMIME + " does not match extension " + ext
		return result
	}

	result.Valid = true
	return result
}

// ExtensionMatchesMIME reports whether the filename's extension is
// consistent with the declared MIME type. Used by the CV upload rule
// set, which validates descriptors before any bytes exist.
func ExtensionMatchesMIME(filename, declaredMIME string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return mimeAllowedForExtension(ext, declaredMIME)
}

// ValidateFileExtension checks only the extension (for quick pre-validation)
func ValidateFileExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return errors.New("file has no extension")
	}
	if _, ok := extensionMIME[ext]; !ok {
		return errors.New("file extension not allowed: " + ext)
	}
	return nil
}

// CanonicalMIME returns the MIME type to record for an allowed
// extension. Detection can legitimately report application/zip or
// application/octet-stream for Office documents; the stored type
// should be the canonical one.
func CanonicalMIME(ext string) string {
	if allowed, ok := extensionMIME[strings.ToLower(ext)]; ok {
		return allowed[0]
	}
	return ""
}

// AllowedExtensions returns the whitelist for error messages.
func AllowedExtensions() []string {
	extensions := make([]string, 0, len(extensionMIME))
	for ext := range extensionMIME {
		extensions = append(extensions, ext)
	}
	return extensions
}

func mimeAllowedForExtension(ext, mime string) bool {
	for _, allowed := range extensionMIME[ext] {
		if allowed == mime {
			return true
		}
	}
	return false
}

// validateMagicBytes checks if file content starts with expected magic bytes
func validateMagicBytes(ext string, data []byte) bool {
	if len(data) < 4 {
		return false // File too small to validate
	}

	signatures, ok := magicBytes[ext]
	if !ok {
		return false // Unknown extension
	}

	for _, sig := range signatures {
		if len(data) >= len(sig) && bytes.HasPrefix(data, sig) {
			return true
		}
	}

	return false
}

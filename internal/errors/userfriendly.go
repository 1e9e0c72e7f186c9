package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/asalkapakli/ykscountdown/internal/settings"
)

// UserFriendlyError provides user-friendly error messages with context and hints
type UserFriendlyError struct {
	Message string
	Reason  string
	Hint    string
	Try     string
	Err     error
}

func (e UserFriendlyError) Error() string {
	var buf strings.Builder
	buf.WriteString(e.Message)
	if e.Reason != "" {
		buf.WriteString("\n  Reason: " + e.Reason)
	}
	if e.Hint != "" {
		buf.WriteString("\n  Hint: " + e.Hint)
	}
	if e.Try != "" {
		buf.WriteString("\n  Try: " + e.Try)
	}
	if e.Err != nil {
		buf.WriteString("\n  Details: " + e.Err.Error())
	}
	return buf.String()
}

func (e UserFriendlyError) Unwrap() error {
	return e.Err
}

// WrapConfigError wraps configuration errors with user-friendly context
func WrapConfigError(err error, configPath string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Configuration error in %s", configPath),
		Reason:  err.Error(),
		Hint:    "Delete the file to regenerate defaults, or fix the reported field",
		Try:     fmt.Sprintf("ykscountdown settings path --config %s", configPath),
		Err:     err,
	}
}

// WrapStorageError wraps settings storage failures with user-friendly context
func WrapStorageError(err error, dir string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Could not write settings to %s", dir),
		Reason:  extractStorageReason(err),
		Hint:    "The settings directory must be writable by the current user",
		Try:     "Set storage.dir in the config file or YKS_STORAGE_DIR to another directory",
		Err:     err,
	}
}

// WrapImportError wraps settings import failures. A file that is not a
// settings export is reported as such; anything else is a storage failure.
func WrapImportError(err error, file, dir string) error {
	if err == nil {
		return nil
	}
	if !errors.Is(err, settings.ErrMalformed) {
		return WrapStorageError(err, dir)
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Could not import %s", file),
		Reason:  "File is not a settings export",
		Hint:    "Import expects the JSON written by 'ykscountdown settings export' or an older export",
		Try:     "ykscountdown settings export > settings.json",
		Err:     err,
	}
}

// WrapCounterError wraps visit counter failures with user-friendly context
func WrapCounterError(err error, url string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Visit counter request to %s failed", url),
		Reason:  extractNetworkReason(err),
		Hint:    "The dashboard works without the counter; it is simply hidden",
		Try:     "ykscountdown counter --dry-run",
		Err:     err,
	}
}

func extractStorageReason(err error) string {
	errStr := err.Error()

	if strings.Contains(errStr, "permission denied") {
		return "Permission denied"
	}
	if strings.Contains(errStr, "no space left") {
		return "Disk is full"
	}
	if strings.Contains(errStr, "read-only file system") {
		return "File system is read-only"
	}

	return "File system operation failed"
}

func extractNetworkReason(err error) string {
	errStr := err.Error()

	if strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded") {
		return "Request timed out"
	}
	if strings.Contains(errStr, "connection refused") {
		return "Connection refused"
	}
	if strings.Contains(errStr, "no such host") {
		return "Host name could not be resolved"
	}
	if strings.Contains(errStr, "unexpected status") {
		return "Counter service returned an error status"
	}
	if strings.Contains(errStr, "count") {
		return "Counter service returned an unexpected response"
	}

	return "Network communication failed"
}

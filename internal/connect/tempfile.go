package connect

import (
	"fmt"
	"os"
)

// tempFilePrefix makes payload files recognizable in the platform temp
// directory.
const tempFilePrefix = "drillbridge_"

// createTempFile writes content to a uniquely named file in the platform
// temp directory and returns its path. The file is owned exclusively by the
// operation that created it; the owner must call removeTempFile on every
// exit path.
func createTempFile(content, suffix string) (string, error) {
	f, err := os.CreateTemp("", tempFilePrefix+"*"+suffix)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("close temp file: %w", err)
	}

	return f.Name(), nil
}

// removeTempFile deletes a payload file, ignoring "already gone" errors:
// the CLI may have consumed or moved the file itself.
func removeTempFile(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		// Nothing the caller can do; the temp dir is cleaned by the OS.
		return
	}
}

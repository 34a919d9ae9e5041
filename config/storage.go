package config

import "os"

// UploadPath returns the root directory for stored proof documents.
// The document store receives this value at construction time; nothing
// else should read UPLOAD_PATH directly.
func UploadPath() string {
	path := os.Getenv("UPLOAD_PATH")
	if path == "" {
		path = "./uploads"
	}
	return path
}

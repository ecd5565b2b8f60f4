package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

type MediaType string

const (
	MediaPhoto MediaType = "photo"
	MediaVideo MediaType = "video"
)

// PhotoExtension and PhotoMimeType apply to every photo: Telegram re-encodes
// photo uploads as JPEG.
const (
	PhotoExtension = ".jpg"
	PhotoMimeType  = "image/jpeg"
)

// VideoExtension derives the file extension and content type for a video
// attachment. The original file name wins when it carries an extension,
// otherwise the declared mime type decides, falling back to .mp4.
func VideoExtension(fileName, mimeType string) (string, string) {
	if mimeType == "" {
		mimeType = "video/mp4"
	}

	if fileName != "" {
		if ext := strings.ToLower(filepath.Ext(fileName)); ext != "" {
			return ext, mimeType
		}
	}

	switch {
	case strings.Contains(mimeType, "mp4"):
		return ".mp4", mimeType
	case strings.Contains(mimeType, "quicktime"):
		return ".mov", mimeType
	case strings.Contains(mimeType, "webm"):
		return ".webm", mimeType
	}
	return ".mp4", mimeType
}

// ObjectName builds the logical storage name for an upload:
// a UTC timestamp plus the transport file id keeps names unique per upload.
func ObjectName(fileID, ext string, now time.Time) string {
	return fmt.Sprintf("%s_%s%s", now.UTC().Format("20060102_150405"), fileID, ext)
}

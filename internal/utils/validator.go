package utils

import (
	"io"
	"net/http"
)

// allowedImageTypes maps accepted sniffed content types to their canonical
// file extensions. The gallery accepts JPEG, PNG and WebP only.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// SniffImageType reads the first 512 bytes, rewinds the reader and returns
// the detected content type plus the extension to store the file under.
// ok is false when the content is not an accepted image format.
func SniffImageType(reader io.ReadSeeker) (contentType string, ext string, ok bool, err error) {
	buffer := make([]byte, 512)
	if _, err = reader.Read(buffer); err != nil && err != io.EOF {
		return "", "", false, err
	}
	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		return "", "", false, err
	}

	contentType = http.DetectContentType(buffer)
	ext, ok = allowedImageTypes[contentType]
	return contentType, ext, ok, nil
}

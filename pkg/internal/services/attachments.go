package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"gorm.io/datatypes"
)

// AttachmentPrefix is the storage prefix post images are referenced
// under, relative to the media root.
const AttachmentPrefix = "posts"

func mediaRoot() string {
	root := viper.GetString("storage.media_dir")
	if len(root) == 0 {
		root = "media"
	}
	return root
}

// SaveAttachment persists an uploaded image under the media root, keyed
// by its original file name, and returns the stored reference together
// with the upload metadata.
func SaveAttachment(header *multipart.FileHeader) (string, datatypes.JSONMap, error) {
	src, err := header.Open()
	if err != nil {
		return "", nil, fmt.Errorf("unable to open uploaded file: %v", err)
	}
	defer src.Close()

	dir := filepath.Join(mediaRoot(), AttachmentPrefix)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", nil, fmt.Errorf("unable to create media directory: %v", err)
	}

	name := filepath.Base(header.Filename)
	if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
		// Same name was uploaded before, keep both.
		name = fmt.Sprintf("%s-%s", uuid.New().String()[:8], name)
	}

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", nil, fmt.Errorf("unable to create media file: %v", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", nil, fmt.Errorf("unable to write media file: %v", err)
	}

	meta := datatypes.JSONMap{
		"filename": header.Filename,
		"size":     header.Size,
		"mimetype": header.Header.Get("Content-Type"),
	}

	return filepath.ToSlash(filepath.Join(AttachmentPrefix, name)), meta, nil
}

package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// MaxUploadSize caps profile photo uploads at 5MB.
const MaxUploadSize = 5 * 1024 * 1024

var ErrFileTooLarge = errors.New("file too large")

// UploadService stores uploaded files under a local directory served at
// /uploads and sweeps the ones no stored record references anymore.
type UploadService struct {
	dir string
	log *zap.Logger
}

func NewUploadService(dir string, log *zap.Logger) (*UploadService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &UploadService{dir: dir, log: log}, nil
}

// Save writes the uploaded file under a random name, keeping the original
// extension, and returns the public URL path.
func (u *UploadService) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxUploadSize {
		return "", ErrFileTooLarge
	}
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	name := hex.EncodeToString(b) + filepath.Ext(fh.Filename)

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

// SweepOrphans deletes files in the upload directory that are older than
// olderThan and whose basename appears in none of the referenced URLs.
// Returns the number of files removed.
func (u *UploadService) SweepOrphans(ctx context.Context, refs []string, olderThan time.Duration) (int, error) {
	inUse := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		if base := path.Base(ref); base != "" && base != "." && base != "/" {
			inUse[base] = struct{}{}
		}
	}

	entries, err := os.ReadDir(u.dir)
	if err != nil {
		return 0, err
	}
	cutoff := time.Now().Add(-olderThan)

	removed := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if entry.IsDir() {
			continue
		}
		if _, ok := inUse[entry.Name()]; ok {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(u.dir, entry.Name())); err != nil {
			u.log.Warn("failed to remove orphaned upload",
				zap.String("file", entry.Name()), zap.Error(err))
			continue
		}
		removed++
	}
	return removed, nil
}

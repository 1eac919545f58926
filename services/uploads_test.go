package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", name)
	if err != nil {
		t.Fatalf("multipart setup failed: %v", err)
	}
	fw.Write(content)
	mw.Close()

	req, _ := http.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return req.MultipartForm.File["file"][0]
}

func TestSaveKeepsExtensionAndReturnsURL(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewUploadService(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("service setup failed: %v", err)
	}

	url, err := svc.Save(fileHeader(t, "photo.jpg", []byte("fake image")))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/") || !strings.HasSuffix(url, ".jpg") {
		t.Fatalf("unexpected url: %q", url)
	}

	name := strings.TrimPrefix(url, "/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(data) != "fake image" {
		t.Errorf("stored content does not match upload: %q", data)
	}
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	svc, err := NewUploadService(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("service setup failed: %v", err)
	}

	// Size is checked before the file is opened, so a bare header suffices.
	fh := &multipart.FileHeader{Filename: "huge.jpg", Size: MaxUploadSize + 1}
	if _, err := svc.Save(fh); err != ErrFileTooLarge {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
}

func TestSweepOrphans(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewUploadService(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("service setup failed: %v", err)
	}

	write := func(name string, old bool) {
		t.Helper()
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if old {
			past := time.Now().Add(-48 * time.Hour)
			if err := os.Chtimes(p, past, past); err != nil {
				t.Fatalf("chtimes failed: %v", err)
			}
		}
	}
	write("referenced.jpg", true)
	write("orphan.jpg", true)
	write("fresh.jpg", false)

	refs := []string{"/uploads/referenced.jpg"}
	removed, err := svc.SweepOrphans(context.Background(), refs, 24*time.Hour)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 file removed, got %d", removed)
	}

	if _, err := os.Stat(filepath.Join(dir, "referenced.jpg")); err != nil {
		t.Error("referenced file was removed")
	}
	if _, err := os.Stat(filepath.Join(dir, "fresh.jpg")); err != nil {
		t.Error("fresh file was removed")
	}
	if _, err := os.Stat(filepath.Join(dir, "orphan.jpg")); !os.IsNotExist(err) {
		t.Error("orphaned file survived the sweep")
	}
}

func TestSweepOrphansHonorsContext(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewUploadService(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("service setup failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.jpg"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.SweepOrphans(ctx, nil, 0); err == nil {
		t.Fatal("expected cancelled context to abort the sweep")
	}
}

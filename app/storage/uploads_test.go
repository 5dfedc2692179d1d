package storage

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// Minimal valid PNG header so content sniffing sees an image.
var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatal(err)
	}
	w.Close()

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatal(err)
	}
	return req.MultipartForm.File["file"][0]
}

func fixedClock(year, month int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.Month(month), 15, 10, 30, 0, 0, time.UTC)
	}
}

func TestResolverSave(t *testing.T) {
	root := t.TempDir()
	r := &Resolver{Root: root, Now: fixedClock(2024, 7)}

	rel, err := r.Save(KindSlip, makeFileHeader(t, "payment.PNG", pngBytes))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if !strings.HasPrefix(rel, "slips/2024/07/") {
		t.Errorf("expected slips/2024/07/ prefix, got %s", rel)
	}
	if !strings.HasSuffix(rel, ".png") {
		t.Errorf("expected lowercased .png extension, got %s", rel)
	}

	stored, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("stored file not readable: %v", err)
	}
	if !bytes.Equal(stored, pngBytes) {
		t.Error("stored content differs from upload")
	}
}

func TestResolverSaveSingleDigitMonth(t *testing.T) {
	r := &Resolver{Root: t.TempDir(), Now: fixedClock(2023, 3)}

	rel, err := r.Save(KindReceipt, makeFileHeader(t, "bill.png", pngBytes))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !strings.HasPrefix(rel, "receipts/2023/03/") {
		t.Errorf("month must be zero-padded, got %s", rel)
	}
}

func TestResolverSaveUniqueNames(t *testing.T) {
	r := &Resolver{Root: t.TempDir(), Now: fixedClock(2024, 7)}

	first, err := r.Save(KindSlip, makeFileHeader(t, "a.png", pngBytes))
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Save(KindSlip, makeFileHeader(t, "a.png", pngBytes))
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Errorf("two uploads in the same instant must not collide: %s", first)
	}
}

func TestResolverSaveRejectsNonImage(t *testing.T) {
	r := &Resolver{Root: t.TempDir(), Now: fixedClock(2024, 7)}

	// Claims to be a PNG by name, but the bytes are plain text.
	_, err := r.Save(KindSlip, makeFileHeader(t, "fake.png", []byte("not an image at all")))
	if !errors.Is(err, ErrNotImage) {
		t.Errorf("expected ErrNotImage, got %v", err)
	}
}

func TestResolverSaveRejectsTooLarge(t *testing.T) {
	r := &Resolver{Root: t.TempDir(), Now: fixedClock(2024, 7)}

	big := make([]byte, MaxUploadSize+1)
	copy(big, pngBytes)
	_, err := r.Save(KindSlip, makeFileHeader(t, "huge.png", big))
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("expected ErrTooLarge, got %v", err)
	}
}

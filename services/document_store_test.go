package services

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSavePreservesExtensionAndGeneratesUniqueRefs(t *testing.T) {
	store := NewDocumentStore(t.TempDir())

	ref1, err := store.Save(strings.NewReader("first"), "certificate.PDF")
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	ref2, err := store.Save(strings.NewReader("second"), "certificate.PDF")
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if !strings.HasSuffix(ref1, ".pdf") {
		t.Fatalf("expected lowercased .pdf suffix, got %s", ref1)
	}
	if ref1 == ref2 {
		t.Fatalf("expected distinct refs, got %s twice", ref1)
	}
}

func TestSaveEmptyStreamLeavesNothingBehind(t *testing.T) {
	root := t.TempDir()
	store := NewDocumentStore(root)

	if _, err := store.Save(strings.NewReader(""), "empty.pdf"); !errors.Is(err, ErrEmptyUpload) {
		t.Fatalf("expected ErrEmptyUpload, got %v", err)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("failed to read upload dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty upload dir, found %d entries", len(entries))
	}
}

func TestOpenRoundTrip(t *testing.T) {
	store := NewDocumentStore(t.TempDir())

	ref, err := store.Save(strings.NewReader("proof content"), "proof.png")
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	f, err := store.Open(ref)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("failed to read document: %v", err)
	}
	if string(data) != "proof content" {
		t.Fatalf("unexpected content: %q", data)
	}
}

func TestOpenMissingRef(t *testing.T) {
	store := NewDocumentStore(t.TempDir())

	if _, err := store.Open("no-such-ref.pdf"); !errors.Is(err, ErrDocumentMissing) {
		t.Fatalf("expected ErrDocumentMissing, got %v", err)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	root := t.TempDir()
	store := NewDocumentStore(root)

	ref, err := store.Save(strings.NewReader("to be removed"), "x.docx")
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if err := store.Remove(ref); err != nil {
		t.Fatalf("first Remove returned error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, ref)); !os.IsNotExist(err) {
		t.Fatalf("expected file to be gone, stat err: %v", err)
	}
	if err := store.Remove(ref); err != nil {
		t.Fatalf("second Remove returned error: %v", err)
	}
}

func TestMalformedRefsRejected(t *testing.T) {
	store := NewDocumentStore(t.TempDir())

	for _, ref := range []string{"", "../escape.pdf", "a/b.pdf", ".hidden"} {
		if _, err := store.Open(ref); err == nil || errors.Is(err, ErrDocumentMissing) {
			t.Fatalf("expected malformed-ref error for %q, got %v", ref, err)
		}
		if err := store.Remove(ref); err == nil {
			t.Fatalf("expected malformed-ref error for Remove(%q)", ref)
		}
	}
}

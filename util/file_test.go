package util

import (
	"os"
	"path"
	"testing"
)

func TestWriteToFile(t *testing.T) {
	filePath := path.Join(t.TempDir(), "out.txt")
	if err := WriteToFile(filePath, "one", "two"); err != nil {
		t.Fatalf("write failed: %s", err)
	}
	bs, err := os.ReadFile(filePath)
	if err != nil {
		t.Fatalf("read failed: %s", err)
	}
	if string(bs) != "one\ntwo" {
		t.Errorf("incorrect content: %q", string(bs))
	}
}

func TestAppendToFile(t *testing.T) {
	filePath := path.Join(t.TempDir(), "out.txt")
	if err := AppendToFile(filePath, "one"); err != nil {
		t.Fatalf("append failed: %s", err)
	}
	if err := AppendToFile(filePath, "two"); err != nil {
		t.Fatalf("append failed: %s", err)
	}
	bs, err := os.ReadFile(filePath)
	if err != nil {
		t.Fatalf("read failed: %s", err)
	}
	if string(bs) != "one\ntwo\n" {
		t.Errorf("incorrect content: %q", string(bs))
	}
}

package persistence

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spacemeshos/bits/shared"
)

type FileWriter struct {
	file *os.File
	buf  *bufio.Writer
}

// NewFileWriter creates, or truncates, the file at filename.
func NewFileWriter(filename string) (*FileWriter, error) {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, shared.OwnerReadWrite)
	if err != nil {
		return nil, fmt.Errorf("failed to open file for writing: %w", err)
	}
	return &FileWriter{
		file: f,
		buf:  bufio.NewWriter(f),
	}, nil
}

func (w *FileWriter) Write(b []byte) error {
	_, err := w.buf.Write(b)
	return err
}

func (w *FileWriter) Flush() error {
	if err := w.buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush disk writer: %w", err)
	}

	return nil
}

func (w *FileWriter) Close() (os.FileInfo, error) {
	if err := w.Flush(); err != nil {
		_ = w.file.Close()
		return nil, err
	}
	w.buf = nil

	info, err := w.file.Stat()
	if err != nil {
		_ = w.file.Close()
		return nil, err
	}

	if err := w.file.Close(); err != nil {
		return nil, err
	}
	w.file = nil

	return info, nil
}

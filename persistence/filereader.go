package persistence

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

type FileReader struct {
	file *os.File
	buf  *bufio.Reader
}

func NewFileReader(name string) (*FileReader, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open file for reading: %w", err)
	}

	return &FileReader{
		file: file,
		buf:  bufio.NewReader(file),
	}, nil
}

func (r *FileReader) Read(p []byte) (int, error) {
	return r.buf.Read(p)
}

// Size returns the size of the file in bytes.
func (r *FileReader) Size() (int64, error) {
	info, err := r.file.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

func (r *FileReader) ReadAll() ([]byte, error) {
	size, err := r.Size()
	if err != nil {
		return nil, err
	}
	data := make([]byte, size)
	if _, err := io.ReadFull(r.buf, data); err != nil {
		return nil, err
	}
	return data, nil
}

func (r *FileReader) Close() error {
	r.buf = nil
	return r.file.Close()
}

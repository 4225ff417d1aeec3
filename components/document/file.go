package document

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
)

// File is a document read from the local file system
type File struct {
	path string
	Meta map[string]string
}

func NewFile(fname string) (*File, error) {
	fileInfo, err := os.Stat(fname)
	if err != nil {
		return nil, err
	}
	if fileInfo.IsDir() {
		return nil, errors.New("FileDocument could not be a directory")
	}
	return &File{
		path: fname,
		Meta: map[string]string{
			"filename": filepath.Base(fname),
			"modtime":  strconv.FormatInt(fileInfo.ModTime().Unix(), 10),
		},
	}, nil
}

// Path returns the file path
func (d *File) Path() string {
	return d.path
}

// ReadText reads the file and extracts its text according to its content type
func (d *File) ReadText(ctx context.Context, opts ...Option) (string, error) {
	bs, err := os.ReadFile(d.path)
	if err != nil {
		return "", err
	}
	return ParseText(ctx, bs, opts...)
}

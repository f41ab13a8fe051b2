package formula

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
)

const OutputDirectory = "Formulae"

// Sink is the destination of a generation run. Flush must push every buffered byte to the underlying medium
type Sink interface {
	io.Writer
	Flush() error
}

// FileSink is a buffered Sink backed by a file; Flush also syncs the file to disk
type FileSink struct {
	file   *os.File
	writer *bufio.Writer
	path   string
}

// OpenOutput creates <parent>/Formulae (parents included) and creates or truncates the file named after config
func OpenOutput(parent string, config Config) (*FileSink, error) {
	directory := filepath.Join(parent, OutputDirectory)
	if err := os.MkdirAll(directory, 0755); err != nil {
		return nil, &IOError{Op: "create directory", Path: directory, Err: err}
	}

	path := filepath.Join(directory, config.FileName())
	file, err := os.Create(path)
	if err != nil {
		return nil, &IOError{Op: "open output file", Path: path, Err: err}
	}

	return &FileSink{
		file:   file,
		writer: bufio.NewWriter(file),
		path:   path,
	}, nil
}

func (sink *FileSink) Path() string {
	return sink.path
}

func (sink *FileSink) Write(p []byte) (int, error) {
	return sink.writer.Write(p)
}

func (sink *FileSink) Flush() error {
	if err := sink.writer.Flush(); err != nil {
		return err
	}
	return sink.file.Sync()
}

// Close flushes the remaining buffered output and closes the file
func (sink *FileSink) Close() error {
	if err := sink.Flush(); err != nil {
		sink.file.Close()
		return &IOError{Op: "flush", Path: sink.path, Err: err}
	}
	if err := sink.file.Close(); err != nil {
		return &IOError{Op: "close", Path: sink.path, Err: err}
	}
	return nil
}

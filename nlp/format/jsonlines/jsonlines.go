package jsonlines

// Package jsonlines reads and writes newline-delimited JSON records,
// one compact JSON object per line.

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
)

type Writer struct {
	writer *bufio.Writer
}

func NewWriter(writer io.Writer) *Writer {
	return &Writer{writer: bufio.NewWriter(writer)}
}

// Write encodes one record and flushes it, so an aborted run leaves only
// whole records behind.
func (w *Writer) Write(record interface{}) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	if _, err := w.writer.Write(data); err != nil {
		return err
	}
	if err := w.writer.WriteByte('\n'); err != nil {
		return err
	}
	return w.writer.Flush()
}

type Reader struct {
	reader *bufio.Reader
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{reader: bufio.NewReader(reader)}
}

// Read decodes the next record into record; io.EOF once the stream is done.
// Blank lines are skipped.
func (r *Reader) Read(record interface{}) error {
	for {
		line, err := r.reader.ReadBytes('\n')
		if len(line) == 0 && err != nil {
			return err
		}
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			if err != nil {
				return err
			}
			continue
		}
		return json.Unmarshal(line, record)
	}
}

package conllx

// Package conllx reads CoNLL-X formatted dependency columns as emitted by
// the constituency-to-dependency converter.
// For a description of the format see http://ilk.uvt.nl/conll/#dataformat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	FIELD_SEPARATOR = "\t"
	NUM_FIELDS      = 10

	ID_FIELD      = 0
	FORM_FIELD    = 1
	CPOSTAG_FIELD = 3
	HEAD_FIELD    = 6
	DEPREL_FIELD  = 7
)

// A Row is a single parsed row of a CoNLL-X data set.
// Head is 1-based; 0 is reserved for the sentence root.
type Row struct {
	ID     int
	Form   string
	POS    string
	Head   int
	DepRel string
}

// A Sentence is the ordered rows of one dependency tree
type Sentence []Row

func ParseInt(value string) (int, error) {
	if value == "_" {
		return 0, nil
	}
	i, err := strconv.ParseInt(value, 10, 0)
	return int(i), err
}

func ParseString(value string) string {
	if value == "_" {
		return ""
	}
	return value
}

// ParseRow parses one tab-delimited record. Fields are split on tabs rather
// than read through encoding/csv: word forms may contain bare double quotes
// which csv quoting rules would mangle.
func ParseRow(record []string) (Row, error) {
	var row Row
	if len(record) != NUM_FIELDS {
		return row, fmt.Errorf("expected %d fields, got %d", NUM_FIELDS, len(record))
	}
	id, err := ParseInt(record[ID_FIELD])
	if err != nil {
		return row, fmt.Errorf("error parsing ID field (%s): %v", record[ID_FIELD], err)
	}
	row.ID = id

	form := ParseString(record[FORM_FIELD])
	if form == "" {
		return row, fmt.Errorf("empty FORM field")
	}
	row.Form = form

	pos := ParseString(record[CPOSTAG_FIELD])
	if pos == "" {
		return row, fmt.Errorf("empty CPOSTAG field")
	}
	row.POS = pos

	head, err := ParseInt(record[HEAD_FIELD])
	if err != nil {
		return row, fmt.Errorf("error parsing HEAD field (%s): %v", record[HEAD_FIELD], err)
	}
	row.Head = head

	deprel := ParseString(record[DEPREL_FIELD])
	if deprel == "" {
		return row, fmt.Errorf("empty DEPREL field")
	}
	row.DepRel = deprel
	return row, nil
}

// A Reader yields sentences from a stream of CoNLL-X rows. A sentence is a
// run of consecutive lines starting with a digit; blank lines and anything
// else separate sentences.
type Reader struct {
	scanner    *bufio.Scanner
	lineNumber int
}

func NewReader(reader io.Reader) *Reader {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Reader{scanner: scanner}
}

// Sentence returns the next sentence, or io.EOF once the stream is done.
func (r *Reader) Sentence() (Sentence, error) {
	var sent Sentence
	for r.scanner.Scan() {
		r.lineNumber++
		line := r.scanner.Text()
		if len(line) == 0 || line[0] < '0' || line[0] > '9' {
			if len(sent) > 0 {
				return sent, nil
			}
			continue
		}
		row, err := ParseRow(strings.Split(line, FIELD_SEPARATOR))
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", r.lineNumber, err)
		}
		sent = append(sent, row)
	}
	if err := r.scanner.Err(); err != nil {
		return nil, err
	}
	if len(sent) > 0 {
		return sent, nil
	}
	return nil, io.EOF
}

// Sentences reads exactly n sentences; fewer is an error. This is the
// lockstep cursor used to consume a merged dependency stream against its
// per-file sentence count index.
func (r *Reader) Sentences(n int) ([]Sentence, error) {
	sentences := make([]Sentence, 0, n)
	for i := 0; i < n; i++ {
		sent, err := r.Sentence()
		if err == io.EOF {
			return nil, fmt.Errorf("stream exhausted after %d of %d sentences", i, n)
		}
		if err != nil {
			return nil, err
		}
		sentences = append(sentences, sent)
	}
	return sentences, nil
}

func Read(reader io.Reader) ([]Sentence, error) {
	var sentences []Sentence
	r := NewReader(reader)
	for {
		sent, err := r.Sentence()
		if err == io.EOF {
			return sentences, nil
		}
		if err != nil {
			return nil, err
		}
		sentences = append(sentences, sent)
	}
}

func ReadFile(filename string) ([]Sentence, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Read(file)
}

// Blocks returns the raw line groups of a stream, one group per sentence,
// without parsing the rows. Used to merge converter outputs verbatim.
func Blocks(reader io.Reader) ([][]string, error) {
	var blocks [][]string
	var current []string
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 || line[0] < '0' || line[0] > '9' {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks, nil
}

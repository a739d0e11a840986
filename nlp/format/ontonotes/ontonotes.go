package ontonotes

// Package ontonotes reads the CoNLL-formatted OntoNotes coreference
// annotation (*gold_conll files): one line per word, whitespace-delimited
// columns, coreference brackets in the last column.

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

const (
	MIN_FIELDS     = 12
	DOC_ID_FIELD   = 0
	PART_ID_FIELD  = 1
	WORD_NUM_FIELD = 2
	WORD_FIELD     = 3
	POS_FIELD      = 4
	PARSE_FIELD    = 5
	SPEAKER_FIELD  = 9

	// the last column; "-" means the word carries no coreference brackets
	NO_COREF = "-"
)

// Word lines start with a slash-separated document id, e.g. bc/cctv/00/cctv_0000
var wordLine = regexp.MustCompile(`^(?:\w+/){3}.+$`)

// A Row is a single parsed word line of an annotation file
type Row struct {
	DocumentID string
	PartID     int
	WordNumber int
	Word       string
	POS        string
	ParseBit   string
	Speaker    string
	Coref      string
}

// A Sentence is one contiguous block of word lines
type Sentence []Row

func ParseRow(fields []string) (Row, error) {
	var row Row
	if len(fields) < MIN_FIELDS {
		return row, fmt.Errorf("expected at least %d fields, got %d", MIN_FIELDS, len(fields))
	}
	partID, err := strconv.Atoi(fields[PART_ID_FIELD])
	if err != nil {
		return row, fmt.Errorf("error parsing part id field (%s): %v", fields[PART_ID_FIELD], err)
	}
	wordNumber, err := strconv.Atoi(fields[WORD_NUM_FIELD])
	if err != nil {
		return row, fmt.Errorf("error parsing word number field (%s): %v", fields[WORD_NUM_FIELD], err)
	}
	row.DocumentID = fields[DOC_ID_FIELD]
	row.PartID = partID
	row.WordNumber = wordNumber
	row.Word = fields[WORD_FIELD]
	row.POS = fields[POS_FIELD]
	row.ParseBit = fields[PARSE_FIELD]
	row.Speaker = fields[SPEAKER_FIELD]
	row.Coref = fields[len(fields)-1]
	return row, nil
}

// Read parses all sentences of an annotation stream. A sentence is a run of
// consecutive word lines; comments, document delimiters and blank lines
// separate sentences.
func Read(reader io.Reader) ([]Sentence, error) {
	var sentences []Sentence
	var current Sentence
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if !wordLine.MatchString(line) {
			if current != nil {
				sentences = append(sentences, current)
				current = nil
			}
			continue
		}
		row, err := ParseRow(strings.Fields(line))
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", lineNumber, err)
		}
		current = append(current, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if current != nil {
		sentences = append(sentences, current)
	}
	return sentences, nil
}

func ReadFile(filename string) ([]Sentence, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Read(file)
}

// ExtractTrees rebuilds the bracketed constituency trees of an annotation
// stream, one tree per sentence. Each word's parse bit has its "*" replaced
// by a POS-tagged leaf of the form (POS word).
func ExtractTrees(reader io.Reader) ([]string, error) {
	var trees []string
	var current strings.Builder
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimLeft(scanner.Text(), " \t")
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		columns := strings.Fields(line)
		if len(columns) < PARSE_FIELD+1 {
			return nil, fmt.Errorf("line %d: expected at least %d fields, got %d", lineNumber, PARSE_FIELD+1, len(columns))
		}
		wordNumber, err := strconv.Atoi(columns[WORD_NUM_FIELD])
		if err != nil {
			return nil, fmt.Errorf("line %d: error parsing word number field (%s): %v", lineNumber, columns[WORD_NUM_FIELD], err)
		}
		if wordNumber == 0 && current.Len() > 0 {
			trees = append(trees, current.String())
			current.Reset()
		}
		parseBit := columns[PARSE_FIELD]
		starAt := strings.Index(parseBit, "*")
		if starAt < 0 {
			return nil, fmt.Errorf("line %d: parse bit %q has no word placeholder", lineNumber, parseBit)
		}
		current.WriteString(parseBit[:starAt])
		current.WriteString(fmt.Sprintf("(%s %s)", columns[POS_FIELD], columns[WORD_FIELD]))
		current.WriteString(parseBit[starAt+1:])
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if current.Len() > 0 {
		trees = append(trees, current.String())
	}
	return trees, nil
}

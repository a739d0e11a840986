package app

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vdobrovolskii/wl-coref/nlp/coref"
	"github.com/vdobrovolskii/wl-coref/nlp/format/conllx"
	"github.com/vdobrovolskii/wl-coref/nlp/format/jsonlines"
	"github.com/vdobrovolskii/wl-coref/nlp/format/ontonotes"
	"github.com/vdobrovolskii/wl-coref/nlp/parser/stanford"
	"github.com/vdobrovolskii/wl-coref/nlp/types"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/pebbe/util"
)

var x = util.CheckErr

func ConvertCorpus(cmd *commander.Command, args []string) error {
	if len(args) != 1 {
		cmd.Usage()
		os.Exit(1)
	}
	corpusRoot := args[0]
	if !VerifyExists(corpusRoot) {
		os.Exit(1)
	}

	prepareTmpDir()
	dataDir := filepath.Join(corpusRoot, "v4", "data")
	filenames, err := goldFilenames(dataDir)
	x(err)
	if allOut {
		for _, split := range DataSplits {
			log.Println("Found", len(filenames[split]), "gold conll files in", split)
		}
	}

	x(extractTreesToFiles(filenames))
	x(convertConToDep(filenames))
	x(mergeDepFiles(filenames))
	x(buildJsonlines(dataDir))
	x(splitJsonlines())

	if !keepTmpDir {
		x(os.RemoveAll(tmpDir))
	}
	log.Println("Done")
	return nil
}

// prepareTmpDir creates the temp directory, destroying an existing one only
// after interactive confirmation.
func prepareTmpDir() {
	if _, err := os.Stat(tmpDir); err == nil {
		if !util.IsTerminal(os.Stdin) {
			log.Fatalln(tmpDir, "already exists; refusing to delete it without confirmation")
		}
		fmt.Printf("%s already exists! Enter 'yes' to delete it or anything to exit: ", tmpDir)
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() || scanner.Text() != "yes" {
			os.Exit(0)
		}
		x(os.RemoveAll(tmpDir))
	}
	x(os.MkdirAll(tmpDir, 0755))
}

// goldFilenames walks each split's english subtree collecting *gold_conll
// files, in lexical order.
func goldFilenames(dataDir string) (map[string][]string, error) {
	filenames := make(map[string][]string, len(DataSplits))
	for _, split := range DataSplits {
		splitDir := filepath.Join(dataDir, split, "data", "english")
		err := filepath.WalkDir(splitDir, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !entry.IsDir() && strings.HasSuffix(path, "gold_conll") {
				filenames[split] = append(filenames[split], path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return filenames, nil
}

// extractTreesToFiles mirrors every annotation file into the temp directory
// as a file of constituency trees, one tree per line.
func extractTreesToFiles(filenames map[string][]string) error {
	log.Println("Extracting constituency trees...")
	for _, split := range DataSplits {
		for _, filename := range filenames[split] {
			file, err := os.Open(filename)
			if err != nil {
				return err
			}
			trees, err := ontonotes.ExtractTrees(file)
			file.Close()
			if err != nil {
				return fmt.Errorf("%s: %v", filename, err)
			}

			tempPath := filepath.Join(tmpDir, filename)
			if _, err := os.Stat(tempPath); err == nil {
				return fmt.Errorf("%s already exists", tempPath)
			}
			if err := os.MkdirAll(filepath.Dir(tempPath), 0755); err != nil {
				return err
			}
			out, err := os.Create(tempPath)
			if err != nil {
				return err
			}
			writer := bufio.NewWriter(out)
			for _, tree := range trees {
				fmt.Fprintln(writer, tree)
			}
			if err := writer.Flush(); err != nil {
				out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return err
			}
		}
	}
	return nil
}

func convertConToDep(filenames map[string][]string) error {
	log.Println("Converting constituents to dependencies...")
	for _, split := range DataSplits {
		for i, filename := range filenames[split] {
			if allOut {
				log.Printf("%s: %d/%d %s", split, i+1, len(filenames[split]), filename)
			}
			tempPath := filepath.Join(tmpDir, filename)
			if err := stanford.Convert(parserJar, tempPath, tempPath+"_dep"); err != nil {
				return err
			}
		}
	}
	return nil
}

// mergeDepFiles concatenates all converter outputs into one dependency file
// plus an index of per-file sentence counts, preserving file order.
func mergeDepFiles(filenames map[string][]string) error {
	log.Println("Merging dependency files...")
	fout, err := os.Create(filepath.Join(tmpDir, DEPS_FILENAME))
	if err != nil {
		return err
	}
	defer fout.Close()
	fidx, err := os.Create(filepath.Join(tmpDir, DEPS_IDX_FILENAME))
	if err != nil {
		return err
	}
	defer fidx.Close()

	out := bufio.NewWriter(fout)
	idx := bufio.NewWriter(fidx)
	for _, split := range DataSplits {
		for _, filename := range filenames[split] {
			depPath := filepath.Join(tmpDir, filename) + "_dep"
			file, err := os.Open(depPath)
			if err != nil {
				return err
			}
			blocks, err := conllx.Blocks(file)
			file.Close()
			if err != nil {
				return fmt.Errorf("%s: %v", depPath, err)
			}
			fmt.Fprintf(idx, "%d\t%s\n", len(blocks), filename)
			for _, block := range blocks {
				for _, line := range block {
					fmt.Fprintln(out, line)
				}
				fmt.Fprintln(out)
			}
		}
	}
	if err := out.Flush(); err != nil {
		return err
	}
	return idx.Flush()
}

// buildJsonlines merges every annotation file with its dependency sentences,
// consuming the merged dependency stream in index order, and routes each
// document record to its split's jsonlines file in the temp directory.
func buildJsonlines(dataDir string) error {
	log.Println("Building jsonlines...")
	fidx, err := os.Open(filepath.Join(tmpDir, DEPS_IDX_FILENAME))
	if err != nil {
		return err
	}
	defer fidx.Close()
	deps, err := os.Open(filepath.Join(tmpDir, DEPS_FILENAME))
	if err != nil {
		return err
	}
	defer deps.Close()
	depReader := conllx.NewReader(deps)

	writers := make(map[string]*jsonlines.Writer, len(DataSplits))
	for _, split := range DataSplits {
		out, err := os.Create(splitPath(tmpDir, split))
		if err != nil {
			return err
		}
		defer out.Close()
		writers[split] = jsonlines.NewWriter(out)
	}

	scanner := bufio.NewScanner(fidx)
	for scanner.Scan() {
		fields := strings.SplitN(scanner.Text(), "\t", 2)
		if len(fields) != 2 {
			return fmt.Errorf("malformed index line %q", scanner.Text())
		}
		numSents, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("malformed index line %q: %v", scanner.Text(), err)
		}
		filename := fields[1]

		parsed, err := depReader.Sentences(numSents)
		if err != nil {
			return fmt.Errorf("%s: %v", filename, err)
		}
		sents, err := ontonotes.ReadFile(filename)
		if err != nil {
			return err
		}
		doc, err := coref.BuildDocument(sents, parsed)
		if err != nil {
			return fmt.Errorf("%s: %v", filename, err)
		}
		split, err := splitType(dataDir, filename)
		if err != nil {
			return err
		}
		if err := writers[split].Write(doc); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// splitType derives the data split of a file from its path under dataDir.
func splitType(dataDir, filename string) (string, error) {
	rel, err := filepath.Rel(filepath.Clean(dataDir), filepath.Clean(filename))
	if err != nil {
		return "", err
	}
	for _, split := range DataSplits {
		if strings.HasPrefix(rel, split) {
			return split, nil
		}
	}
	return "", fmt.Errorf("path %s does not contain split type information", filename)
}

// splitJsonlines explodes multi-part documents into per-part documents,
// writing the final jsonlines into the output directory.
func splitJsonlines() error {
	log.Println("Splitting multi-part documents...")
	for _, split := range DataSplits {
		in, err := os.Open(splitPath(tmpDir, split))
		if err != nil {
			return err
		}
		out, err := os.Create(splitPath(outDir, split))
		if err != nil {
			in.Close()
			return err
		}
		reader := jsonlines.NewReader(in)
		writer := jsonlines.NewWriter(out)
		for {
			var doc types.MergedDocument
			err := reader.Read(&doc)
			if err == io.EOF {
				break
			}
			if err != nil {
				in.Close()
				out.Close()
				return err
			}
			parts, err := coref.Split(&doc)
			if err != nil {
				in.Close()
				out.Close()
				return err
			}
			for _, part := range parts {
				if err := writer.Write(part); err != nil {
					in.Close()
					out.Close()
					return err
				}
			}
		}
		in.Close()
		if err := out.Close(); err != nil {
			return err
		}
	}
	return nil
}

func splitPath(dir, split string) string {
	return filepath.Join(dir, fmt.Sprintf("english_%s.jsonlines", split))
}

func ConvertCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       ConvertCorpus,
		UsageLine: "convert <conll root directory> [options]",
		Short:     "converts a conll-formatted OntoNotes corpus to jsonlines",
		Long: `
converts a conll-formatted OntoNotes corpus to jsonlines, one document per line

	$ ./wlcoref convert <conll root directory> [-out-dir d] [-tmp-dir d] [-keep-tmp-dir] [options]

`,
		Flag: *flag.NewFlagSet("convert", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&outDir, "out-dir", ".", "Directory the output jsonlines are written to")
	cmd.Flag.StringVar(&tmpDir, "tmp-dir", "temp", "Directory to keep temporary files in")
	cmd.Flag.BoolVar(&keepTmpDir, "keep-tmp-dir", false, "Do not delete the temporary directory")
	cmd.Flag.StringVar(&parserJar, "parser-jar", stanford.DEFAULT_PARSER_JAR, "Stanford parser jar used for dependency conversion")
	return cmd
}

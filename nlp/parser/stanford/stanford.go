package stanford

// Package stanford invokes the Stanford parser's constituency-to-dependency
// converter as a one-shot blocking subprocess per input file.

import (
	"fmt"
	"os"
	"os/exec"
)

const (
	DEFAULT_PARSER_JAR = "downloads/stanford-parser.jar"
	CONVERTER_CLASS    = "edu.stanford.nlp.trees.EnglishGrammaticalStructure"
)

// Convert feeds a file of bracketed constituency trees, one per line, to the
// converter and writes the CoNLL-X columns it emits to outFile. A non-zero
// exit of the converter is returned as-is; there is no retry.
func Convert(jar, treeFile, outFile string) error {
	out, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer out.Close()

	cmd := exec.Command("java", "-cp", jar, CONVERTER_CLASS,
		"-basic", "-keepPunct", "-conllx", "-treeFile", treeFile)
	cmd.Stdout = out
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("converting %s: %v", treeFile, err)
	}
	return nil
}

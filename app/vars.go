package app

import (
	"log"
	"os"
)

var (
	allOut bool = true

	// convert options
	outDir     string
	tmpDir     string
	keepTmpDir bool
	parserJar  string

	// heads options
	dataDir string
	verbose bool

	// score options
	logDir     string
	scorerPath string
)

// DataSplits are the corpus splits, in processing order
var DataSplits = []string{"development", "test", "train"}

const (
	DEPS_FILENAME     = "deps.conllu"
	DEPS_IDX_FILENAME = "deps.index"
)

func VerifyExists(filename string) bool {
	_, err := os.Stat(filename)
	if err != nil {
		log.Println("Error accessing file", filename)
		log.Println(err)
		return false
	}
	return true
}

package app

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/vdobrovolskii/wl-coref/nlp/coref"
	"github.com/vdobrovolskii/wl-coref/nlp/format/jsonlines"
	"github.com/vdobrovolskii/wl-coref/nlp/types"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

// ConvertHeads reduces the span clusters of every document to head-word
// clusters, writing *_head.jsonlines next to the inputs and reporting how
// many spans and clusters the deduplication dropped.
func ConvertHeads(cmd *commander.Command, args []string) error {
	for _, split := range DataSplits {
		inPath := filepath.Join(dataDir, fmt.Sprintf("english_%s.jsonlines", split))
		outPath := filepath.Join(dataDir, fmt.Sprintf("english_%s_head.jsonlines", split))

		in, err := os.Open(inPath)
		x(err)
		out, err := os.Create(outPath)
		x(err)
		reader := jsonlines.NewReader(in)
		writer := jsonlines.NewWriter(out)

		var total coref.Stats
		for {
			var doc types.Document
			err := reader.Read(&doc)
			if err == io.EOF {
				break
			}
			x(err)

			headDoc, stats := coref.Normalize(&doc)
			if verbose {
				logCollisions(split, &doc, stats.Collisions)
			}
			total.Add(stats)
			x(writer.Write(headDoc))
		}
		in.Close()
		x(out.Close())

		fmt.Printf("Deleted in %s:\n\t%d/%d (%s) spans\n\t%d/%d (%s) clusters\n\n",
			split,
			total.DeletedSpans, total.TotalSpans, percent(total.DeletedSpans, total.TotalSpans),
			total.DeletedClusters, total.TotalClusters, percent(total.DeletedClusters, total.TotalClusters))
	}
	return nil
}

func logCollisions(split string, doc *types.Document, collisions []coref.Collision) {
	for _, collision := range collisions {
		log.Println(split, doc.DocumentID, doc.CasedWords[collision.Head])
		for _, span := range collision.Spans {
			log.Println("\t" + strings.Join(doc.CasedWords[span.Start:span.End], " "))
		}
	}
}

func percent(part, total int) string {
	if total == 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", 100*float64(part)/float64(total))
}

func HeadsCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       ConvertHeads,
		UsageLine: "heads [options]",
		Short:     "reduces jsonlines span clusters to head word clusters",
		Long: `
reduces jsonlines span clusters to head word clusters

	$ ./wlcoref heads [-data-dir d] [-v] [options]

`,
		Flag: *flag.NewFlagSet("heads", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&dataDir, "data-dir", "data", "Directory holding the english_<split>.jsonlines files")
	cmd.Flag.BoolVar(&verbose, "v", false, "Log every head word claimed by more than one span")
	return cmd
}

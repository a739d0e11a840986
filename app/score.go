package app

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vdobrovolskii/wl-coref/eval"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

// ScoreConll runs the reference scorer on the gold and predicted conll files
// of one experiment epoch and prints the per-metric and average F1.
func ScoreConll(cmd *commander.Command, args []string) error {
	if len(args) != 3 {
		cmd.Usage()
		os.Exit(1)
	}
	section, split := args[0], args[1]
	if split != "train" && split != "dev" && split != "test" {
		log.Fatalln("Data split must be one of train, dev, test; got", split)
	}
	epoch, err := strconv.Atoi(args[2])
	if err != nil {
		log.Fatalln("Invalid epoch:", args[2])
	}

	prefix := fmt.Sprintf("%s_%s_e%d", section, split, epoch)
	gold := filepath.Join(logDir, prefix+".gold.conll")
	pred := filepath.Join(logDir, prefix+".pred.conll")
	if !VerifyExists(gold) || !VerifyExists(pred) {
		os.Exit(1)
	}

	results := make([]float64, 0, len(eval.Metrics))
	for _, metric := range eval.Metrics {
		f1, err := eval.Score(scorerPath, metric, gold, pred)
		x(err)
		fmt.Println(metric, f1)
		results = append(results, f1)
	}
	fmt.Println("avg", eval.Average(results))
	return nil
}

func ScoreCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       ScoreConll,
		UsageLine: "score <section> <train|dev|test> <epoch> [options]",
		Short:     "computes the conll score of an experiment epoch",
		Long: `
computes the conll score (average of muc, ceafe and bcub F1) of an experiment epoch

	$ ./wlcoref score <section> <train|dev|test> <epoch> [-log-dir d] [-scorer path] [options]

`,
		Flag: *flag.NewFlagSet("score", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&logDir, "log-dir", "data/conll_logs", "Directory holding the gold and predicted conll files")
	cmd.Flag.StringVar(&scorerPath, "scorer", eval.DEFAULT_SCORER, "Path to the reference scorer script")
	return cmd
}

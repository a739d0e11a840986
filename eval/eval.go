package eval

// Package eval drives the reference coreference scorer and aggregates the
// F1 scores it reports.

import (
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

type Metric string

const (
	MUC   Metric = "muc"
	CEAFE Metric = "ceafe"
	BCUB  Metric = "bcub"
)

// Metrics are the metrics averaged into the CoNLL score
var Metrics = []Metric{MUC, CEAFE, BCUB}

const DEFAULT_SCORER = "reference-coreference-scorers/scorer.pl"

var f1Pattern = regexp.MustCompile(`F1:\s*([0-9.]+)%`)

// Score runs the scorer on a gold and a predicted file and returns the F1
// percentage it reports for the given metric.
func Score(scorer string, metric Metric, gold, pred string) (float64, error) {
	out, err := exec.Command("perl", scorer, string(metric), gold, pred).Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return 0, fmt.Errorf("scorer failed on %s: %v: %s", metric, err, exitErr.Stderr)
		}
		return 0, fmt.Errorf("scorer failed on %s: %v", metric, err)
	}
	return ExtractF1(string(out))
}

// ExtractF1 pulls the F1 percentage out of the scorer's output; the relevant
// figure sits on the second-to-last line.
func ExtractF1(output string) (float64, error) {
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) < 2 {
		return 0, fmt.Errorf("scorer output too short to contain an F1 score")
	}
	match := f1Pattern.FindStringSubmatch(lines[len(lines)-2])
	if match == nil {
		return 0, fmt.Errorf("no F1 score in scorer output line %q", lines[len(lines)-2])
	}
	return strconv.ParseFloat(match[1], 64)
}

func Average(scores []float64) float64 {
	var sum float64
	for _, score := range scores {
		sum += score
	}
	return sum / float64(len(scores))
}

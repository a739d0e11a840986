package eval

import "testing"

const scorerOutput = `version: 8.01 /reference-coreference-scorers/scorer.pl
====== TOTALS =======
Identification of Mentions: Recall: (14175 / 19764) 71.72%	Precision: (14175 / 17411) 81.41%	F1: 76.26%
--------------------------------------------------------------------------
Coreference: Recall: (9867 / 14291) 69.04%	Precision: (9867 / 13112) 75.25%	F1: 72.01%
--------------------------------------------------------------------------
`

func TestExtractF1(t *testing.T) {
	f1, err := ExtractF1(scorerOutput)
	if err != nil {
		t.Fatal(err.Error())
	}
	if f1 != 72.01 {
		t.Error("expected 72.01, got", f1)
	}
}

func TestExtractF1NoScore(t *testing.T) {
	if _, err := ExtractF1("something\nwent wrong\n"); err == nil {
		t.Error("expected an error for output without an F1 score")
	}
}

func TestAverage(t *testing.T) {
	if avg := Average([]float64{70.0, 72.0, 74.0}); avg != 72.0 {
		t.Error("expected 72.0, got", avg)
	}
}

// The answer key pipeline: descriptive stats, normality diagnostics,
// the Spearman matrix, formatted pair strings and hypothesis verdicts.
// Pure function of the dataset, recomputed per request.
package stats

import (
	"errors"

	"DatasetGenerator_StatisticsProject/internal/dataset"
)

// AnswerKey maps statistic keys to their ground-truth values (floats,
// ints and display strings). Complete or absent, never partial.
type AnswerKey map[string]any

var ErrEmptyDataset = errors.New("stats: empty dataset")

// Key prefixes per trait, dataset.Traits order.
var prefixes = []string{"extra", "neuro", "open", "agree", "consc"}

// The 10 unordered pairs in the order the exercise sheet lists them.
var corrPairs = [][2]int{
	{traitNeuroticism, traitExtraversion},
	{traitOpenness, traitExtraversion},
	{traitOpenness, traitNeuroticism},
	{traitAgreeableness, traitExtraversion},
	{traitAgreeableness, traitNeuroticism},
	{traitAgreeableness, traitOpenness},
	{traitConscientiousness, traitExtraversion},
	{traitConscientiousness, traitNeuroticism},
	{traitConscientiousness, traitOpenness},
	{traitConscientiousness, traitAgreeableness},
}

// Analyze turns a dataset into its answer key.
func Analyze(ds dataset.Dataset) (AnswerKey, error) {
	if len(ds) == 0 {
		return nil, ErrEmptyDataset
	}
	cols := ds.Columns()
	key := AnswerKey{}

	// A+B: descriptives and normality per trait.
	for t, prefix := range prefixes {
		d := Describe(cols[t])
		key[prefix+"_m"] = d.Mean
		key[prefix+"_mdn"] = d.Median
		key[prefix+"_sd"] = d.SD
		key[prefix+"_sk"] = d.Skew
		key[prefix+"_kurt"] = d.Kurtosis
		key[prefix+"_min"] = d.Min
		key[prefix+"_max"] = d.Max

		nr := Normality(cols[t])
		key[prefix+"_d"] = nr.D
		key[prefix+"_p"] = nr.P
	}

	// C: method label, keyed off the neuroticism normality check.
	// Diagnostic only. The matrix below is always Spearman regardless.
	if key["neuro_p"].(float64) < 0.05 {
		key["dist_assumption"] = "violated"
		key["corr_method"] = "Spearman's rho"
	} else {
		key["dist_assumption"] = "satisfied"
		key["corr_method"] = "Pearson's r"
	}

	// D: the single correlation computation for the whole key.
	cm, err := SpearmanMatrix(cols)
	if err != nil {
		return nil, err
	}

	// E: formatted pair strings.
	for _, pair := range corrPairs {
		a, b := pair[0], pair[1]
		name := "corr_" + prefixes[a] + "_" + prefixes[b]
		key[name] = FormatR(cm.Rho[a][b], cm.P[a][b])
	}

	// G: hypothesis verdicts, one independent rule each.
	for _, h := range hypotheses {
		r, p := cm.Rho[h.a][h.b], cm.P[h.a][h.b]
		key[h.key+"_strength"] = Strength(r)
		key[h.key+"_direction"] = Direction(r)
		key[h.key+"_verdict"] = h.decide(r, p)
	}

	return key, nil
}

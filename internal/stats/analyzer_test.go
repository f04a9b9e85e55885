package stats

import (
	"reflect"
	"testing"

	"DatasetGenerator_StatisticsProject/internal/dataset"
)

func answerKeyFor(t *testing.T, id string) AnswerKey {
	t.Helper()
	ds, err := dataset.Generate(id, dataset.DefaultN)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	key, err := Analyze(ds)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	return key
}

func TestAnalyzeDeterministic(t *testing.T) {
	first := answerKeyFor(t, "alice")
	second := answerKeyFor(t, "alice")
	if !reflect.DeepEqual(first, second) {
		t.Fatal("answer keys for the same identifier differ")
	}
}

func TestAnalyzeKeyCompleteness(t *testing.T) {
	key := answerKeyFor(t, "bob")

	var want []string
	for _, prefix := range prefixes {
		for _, suffix := range []string{"_m", "_mdn", "_sd", "_sk", "_kurt", "_min", "_max", "_d", "_p"} {
			want = append(want, prefix+suffix)
		}
	}
	want = append(want, "dist_assumption", "corr_method")
	for _, pair := range corrPairs {
		want = append(want, "corr_"+prefixes[pair[0]]+"_"+prefixes[pair[1]])
	}
	for _, h := range hypotheses {
		want = append(want, h.key+"_strength", h.key+"_direction", h.key+"_verdict")
	}

	for _, k := range want {
		if _, ok := key[k]; !ok {
			t.Errorf("answer key is missing %q", k)
		}
	}
	if len(key) != len(want) {
		t.Errorf("answer key has %d entries, want %d", len(key), len(want))
	}
}

func TestAnalyzeDescriptivesPlausible(t *testing.T) {
	key := answerKeyFor(t, "alice")
	for _, prefix := range prefixes {
		m := key[prefix+"_m"].(float64)
		if m < 5 || m > 20 {
			t.Errorf("%s_m = %v outside the score range", prefix, m)
		}
		sd := key[prefix+"_sd"].(float64)
		if sd <= 0 || sd > 10 {
			t.Errorf("%s_sd = %v implausible", prefix, sd)
		}
		min := key[prefix+"_min"].(float64)
		max := key[prefix+"_max"].(float64)
		if min < 5 || max > 20 || min > max {
			t.Errorf("%s min/max = %v/%v outside range", prefix, min, max)
		}
	}
}

func TestAnalyzeMethodLabelFollowsNeuroP(t *testing.T) {
	key := answerKeyFor(t, "alice")
	p := key["neuro_p"].(float64)
	assumption := key["dist_assumption"].(string)
	method := key["corr_method"].(string)

	if p < 0.05 {
		if assumption != "violated" || method != "Spearman's rho" {
			t.Errorf("p = %v but label = %q/%q", p, assumption, method)
		}
	} else {
		if assumption != "satisfied" || method != "Pearson's r" {
			t.Errorf("p = %v but label = %q/%q", p, assumption, method)
		}
	}
}

func TestAnalyzeVerdictVocabulary(t *testing.T) {
	key := answerKeyFor(t, "a1b2c3d4")
	strengths := map[string]bool{"none": true, "weak": true, "moderate": true, "strong": true}
	directions := map[string]bool{"no relation": true, "positive": true, "negative": true}
	verdicts := map[string]bool{verdictConfirmed: true, verdictNotConfirmed: true}

	for _, h := range hypotheses {
		if s := key[h.key+"_strength"].(string); !strengths[s] {
			t.Errorf("%s_strength = %q not in vocabulary", h.key, s)
		}
		if d := key[h.key+"_direction"].(string); !directions[d] {
			t.Errorf("%s_direction = %q not in vocabulary", h.key, d)
		}
		if v := key[h.key+"_verdict"].(string); !verdicts[v] {
			t.Errorf("%s_verdict = %q not in vocabulary", h.key, v)
		}
	}
}

func TestAnalyzeEmptyDataset(t *testing.T) {
	if _, err := Analyze(nil); err == nil {
		t.Fatal("expected error for empty dataset")
	}
}

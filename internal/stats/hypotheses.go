package stats

// Trait column indices, dataset.Traits order.
const (
	traitExtraversion = iota
	traitNeuroticism
	traitOpenness
	traitAgreeableness
	traitConscientiousness
)

const (
	verdictConfirmed    = "confirmed"
	verdictNotConfirmed = "not confirmed"
)

// hypothesis is one of the four fixed exercise hypotheses. Each carries its
// own decision function: the four rules look similar but are not identical
// (H4 gates on effect size before even looking at sign), so they stay
// separate instead of being folded into one parameterized check.
type hypothesis struct {
	key    string
	a, b   int
	decide func(r, p float64) string
}

var hypotheses = []hypothesis{
	{
		// H1: extraversion and neuroticism relate negatively.
		key: "h1", a: traitNeuroticism, b: traitExtraversion,
		decide: func(r, p float64) string {
			if p < 0.05 && r < 0 {
				return verdictConfirmed
			}
			return verdictNotConfirmed
		},
	},
	{
		// H2: extraversion and openness relate positively.
		key: "h2", a: traitOpenness, b: traitExtraversion,
		decide: func(r, p float64) string {
			if p < 0.05 && r > 0 {
				return verdictConfirmed
			}
			return verdictNotConfirmed
		},
	},
	{
		// H3: neuroticism and openness relate negatively.
		key: "h3", a: traitOpenness, b: traitNeuroticism,
		decide: func(r, p float64) string {
			if p < 0.05 && r < 0 {
				return verdictConfirmed
			}
			return verdictNotConfirmed
		},
	},
	{
		// H4: extraversion and agreeableness relate positively, with an
		// explicit non-triviality floor on |r| before sign is considered.
		key: "h4", a: traitAgreeableness, b: traitExtraversion,
		decide: func(r, p float64) string {
			if r < 0.1 && r > -0.1 || p >= 0.05 {
				return verdictNotConfirmed
			}
			if r > 0 {
				return verdictConfirmed
			}
			return verdictNotConfirmed
		},
	},
}

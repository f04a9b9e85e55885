package dataset

// A single synthetic questionnaire result. Scores are Big Five trait sums
// on a 5..20 point scale.
type Record struct {
	Extraversion      int `json:"extraversion"`
	Neuroticism       int `json:"neuroticism"`
	Openness          int `json:"openness"`
	Agreeableness     int `json:"agreeableness"`
	Conscientiousness int `json:"conscientiousness"`
}

// Dataset keeps the records in draw order. Row order matters for export,
// downstream statistics are order-invariant.
type Dataset []Record

// Trait column order used everywhere: correlation matrix rows, CSV/SAV
// columns and the answer key all follow this ordering.
var Traits = []string{
	"Extraversion",
	"Neuroticism",
	"Openness",
	"Agreeableness",
	"Conscientiousness",
}

func (r Record) score(trait int) int {
	switch trait {
	case 0:
		return r.Extraversion
	case 1:
		return r.Neuroticism
	case 2:
		return r.Openness
	case 3:
		return r.Agreeableness
	default:
		return r.Conscientiousness
	}
}

// Column returns one trait column as float64 values, in row order.
func (d Dataset) Column(trait int) []float64 {
	col := make([]float64, len(d))
	for i, rec := range d {
		col[i] = float64(rec.score(trait))
	}
	return col
}

// Columns returns all five trait columns, indexed like Traits.
func (d Dataset) Columns() [][]float64 {
	cols := make([][]float64, len(Traits))
	for t := range Traits {
		cols[t] = d.Column(t)
	}
	return cols
}

// Row returns the record's scores in Traits order.
func (r Record) Row() []int {
	return []int{r.Extraversion, r.Neuroticism, r.Openness, r.Agreeableness, r.Conscientiousness}
}

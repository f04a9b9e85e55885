package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"DatasetGenerator_StatisticsProject/internal/dataset"
)

// WriteCSV serializes the dataset with a semicolon separator. Semicolon
// because the target audience opens these files in spreadsheets configured
// for decimal-comma locales, where ',' cannot delimit fields.
func WriteCSV(w io.Writer, ds dataset.Dataset) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(dataset.Traits); err != nil {
		return err
	}
	row := make([]string, len(dataset.Traits))
	for _, rec := range ds {
		for i, v := range rec.Row() {
			row[i] = strconv.Itoa(v)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

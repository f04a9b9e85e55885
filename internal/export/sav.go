package export

import (
	"encoding/binary"
	"errors"
	"io"
	"strings"
	"time"

	"DatasetGenerator_StatisticsProject/internal/dataset"
)

// Minimal SPSS system file (.sav) writer: uncompressed, numeric variables
// only, which is all this dataset needs. Layout follows the documented
// system file format (header, one variable record per column, dictionary
// terminator, then raw float64 cases, everything little-endian).

var ErrNoRecords = errors.New("export: dataset has no records")

const (
	savMagic      = "$FL2"
	savLayoutCode = 2
	savBias       = 100.0

	// F8.0 display format: width 8, 0 decimals, format type 5 (F).
	savFormatF8 = 5<<16 | 8<<8 | 0
)

// Short uppercase variable names, 8-byte SPSS dictionary limit.
var savNames = []string{"EXTRA", "NEURO", "OPEN", "AGREE", "CONSC"}

// WriteSAV serializes the dataset as an SPSS system file.
func WriteSAV(w io.Writer, ds dataset.Dataset) error {
	if len(ds) == 0 {
		return ErrNoRecords
	}

	now := time.Now()
	if err := writeHeader(w, len(ds), now); err != nil {
		return err
	}
	for _, name := range savNames {
		if err := writeVariable(w, name); err != nil {
			return err
		}
	}
	// dictionary termination record
	if err := writeInt32s(w, 999, 0); err != nil {
		return err
	}

	for _, rec := range ds {
		for _, v := range rec.Row() {
			if err := binary.Write(w, binary.LittleEndian, float64(v)); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeHeader(w io.Writer, ncases int, now time.Time) error {
	if _, err := w.Write([]byte(savMagic)); err != nil {
		return err
	}
	if _, err := w.Write(padded("@(#) SPSS DATA FILE - DatasetGenerator", 60)); err != nil {
		return err
	}
	// layout code, nominal case size, compression off, no weight variable, case count
	if err := writeInt32s(w, savLayoutCode, int32(len(savNames)), 0, 0, int32(ncases)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, float64(savBias)); err != nil {
		return err
	}
	if _, err := w.Write(padded(now.Format("02 Jan 06"), 9)); err != nil {
		return err
	}
	if _, err := w.Write(padded(now.Format("15:04:05"), 8)); err != nil {
		return err
	}
	if _, err := w.Write(padded("Synthetic Big Five questionnaire data", 64)); err != nil {
		return err
	}
	_, err := w.Write(padded("", 3))
	return err
}

func writeVariable(w io.Writer, name string) error {
	// record type 2, numeric, no label, no missing values, print/write F8.0
	if err := writeInt32s(w, 2, 0, 0, 0, savFormatF8, savFormatF8); err != nil {
		return err
	}
	_, err := w.Write(padded(name, 8))
	return err
}

func writeInt32s(w io.Writer, vs ...int32) error {
	for _, v := range vs {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	return nil
}

// padded space-pads (or truncates) s to exactly n bytes.
func padded(s string, n int) []byte {
	if len(s) > n {
		s = s[:n]
	}
	return []byte(s + strings.Repeat(" ", n-len(s)))
}

package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/san-kum/normdist/internal/density"
	"github.com/san-kum/normdist/internal/view"
)

// WriteCSV writes one x,density row per sample.
func WriteCSV(w io.Writer, samples []density.Sample) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"x", "density"}); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	for _, s := range samples {
		row := []string{
			strconv.FormatFloat(s.X, 'f', 6, 64),
			strconv.FormatFloat(s.Y, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrap(err, "write csv row")
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "flush csv")
}

// WriteJSON writes the whole frame as indented JSON.
func WriteJSON(w io.Writer, f *view.Frame) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(f), "encode frame")
}

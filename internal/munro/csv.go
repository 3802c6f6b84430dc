package munro

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"munrodist/internal/geo"
)

// Fixed columns of the source CSV. The classification column is
// year-labeled ("2021") and therefore configured by the caller.
const (
	colName     = "Name"
	colHeightM  = "Height_m"
	colHeightFt = "Height_ft"
	colX        = "xcoord"
	colY        = "ycoord"
)

// decoderFor maps an encoding hint to a text decoder. The upstream file is
// not valid UTF-8, which is why latin-1 is the default.
func decoderFor(hint string) (*encoding.Decoder, error) {
	switch strings.ToLower(strings.TrimSpace(hint)) {
	case "", "latin1", "latin-1", "iso-8859-1":
		return charmap.ISO8859_1.NewDecoder(), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder(), nil
	case "utf-8", "utf8":
		return encoding.Nop.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("unsupported encoding hint %q", hint)
	}
}

// LoadCSV reads the dataset file at path into typed peak records. See
// DecodeCSV for the schema contract.
func LoadCSV(path, encodingHint, classColumn string) ([]Peak, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &RetrievalError{URL: path, Err: err}
	}
	defer f.Close()
	return DecodeCSV(f, encodingHint, classColumn)
}

// DecodeCSV parses the dataset into peak records. The schema is validated
// once against the header and every numeric cell is parsed eagerly: a
// missing column or an unparsable height/coordinate fails the whole load
// with a SchemaError rather than producing a partial table.
func DecodeCSV(r io.Reader, encodingHint, classColumn string) ([]Peak, error) {
	dec, err := decoderFor(encodingHint)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(classColumn) == "" {
		return nil, &SchemaError{Err: errors.New("classification column not set")}
	}

	cr := csv.NewReader(transform.NewReader(r, dec))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, &SchemaError{Err: fmt.Errorf("read header: %w", err)}
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	for _, c := range []string{colName, colHeightM, colHeightFt, classColumn, colX, colY} {
		if _, ok := idx[c]; !ok {
			return nil, &SchemaError{Column: c, Err: errors.New("column missing")}
		}
	}

	var peaks []Peak
	row := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		row++
		if err != nil {
			return nil, &SchemaError{Row: row, Err: err}
		}
		cell := func(col string) string {
			if i := idx[col]; i < len(rec) {
				return strings.TrimSpace(rec[i])
			}
			return ""
		}
		num := func(col string) (float64, error) {
			v, err := strconv.ParseFloat(cell(col), 64)
			if err != nil {
				return 0, &SchemaError{Column: col, Row: row, Err: err}
			}
			return v, nil
		}

		hm, err := num(colHeightM)
		if err != nil {
			return nil, err
		}
		hft, err := num(colHeightFt)
		if err != nil {
			return nil, err
		}
		x, err := num(colX)
		if err != nil {
			return nil, err
		}
		y, err := num(colY)
		if err != nil {
			return nil, err
		}

		peaks = append(peaks, Peak{
			Name:           cell(colName),
			HeightM:        hm,
			HeightFt:       hft,
			Classification: cell(classColumn),
			Point:          geo.Point{X: x, Y: y},
		})
	}
	return peaks, nil
}

// Package tourism answers "which tourist spots match these criteria" from a
// read-only delimited dataset. There is no index and no cache: every lookup
// re-reads the file and scans it.
package tourism

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/pkordes/trip-planner/internal/domain"
)

// Source loads the whole dataset, already projected to the exposed fields,
// in file order.
type Source interface {
	Load(ctx context.Context) ([]domain.TourismRecord, error)
}

// CSVSource reads a header-first CSV file in a legacy or UTF-8 encoding.
type CSVSource struct {
	path string
	enc  encoding.Encoding
}

// NewCSVSource returns a source for path. charset is any WHATWG encoding
// label ("euc-kr", "cp949", "utf-8", ...).
func NewCSVSource(path, charset string) (*CSVSource, error) {
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("tourism.NewCSVSource: charset %q: %w", charset, err)
	}
	return &CSVSource{path: path, enc: enc}, nil
}

// Load opens the file, decodes it, and maps the region, spot, and description
// columns by header name. Other columns are ignored.
func (s *CSVSource) Load(ctx context.Context) ([]domain.TourismRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("tourism.CSVSource.Load: %w", err)
	}
	defer f.Close()

	records, err := parse(transform.NewReader(f, s.enc.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("tourism.CSVSource.Load: %s: %w", s.path, err)
	}
	return records, nil
}

func parse(r io.Reader) ([]domain.TourismRecord, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty file: missing header row")
		}
		return nil, err
	}

	region, spot, desc, err := columnIndexes(header)
	if err != nil {
		return nil, err
	}

	var out []domain.TourismRecord
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, domain.TourismRecord{
			Region:      row[region],
			Spot:        row[spot],
			Description: row[desc],
		})
	}
	return out, nil
}

// columnIndexes locates the three required columns. A UTF-8 byte order mark
// on the first header cell is tolerated.
func columnIndexes(header []string) (region, spot, desc int, err error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}

	var missing []string
	lookup := func(name string) int {
		i, ok := idx[name]
		if !ok {
			missing = append(missing, name)
		}
		return i
	}
	region = lookup(domain.ColumnRegion)
	spot = lookup(domain.ColumnSpot)
	desc = lookup(domain.ColumnDescription)

	if len(missing) > 0 {
		return 0, 0, 0, fmt.Errorf("missing column(s): %s", strings.Join(missing, ", "))
	}
	return region, spot, desc, nil
}

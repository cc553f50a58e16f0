package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"karamove/internal/services"
	"karamove/internal/textutil"
)

const component = "roster"

// Load opens path and decodes every roster row. The whole file is rejected on
// the first malformed row.
func Load(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, services.Wrap(services.ErrIO, component, "open", path, err)
	}
	defer file.Close()

	records, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return records, nil
}

// Decode reads a roster export from r, preserving row order.
func Decode(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(textutil.NewUTF8Reader(r))
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, services.Wrap(services.ErrParse, component, "read header", "empty file", nil)
		}
		return nil, services.Wrap(services.ErrParse, component, "read header", "", err)
	}
	index, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	var records []Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, services.Wrap(services.ErrParse, component, "read row", "", err)
			}
			return nil, services.Wrap(services.ErrIO, component, "read row", "", err)
		}
		line, _ := reader.FieldPos(0)
		record, err := decodeRow(index, row)
		if err != nil {
			return nil, services.Wrap(services.ErrParse, component, "decode", fmt.Sprintf("line %d", line), err)
		}
		records = append(records, record)
	}
	return records, nil
}

type columnIndex map[string]int

func indexColumns(header []string) (columnIndex, error) {
	index := make(columnIndex, len(header))
	for i, label := range header {
		label = textutil.NormalizeLabel(label)
		if _, dup := index[label]; dup {
			continue
		}
		index[label] = i
	}
	var missing []string
	for _, column := range Columns {
		if _, ok := index[column]; !ok {
			missing = append(missing, strconv.Quote(column))
		}
	}
	if len(missing) > 0 {
		return nil, services.Wrap(services.ErrParse, component, "read header",
			"missing columns "+strings.Join(missing, ", "), nil)
	}
	return index, nil
}

func decodeRow(index columnIndex, row []string) (Record, error) {
	field := func(column string) string {
		return row[index[column]]
	}
	trimmed := func(column string) string {
		return strings.TrimSpace(field(column))
	}

	for _, column := range Columns {
		if !utf8.ValidString(field(column)) {
			return Record{}, columnError(column, errors.New("invalid UTF-8"))
		}
	}

	position, err := parseCount(field(ColumnGroupPosition))
	if err != nil {
		return Record{}, columnError(ColumnGroupPosition, err)
	}
	if position == 0 {
		return Record{}, columnError(ColumnGroupPosition, errors.New("group position must be at least 1"))
	}
	location, err := ParseLocation(field(ColumnGroupLocation))
	if err != nil {
		return Record{}, columnError(ColumnGroupLocation, err)
	}
	level, err := parseCount(field(ColumnLevel))
	if err != nil {
		return Record{}, columnError(ColumnLevel, err)
	}

	return Record{
		GroupPosition:       position,
		GroupName:           trimmed(ColumnGroupName),
		GroupLocation:       location,
		GroupLink:           trimmed(ColumnGroupLink),
		FirstName:           trimmed(ColumnFirstName),
		LastName:            trimmed(ColumnLastName),
		DiscordName:         trimmed(ColumnDiscordName),
		Profile:             trimmed(ColumnProfile),
		Level:               level,
		PreferredTechniques: ParseTechniques(field(ColumnPreferredTechniques)),
		KnownTechniques:     ParseTechniques(field(ColumnKnownTechniques)),
	}, nil
}

func parseCount(value string) (int, error) {
	parsed, err := strconv.ParseUint(strings.TrimSpace(value), 10, 31)
	if err != nil {
		return 0, fmt.Errorf("invalid non-negative integer %q", value)
	}
	return int(parsed), nil
}

func columnError(column string, err error) error {
	return fmt.Errorf("column %q: %w", column, err)
}

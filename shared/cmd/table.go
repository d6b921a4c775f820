package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v2"
)

// Table list format.
const (
	TableFormatCSV     = "csv"
	TableFormatJSON    = "json"
	TableFormatTable   = "table"
	TableFormatYAML    = "yaml"
	TableFormatCompact = "compact"
)

// TableFormats lists the formats accepted by RenderTable.
var TableFormats = []string{TableFormatCSV, TableFormatJSON, TableFormatTable, TableFormatYAML, TableFormatCompact}

// Column represents a single column in a table.
type Column struct {
	Header string

	// DataFunc is a method to retrieve data for this column. The argument to this function will be an element of the
	// data slice that is being rendered.
	DataFunc func(any) (string, error)
}

// RenderTable renders tabular data in various formats.
// The format may carry options after a comma: "csv,header" prints the header row, "table,noheader" and
// "compact,noheader" drop it.
func RenderTable(w io.Writer, format string, header []string, data [][]string, raw any) error {
	fields := strings.SplitN(format, ",", 2)
	format = fields[0]

	var options []string
	if len(fields) == 2 {
		options = strings.Split(fields[1], ",")
	}

	switch format {
	case TableFormatTable:
		if slices.Contains(options, "noheader") {
			header = nil
		}

		table := getBaseTable(w, header, data)
		table.SetRowLine(true)
		table.Render()
	case TableFormatCompact:
		if slices.Contains(options, "noheader") {
			header = nil
		}

		table := getBaseTable(w, header, data)
		table.SetColumnSeparator("")
		table.SetHeaderLine(false)
		table.SetBorder(false)
		table.Render()
	case TableFormatCSV:
		csvWriter := csv.NewWriter(w)
		if slices.Contains(options, "header") {
			err := csvWriter.Write(header)
			if err != nil {
				return err
			}
		}

		err := csvWriter.WriteAll(data)
		if err != nil {
			return err
		}

		csvWriter.Flush()
		err = csvWriter.Error()
		if err != nil {
			return err
		}
	case TableFormatJSON:
		enc := json.NewEncoder(w)

		err := enc.Encode(raw)
		if err != nil {
			return err
		}
	case TableFormatYAML:
		out, err := yaml.Marshal(raw)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(w, "%s", out)
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("Invalid format %q", format)
	}

	return nil
}

func getBaseTable(w io.Writer, header []string, data [][]string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader(header)
	table.AppendBulk(data)
	return table
}

// RenderSlice renders the "data" argument, which must be a slice, into a table or as json/yaml as defined by the
// "format" argument. The "displayColumns" argument is a string containing the shorthand for each column to display,
// in order. The "sortColumns" argument lists the columns to sort the rows by, in order of precedence. The
// "columnMap" argument maps the column shorthand to its header and a function to extract the cell value.
func RenderSlice(w io.Writer, data any, format string, displayColumns string, sortColumns string, columnMap map[rune]Column) error {
	fields := strings.SplitN(format, ",", 2)
	switch fields[0] {
	case TableFormatCSV, TableFormatTable, TableFormatCompact:
	case TableFormatJSON, TableFormatYAML:
		return RenderTable(w, format, nil, nil, data)
	default:
		return fmt.Errorf("Invalid format %q", fields[0])
	}

	s := reflect.ValueOf(data)
	if s.Kind() != reflect.Slice {
		return fmt.Errorf("Cannot render table: %w", fmt.Errorf("Provided argument is not a slice"))
	}

	header := make([]string, 0, len(displayColumns))
	for _, r := range displayColumns {
		column, ok := columnMap[r]
		if !ok {
			return fmt.Errorf("Invalid column %q", string(r))
		}

		header = append(header, column.Header)
	}

	rows := make([][]string, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		row := make([]string, 0, len(displayColumns))
		for _, r := range displayColumns {
			cell, err := columnMap[r].DataFunc(s.Index(i).Interface())
			if err != nil {
				return err
			}

			row = append(row, cell)
		}

		rows = append(rows, row)
	}

	err := SortByPrecedence(rows, displayColumns, sortColumns)
	if err != nil {
		return err
	}

	return RenderTable(w, format, header, rows, data)
}

package cmd

import (
	"bytes"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/suite"
)

type tableSuite struct {
	suite.Suite
}

func TestTableSuite(t *testing.T) {
	suite.Run(t, new(tableSuite))
}

type testInstance struct {
	Name      string `json:"name" yaml:"name"`
	Processes int    `json:"processes" yaml:"processes"`
	Address   string `json:"address" yaml:"address"`
}

var testInstanceColumns = map[rune]Column{
	'n': {
		Header: "Name",
		DataFunc: func(a any) (string, error) {
			return a.(testInstance).Name, nil
		},
	},
	'p': {
		Header: "Processes",
		DataFunc: func(a any) (string, error) {
			return strconv.Itoa(a.(testInstance).Processes), nil
		},
	},
	'a': {
		Header: "Address",
		DataFunc: func(a any) (string, error) {
			return a.(testInstance).Address, nil
		},
	},
}

var testInstances = []testInstance{
	{Name: "web", Processes: 12, Address: "local:web"},
	{Name: "db", Processes: 3, Address: "lxd01:db"},
	{Name: "cache", Processes: 40, Address: "lxd01:cache"},
	{Name: "app", Processes: 7, Address: "local:app"},
}

func (s *tableSuite) TestRenderSlice() {
	type args struct {
		data           any
		format         string
		displayColumns string
		sortColumns    string
	}

	tests := []struct {
		name      string
		args      args
		expect    string
		expectErr error
	}{
		{
			name: "Incorrect data type (must be slice)",
			args: args{
				data:   testInstances[0],
				format: TableFormatCSV,
			},
			expect:    "",
			expectErr: fmt.Errorf("Cannot render table: %w", fmt.Errorf("Provided argument is not a slice")),
		},
		{
			name: "Invalid format",
			args: args{
				data:   testInstances,
				format: "not a table format",
			},
			expect:    "",
			expectErr: fmt.Errorf("Invalid format \"not a table format\""),
		},
		{
			name: "Unknown display column",
			args: args{
				data:           testInstances,
				format:         TableFormatCSV,
				displayColumns: "nx",
			},
			expect:    "",
			expectErr: fmt.Errorf("Invalid column \"x\""),
		},
		{
			name: "csv, display all, sort by address then name",
			args: args{
				data:           testInstances,
				format:         TableFormatCSV,
				displayColumns: "npa",
				sortColumns:    "an",
			},
			expect: `app,7,local:app
web,12,local:web
cache,40,lxd01:cache
db,3,lxd01:db
`,
		},
		{
			name: "csv with header",
			args: args{
				data:           testInstances[:1],
				format:         "csv,header",
				displayColumns: "na",
			},
			expect: `Name,Address
web,local:web
`,
		},
		{
			name: "compact, display name+processes, natural sort by processes",
			args: args{
				data:           testInstances,
				format:         TableFormatCompact,
				displayColumns: "np",
				sortColumns:    "p",
			},
			expect: `  NAME   PROCESSES  
  db     3          
  app    7          
  web    12         
  cache  40         
`,
		},
		{
			name: "table, display all, do not sort",
			args: args{
				data:           testInstances,
				format:         TableFormatTable,
				displayColumns: "npa",
			},
			expect: `+-------+-----------+-------------+
| NAME  | PROCESSES |   ADDRESS   |
+-------+-----------+-------------+
| web   | 12        | local:web   |
+-------+-----------+-------------+
| db    | 3         | lxd01:db    |
+-------+-----------+-------------+
| cache | 40        | lxd01:cache |
+-------+-----------+-------------+
| app   | 7         | local:app   |
+-------+-----------+-------------+
`,
		},
		{
			name: "json ignores columns",
			args: args{
				data:           testInstances[:2],
				format:         TableFormatJSON,
				displayColumns: "n",
			},
			expect: `[{"name":"web","processes":12,"address":"local:web"},{"name":"db","processes":3,"address":"lxd01:db"}]
`,
		},
		{
			name: "yaml",
			args: args{
				data:   testInstances[1:2],
				format: TableFormatYAML,
			},
			expect: `- name: db
  processes: 3
  address: lxd01:db
`,
		},
	}

	for i, test := range tests {
		s.T().Logf("Test %d: %s", i, test.name)

		buffer := bytes.NewBuffer(nil)
		err := RenderSlice(buffer, test.args.data, test.args.format, test.args.displayColumns, test.args.sortColumns, testInstanceColumns)
		s.Equal(test.expectErr, err)
		s.Equal(test.expect, buffer.String())
	}
}

func (s *tableSuite) TestRenderTableNoHeader() {
	buffer := bytes.NewBuffer(nil)
	err := RenderTable(buffer, "compact,noheader", []string{"Name"}, [][]string{{"c1"}}, nil)
	s.Require().NoError(err)
	s.NotContains(buffer.String(), "NAME")
	s.Contains(buffer.String(), "c1")
}

func (s *tableSuite) TestFormatSection() {
	s.Equal("Examples:\n  lxd-driver run container start\n\n", FormatSection("Examples", "lxd-driver run container start"))
	s.Equal("  a\n\n  b", FormatSection("", "a\n\nb"))
}

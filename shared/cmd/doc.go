/*
Package cmd holds the helpers shared by the command line tools: help text
formatting, and rendering of rows as csv, json, yaml or a table.
*/

package cmd

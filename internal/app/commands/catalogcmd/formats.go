package catalogcmd

import (
	"errors"
	"strings"
)

type OutputFormat string

const (
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatTable OutputFormat = "table"
)

var ListOutputFormats = []string{string(OutputFormatJSON), string(OutputFormatTable)}

// String is used both by fmt.Print and by Cobra in help text
func (e *OutputFormat) String() string {
	return string(*e)
}

// Set must have pointer receiver so it doesn't change the value of a copy
func (e *OutputFormat) Set(v string) error {
	switch v {
	case string(OutputFormatJSON), string(OutputFormatTable):
		*e = OutputFormat(v)
		return nil
	default:
		return errors.New(`must be one of ` + strings.Join(ListOutputFormats, ","))
	}
}

// Type is only used in help text
func (e *OutputFormat) Type() string {
	return "outputFormat"
}

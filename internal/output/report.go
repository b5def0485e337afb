package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/overpayment-simulator/internal/domain"
)

// unsupportedFormat enriches ErrUnsupportedFormat with available formatters and aliases.
func unsupportedFormat(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// Render writes a report in the given format to w.
func Render(w io.Writer, results *domain.StrategyComparison, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return unsupportedFormat(format)
	}
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("%s formatter failed: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// GenerateReport writes a report file in dir and returns the file names.
// The format "all" writes the verbose console text, detailed CSV and HTML reports.
func GenerateReport(results *domain.StrategyComparison, format, dir string) ([]string, error) {
	if strings.EqualFold(strings.TrimSpace(format), "all") {
		var files []string
		for _, name := range []string{"console", "detailed-csv", "html"} {
			f := GetFormatterByName(name)
			file, err := WriteFormatted(f, results, dir, ExtensionFor(name))
			if err != nil {
				return files, err
			}
			files = append(files, file)
		}
		return files, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupportedFormat(format)
	}
	file, err := WriteFormatted(f, results, dir, ExtensionFor(f.Name()))
	if err != nil {
		return nil, err
	}
	return []string{file}, nil
}

package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"boqclean/services"
)

// OutputPath returns <dir>/<base name of source>_cleaned.<format>.
func OutputPath(dir, source, format string) string {
	base := filepath.Base(source)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + "_cleaned." + strings.ToLower(format)
	return filepath.Join(dir, name)
}

// RenderTable encodes data in the requested format: csv, xlsx or pdf.
func RenderTable(data services.ExportData, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "csv":
		return services.GenerateCSV(data)
	case "xlsx":
		return services.GenerateExcel(data)
	case "pdf":
		return services.GeneratePDF(data)
	}
	return nil, fmt.Errorf("unsupported output format %q", format)
}

// SaveTable writes data to path, creating the folder if needed.
func SaveTable(data services.ExportData, path, format string) error {
	content, err := RenderTable(data, format)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output folder: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

package services

// Options groups the tunables of every pipeline stage.
type Options struct {
	Header HeaderOptions
	Clean  CleanOptions
}

// DefaultOptions returns the standard pipeline settings.
func DefaultOptions() Options {
	return Options{
		Header: DefaultHeaderOptions(),
		Clean:  DefaultCleanOptions(),
	}
}

// Result carries the table after each stage that follows header selection.
type Result struct {
	Cleaned  Table // after Clean, heading rows still present
	Sections Table // after BuildSections
	Trim     TrimResult
}

// Final returns the finished table.
func (r Result) Final() Table {
	return r.Trim.Table
}

// Process runs cleaning, section reconstruction and tail trimming for an
// already confirmed header row and column mapping.
func Process(g Grid, header int, selected []Column, mapping FieldMapping, opts Options) (Result, error) {
	cleaned, err := Clean(g, header, selected, mapping, opts.Clean)
	if err != nil {
		return Result{}, err
	}
	sections := BuildSections(cleaned)
	return Result{
		Cleaned:  cleaned,
		Sections: sections,
		Trim:     TrimTail(sections),
	}, nil
}

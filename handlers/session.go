package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"boqclean/config"
	"boqclean/logging"
	"boqclean/services"
)

// Answers pre-answers prompts so a run can be scripted. Zero values leave
// the matching prompt interactive.
type Answers struct {
	Sheet     string
	HeaderRow int    // 1-based; skips header detection
	Columns   string // e.g. "2,3,4,6"
	Mapping   string // e.g. "Description=1,Quantity=2,Rate=3,UOM=4"
	Yes       bool   // confirm the first header candidate and save
}

// Session walks one workbook through the interactive cleaning steps.
type Session struct {
	Config  *config.Config
	Answers Answers
	Prompt  *Prompter
	Now     func() time.Time
}

// Outcome is what a finished session produced.
type Outcome struct {
	Sheet  string
	Header int
	Result services.Result
	Saved  string // output path, empty when not saved
}

// NewSession returns a session reading answers from in and writing the
// transcript to out.
func NewSession(cfg *config.Config, answers Answers, in io.Reader, out io.Writer) *Session {
	return &Session{
		Config:  cfg,
		Answers: answers,
		Prompt:  NewPrompter(in, out),
		Now:     time.Now,
	}
}

// Run processes the workbook at path. A header that is not found or not
// confirmed ends the run with services.ErrHeaderNotFound.
func (s *Session) Run(path string) (*Outcome, error) {
	p := s.Prompt
	log := logging.ForRun(path)

	p.Println("Starting the Interactive BOQ Cleaner.")
	p.Println("Processing file:", path)

	wb, err := services.OpenWorkbook(path)
	if err != nil {
		log.Error("read workbook failed", "error", err)
		return nil, fmt.Errorf("read workbook: %w", err)
	}

	sheet, err := s.sheet(wb)
	if err != nil {
		return nil, err
	}
	grid, _ := wb.Grid(sheet)
	log = log.With("sheet", sheet)
	log.Debug("sheet loaded", "rows", len(grid))

	opts := s.Config.PipelineOptions()
	header, err := s.header(grid, opts.Header)
	if err != nil {
		log.Warn("header not located", "error", err)
		return nil, err
	}
	log.Info("header confirmed", "row", header+1)

	headers := services.HeaderColumns(grid, header)
	if len(headers) == 0 {
		return nil, fmt.Errorf("header row %d has no labels", header+1)
	}
	selected, err := SelectColumns(p, headers, s.Answers.Columns)
	if err != nil {
		return nil, err
	}
	mapping, err := MapFields(p, selected, s.Answers.Mapping)
	if err != nil {
		return nil, err
	}

	result, err := s.process(log, grid, header, selected, mapping, opts)
	if err != nil {
		return nil, err
	}
	out := &Outcome{Sheet: sheet, Header: header, Result: result}

	final := result.Final()
	currency := services.Currency(s.Config.Output.Currency)
	p.Println()
	p.Success("--- Processing Complete! ---")
	p.Println("Here is a preview of your final cleaned BOQ data:")
	PrintPreview(p, final, PreviewRows)
	summary := services.Summarize(final)
	PrintSummary(p, summary, currency)

	save := s.Answers.Yes
	if !save {
		save, err = p.AskYesNo(fmt.Sprintf("\nDo you want to save this to a %s file?", s.Config.Output.Format))
		if err != nil {
			return out, fmt.Errorf("save: %w", err)
		}
	}
	if !save {
		return out, nil
	}

	target := OutputPath(s.Config.Output.Dir, path, s.Config.Output.Format)
	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	data := services.NewExportData(final, title, filepath.Base(path), sheet, s.Now().Format("2006-01-02"), currency)
	if err := SaveTable(data, target, s.Config.Output.Format); err != nil {
		log.Error("save failed", "path", target, "error", err)
		return out, err
	}
	out.Saved = target
	log.Info("cleaned BOQ saved", "path", target, "rows", len(final.Rows))
	p.Success("File saved successfully to: %s", target)
	return out, nil
}

func (s *Session) sheet(wb *services.Workbook) (string, error) {
	if name := s.Answers.Sheet; name != "" {
		if !wb.HasSheet(name) {
			return "", fmt.Errorf("sheet %q not found in workbook", name)
		}
		return name, nil
	}
	if len(wb.Sheets) == 1 {
		s.Prompt.Step(1, "Select a Sheet")
		s.Prompt.Println("Using the only sheet:", wb.Sheets[0])
		return wb.Sheets[0], nil
	}
	return SelectSheet(s.Prompt, wb.Sheets)
}

func (s *Session) header(g services.Grid, opts services.HeaderOptions) (int, error) {
	if row := s.Answers.HeaderRow; row > 0 {
		if row > len(g) {
			return -1, fmt.Errorf("header row %d outside sheet with %d rows", row, len(g))
		}
		return row - 1, nil
	}
	return LocateHeader(s.Prompt, g, opts, s.Answers.Yes)
}

// process runs the cleaning stages, reporting each as a step.
func (s *Session) process(log *slog.Logger, g services.Grid, header int, selected []services.Column, mapping services.FieldMapping, opts services.Options) (services.Result, error) {
	p := s.Prompt

	p.Step(5, "Cleaning Data")
	cleaned, err := services.Clean(g, header, selected, mapping, opts.Clean)
	if err != nil {
		return services.Result{}, fmt.Errorf("clean: %w", err)
	}
	p.Println("Initial data cleaning complete.")
	log.Debug("rows cleaned", "in", len(g)-header-1, "out", len(cleaned.Rows))

	p.Step(6, "Creating Sections")
	sections := services.BuildSections(cleaned)
	p.Println("Sections created and heading rows removed.")
	log.Debug("sections built", "headings", len(cleaned.Rows)-len(sections.Rows), "items", len(sections.Rows))

	p.Step(7, "Finding BOQ End")
	trim := services.TrimTail(sections)
	switch {
	case errors.Is(trim.Warning, services.ErrUOMUnmapped):
		p.Warn("UOM column not mapped. Cannot determine a specific end point.")
		log.Warn("tail not trimmed", "reason", trim.Warning)
	case errors.Is(trim.Warning, services.ErrNoUOMRows):
		p.Warn("Could not find any rows with a UOM value.")
		log.Warn("tail not trimmed", "reason", trim.Warning)
	default:
		last := trim.Table.Rows[trim.LastItem]
		p.Printf("BOQ trimmed. The last item with a UOM is on sheet row %d.\n", last.SourceRow+1)
		log.Debug("tail trimmed", "dropped", trim.Dropped)
	}

	return services.Result{Cleaned: cleaned, Sections: sections, Trim: trim}, nil
}

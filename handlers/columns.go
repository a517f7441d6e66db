package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"boqclean/services"
)

// ParseSelection parses a comma-separated list of 1-based positions into
// 0-based offsets, checking each against n choices.
func ParseSelection(input string, n int) ([]int, error) {
	parts := strings.Split(input, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		pos, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", strings.TrimSpace(part))
		}
		if pos < 1 || pos > n {
			return nil, fmt.Errorf("%d is not between 1 and %d", pos, n)
		}
		out = append(out, pos-1)
	}
	return out, nil
}

// printChoices lists columns numbered from 1.
func printChoices(p *Prompter, cols []services.Column) {
	for i, c := range cols {
		p.Printf("  %d: %s\n", i+1, c.Label)
	}
}

// SelectColumns lets the user pick, in order, which header columns to keep.
// A non-empty preset answers the prompt.
func SelectColumns(p *Prompter, headers []services.Column, preset string) ([]services.Column, error) {
	p.Step(3, "Select Columns")
	printChoices(p, headers)

	for {
		answer := preset
		if answer == "" {
			var err error
			answer, err = p.Ask("Which columns should be used (e.g., 2,3,4,6)? ")
			if err != nil {
				return nil, fmt.Errorf("select columns: %w", err)
			}
		}
		picks, err := ParseSelection(answer, len(headers))
		if err != nil {
			if preset != "" {
				return nil, fmt.Errorf("select columns %q: %w", preset, err)
			}
			p.Println("Invalid input. Please enter numbers from the list.")
			continue
		}

		selected := make([]services.Column, len(picks))
		labels := make([]string, len(picks))
		for i, idx := range picks {
			selected[i] = headers[idx]
			labels[i] = headers[idx].Label
		}
		p.Println("You selected:", "["+strings.Join(labels, ", ")+"]")
		return selected, nil
	}
}

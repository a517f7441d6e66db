package handlers

import (
	"fmt"
	"strings"
)

// SelectSheet asks for a sheet name until one of names is given.
func SelectSheet(p *Prompter, names []string) (string, error) {
	p.Step(1, "Select a Sheet")
	p.Println("Available sheets:", strings.Join(names, ", "))

	for {
		answer, err := p.Ask("Which sheet do you want to process? ")
		if err != nil {
			return "", fmt.Errorf("select sheet: %w", err)
		}
		for _, n := range names {
			if answer == n {
				return n, nil
			}
		}
		p.Error("'%s' is not a valid sheet name.", answer)
	}
}

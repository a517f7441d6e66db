package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"boqclean/services"
)

// ParseMapping parses "Field=position" pairs, positions being 1-based
// offsets into the selected columns, e.g. "Description=2,Quantity=3,Rate=4".
func ParseMapping(pairs string, selected []services.Column) (services.FieldMapping, error) {
	known := make(map[string]services.Field)
	for _, f := range services.MappingFields(true) {
		known[strings.ToLower(string(f))] = f
	}

	mapping := make(services.FieldMapping)
	for _, pair := range strings.Split(pairs, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("mapping %q: want Field=number", pair)
		}
		field, ok := known[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("mapping %q: unknown field %q", pair, strings.TrimSpace(name))
		}
		pos, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || pos < 1 || pos > len(selected) {
			return nil, fmt.Errorf("mapping %q: position must be between 1 and %d", pair, len(selected))
		}
		mapping[field] = selected[pos-1].Index
	}

	if err := services.ValidateMapping(mapping, selected); err != nil {
		return nil, err
	}
	return mapping, nil
}

// MapFields binds each BOQ field to one of the selected columns. A
// non-empty preset answers every question.
func MapFields(p *Prompter, selected []services.Column, preset string) (services.FieldMapping, error) {
	p.Step(4, "Map Fields")

	if preset != "" {
		mapping, err := ParseMapping(preset, selected)
		if err != nil {
			return nil, fmt.Errorf("map fields: %w", err)
		}
		printMapping(p, mapping, selected)
		return mapping, nil
	}

	withName, err := p.AskYesNo("Does your BOQ have separate 'Name' and 'Description' columns?")
	if err != nil {
		return nil, fmt.Errorf("map fields: %w", err)
	}

	mapping := make(services.FieldMapping)
	for _, field := range services.MappingFields(withName) {
		idx, skipped, err := askField(p, field, selected)
		if err != nil {
			return nil, fmt.Errorf("map fields: %w", err)
		}
		if !skipped {
			mapping[field] = idx
		}
	}

	if err := services.ValidateMapping(mapping, selected); err != nil {
		return nil, fmt.Errorf("map fields: %w", err)
	}
	printMapping(p, mapping, selected)
	return mapping, nil
}

// askField asks for the column of one field until a valid number is given.
// Optional fields other than Name (asked only when the user said it exists)
// may be skipped with an empty answer.
func askField(p *Prompter, field services.Field, selected []services.Column) (int, bool, error) {
	p.Printf("\nWhich column represents '%s'?\n", field)
	printChoices(p, selected)

	skippable := field.Optional() && field != services.FieldName
	question := fmt.Sprintf("Select number for '%s': ", field)
	if skippable {
		question = fmt.Sprintf("Select number for '%s' (Enter to skip): ", field)
	}

	for {
		answer, err := p.Ask(question)
		if err != nil {
			return 0, false, err
		}
		if answer == "" && skippable {
			return 0, true, nil
		}
		n, err := strconv.Atoi(answer)
		if err != nil {
			p.Println("Please enter a valid number.")
			continue
		}
		if n < 1 || n > len(selected) {
			p.Println("Invalid number.")
			continue
		}
		return selected[n-1].Index, false, nil
	}
}

func printMapping(p *Prompter, mapping services.FieldMapping, selected []services.Column) {
	parts := make([]string, 0, len(mapping))
	for _, f := range services.MappingFields(true) {
		idx, ok := mapping[f]
		if !ok {
			continue
		}
		label := fmt.Sprintf("column %d", idx+1)
		for _, c := range selected {
			if c.Index == idx {
				label = c.Label
				break
			}
		}
		parts = append(parts, fmt.Sprintf("%s: %s", f, label))
	}
	p.Println("\nFinal Mapping: {" + strings.Join(parts, ", ") + "}")
}

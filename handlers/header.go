package handlers

import (
	"fmt"
	"strings"

	"boqclean/services"
)

// HeaderPrompt asks the user to confirm header candidates. With AutoConfirm
// the first candidate is accepted without asking.
type HeaderPrompt struct {
	P           *Prompter
	AutoConfirm bool
}

// ConfirmHeader implements services.HeaderConfirmer.
func (h HeaderPrompt) ConfirmHeader(row int, values []string) (bool, error) {
	h.P.Printf("\nPotential header found on row %d:\n", row+1)
	h.P.Println("[" + strings.Join(values, ", ") + "]")
	if h.AutoConfirm {
		h.P.Println("Header confirmed.")
		return true, nil
	}
	ok, err := h.P.AskYesNo("Is this the first row of the BOQ?")
	if err != nil {
		return false, err
	}
	if ok {
		h.P.Println("Header confirmed.")
	}
	return ok, nil
}

// LocateHeader runs header detection with interactive confirmation.
func LocateHeader(p *Prompter, g services.Grid, opts services.HeaderOptions, autoConfirm bool) (int, error) {
	p.Step(2, "Locating Header Row")
	idx, err := services.LocateHeader(g, HeaderPrompt{P: p, AutoConfirm: autoConfirm}, opts)
	if err != nil {
		p.Println("Could not automatically find a header row.")
		return -1, fmt.Errorf("locate header: %w", err)
	}
	return idx, nil
}

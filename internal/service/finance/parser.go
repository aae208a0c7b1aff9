package finance

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/domain"
)

// Add-on services arrive embedded in the appointment notes as a labeled
// block written by the booking frontend:
//
//	Serviços Adicionais: Barba (20min - R$ 25,00), Sobrancelha (10min - R$ 15,00)
//
// The block runs until the first blank line or the end of the notes.
// Items that do not match the item pattern are skipped rather than
// failing the whole parse; a half-broken block still yields the items
// that do parse.
const addOnLabel = "Serviços Adicionais:"

var addOnItemRe = regexp.MustCompile(`([^(),]+)\(\s*(\d+)\s*min\s*-\s*R\$\s*([0-9.,]+)\s*\)`)

// ParsedNotes is the result of splitting an appointment's notes into the
// free-text part and the structured add-on components.
type ParsedNotes struct {
	ClientNotes string
	AddOns      []domain.ServiceComponent
}

// ParseNotes extracts the add-on block from the notes. Notes without the
// label come back unchanged with no add-ons.
func ParseNotes(notes string) ParsedNotes {
	labelIdx := strings.Index(notes, addOnLabel)
	if labelIdx < 0 {
		return ParsedNotes{ClientNotes: strings.TrimSpace(notes)}
	}

	blockStart := labelIdx + len(addOnLabel)
	blockEnd := len(notes)
	suffix := ""
	if sep := strings.Index(notes[blockStart:], "\n\n"); sep >= 0 {
		blockEnd = blockStart + sep
		suffix = notes[blockEnd:]
	}

	block := notes[blockStart:blockEnd]
	clientNotes := strings.TrimSpace(notes[:labelIdx] + suffix)

	return ParsedNotes{
		ClientNotes: clientNotes,
		AddOns:      parseAddOnItems(block),
	}
}

func parseAddOnItems(block string) []domain.ServiceComponent {
	matches := addOnItemRe.FindAllStringSubmatch(block, -1)
	if len(matches) == 0 {
		return nil
	}

	items := make([]domain.ServiceComponent, 0, len(matches))
	for _, m := range matches {
		name := strings.TrimSpace(strings.TrimLeft(m[1], ","))
		if name == "" {
			continue
		}

		minutes, err := strconv.Atoi(m[2])
		if err != nil || minutes <= 0 {
			continue
		}

		price, ok := parsePrice(m[3])
		if !ok {
			continue
		}

		items = append(items, domain.ServiceComponent{
			Name:            name,
			DurationMinutes: minutes,
			Price:           price,
		})
	}

	if len(items) == 0 {
		return nil
	}
	return items
}

// parsePrice accepts both Brazilian ("1.250,50") and dotted ("1250.50")
// decimal notation.
func parsePrice(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

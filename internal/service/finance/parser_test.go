package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/domain"
)

func TestParseNotes_RoundTrip(t *testing.T) {
	notes := "Cliente quer corte rápido\n\nServiços Adicionais: Barba (20min - R$ 25,00), Sobrancelha (10min - R$ 15,00)"

	parsed := ParseNotes(notes)

	assert.Equal(t, "Cliente quer corte rápido", parsed.ClientNotes)
	require.Len(t, parsed.AddOns, 2)

	assert.Equal(t, domain.ServiceComponent{Name: "Barba", DurationMinutes: 20, Price: 25.00}, parsed.AddOns[0])
	assert.Equal(t, domain.ServiceComponent{Name: "Sobrancelha", DurationMinutes: 10, Price: 15.00}, parsed.AddOns[1])

	price, minutes := domain.ComponentsTotal(parsed.AddOns)
	assert.Equal(t, 40.00, price)
	assert.Equal(t, 30, minutes)
}

func TestParseNotes_NoAddOnBlock(t *testing.T) {
	parsed := ParseNotes("Prefere atendimento com a Ana")
	assert.Equal(t, "Prefere atendimento com a Ana", parsed.ClientNotes)
	assert.Empty(t, parsed.AddOns)
}

func TestParseNotes_EmptyNotes(t *testing.T) {
	parsed := ParseNotes("")
	assert.Equal(t, "", parsed.ClientNotes)
	assert.Empty(t, parsed.AddOns)
}

func TestParseNotes_BlockOnly(t *testing.T) {
	parsed := ParseNotes("Serviços Adicionais: Barba (20min - R$ 25,00)")
	assert.Equal(t, "", parsed.ClientNotes)
	require.Len(t, parsed.AddOns, 1)
	assert.Equal(t, "Barba", parsed.AddOns[0].Name)
}

func TestParseNotes_BlockStopsAtBlankLine(t *testing.T) {
	notes := "Serviços Adicionais: Barba (20min - R$ 25,00)\n\nObservação: Hidratação (30min - R$ 50,00) fica para a próxima"

	parsed := ParseNotes(notes)

	require.Len(t, parsed.AddOns, 1)
	assert.Equal(t, "Barba", parsed.AddOns[0].Name)
	assert.Contains(t, parsed.ClientNotes, "fica para a próxima")
}

func TestParseNotes_DecimalSeparators(t *testing.T) {
	tests := []struct {
		name  string
		notes string
		price float64
	}{
		{"comma decimal", "Serviços Adicionais: Barba (20min - R$ 25,50)", 25.50},
		{"dot decimal", "Serviços Adicionais: Barba (20min - R$ 25.50)", 25.50},
		{"integer", "Serviços Adicionais: Barba (20min - R$ 25)", 25.00},
		{"thousands with comma decimal", "Serviços Adicionais: Mega Hair (120min - R$ 1.250,50)", 1250.50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := ParseNotes(tt.notes)
			require.Len(t, parsed.AddOns, 1)
			assert.Equal(t, tt.price, parsed.AddOns[0].Price)
		})
	}
}

func TestParseNotes_MalformedItemsSkipped(t *testing.T) {
	notes := "Serviços Adicionais: Barba (20min - R$ 25,00), Quebrado (min - R$), Sobrancelha (10min - R$ 15,00)"

	parsed := ParseNotes(notes)

	require.Len(t, parsed.AddOns, 2)
	assert.Equal(t, "Barba", parsed.AddOns[0].Name)
	assert.Equal(t, "Sobrancelha", parsed.AddOns[1].Name)
}

package rest

import (
	"testing"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
)

func TestDecodePageColapsaOsEnvelopes(t *testing.T) {
	cases := []struct {
		name      string
		raw       string
		wantLen   int
		wantTotal int
		wantPage  int
	}{
		{
			name:      "array puro",
			raw:       `[{"id":1},{"id":2}]`,
			wantLen:   2,
			wantTotal: 2,
			wantPage:  1,
		},
		{
			name:      "data com meta",
			raw:       `{"data":[{"id":1}],"meta":{"total":40,"page":3,"limit":10,"totalPages":4}}`,
			wantLen:   1,
			wantTotal: 40,
			wantPage:  3,
		},
		{
			name:      "dados legado",
			raw:       `{"dados":[{"id":7}]}`,
			wantLen:   1,
			wantTotal: 1,
			wantPage:  1,
		},
		{
			name:      "data achatado",
			raw:       `{"data":[{"id":1},{"id":2}],"total":12,"page":2,"limit":2,"pages":6}`,
			wantLen:   2,
			wantTotal: 12,
			wantPage:  2,
		},
		{
			name:      "objeto sem payload",
			raw:       `{"message":"ok"}`,
			wantLen:   0,
			wantTotal: 0,
			wantPage:  1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, err := decodePage[entity.Carta]([]byte(tc.raw))
			if err != nil {
				t.Fatalf("decodePage: %v", err)
			}
			if len(page.Items) != tc.wantLen {
				t.Errorf("itens: esperava %d, veio %d", tc.wantLen, len(page.Items))
			}
			if page.Total != tc.wantTotal {
				t.Errorf("total: esperava %d, veio %d", tc.wantTotal, page.Total)
			}
			if page.Page != tc.wantPage {
				t.Errorf("page: esperava %d, veio %d", tc.wantPage, page.Page)
			}
		})
	}
}

func TestDecodeEntityAceitaEnvelopeEEntidadePura(t *testing.T) {
	embrulhada, err := decodeEntity[entity.Carta]([]byte(`{"data":{"id":5,"nome":"Snorlax"}}`))
	if err != nil {
		t.Fatalf("decodeEntity envelope: %v", err)
	}
	if embrulhada.ID != 5 || embrulhada.Nome != "Snorlax" {
		t.Fatalf("entidade errada: %+v", embrulhada)
	}

	pura, err := decodeEntity[entity.Carta]([]byte(`{"id":9,"nome":"Ditto"}`))
	if err != nil {
		t.Fatalf("decodeEntity pura: %v", err)
	}
	if pura.ID != 9 {
		t.Fatalf("entidade errada: %+v", pura)
	}

	legado, err := decodeEntity[entity.Carta]([]byte(`{"dados":{"id":3}}`))
	if err != nil {
		t.Fatalf("decodeEntity dados: %v", err)
	}
	if legado.ID != 3 {
		t.Fatalf("entidade errada: %+v", legado)
	}
}

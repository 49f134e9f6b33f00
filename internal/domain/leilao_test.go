package entity

import (
	"testing"
	"time"
)

func TestCanEdit(t *testing.T) {
	leilao := Leilao{OwnerID: "u1"}

	cases := []struct {
		name    string
		isAdmin bool
		userID  string
		want    bool
	}{
		{"admin edita qualquer um", true, "outro", true},
		{"admin sem id também edita", true, "", true},
		{"dono edita o próprio", false, "u1", true},
		{"outro usuário não edita", false, "u2", false},
		{"anônimo não edita", false, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := leilao.CanEdit(tc.isAdmin, tc.userID); got != tc.want {
				t.Errorf("CanEdit(%v, %q) = %v, esperava %v", tc.isAdmin, tc.userID, got, tc.want)
			}
		})
	}
}

func TestEncerrado(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	passado := Leilao{TerminaEm: "2026-08-28T11:59:59Z"}
	if !passado.Encerrado(now) {
		t.Error("término no passado deveria contar como encerrado")
	}

	futuro := Leilao{TerminaEm: "2026-08-28T12:00:01Z"}
	if futuro.Encerrado(now) {
		t.Error("término no futuro não deveria contar como encerrado")
	}

	// Data ilegível não encerra o leilão sozinha.
	quebrado := Leilao{TerminaEm: "sem data"}
	if quebrado.Encerrado(now) {
		t.Error("término ilegível não deveria encerrar")
	}
}

func TestPropostaTerminal(t *testing.T) {
	cases := map[string]bool{
		PropostaPendente:  false,
		PropostaAceita:    true,
		PropostaRecusada:  true,
		PropostaCancelada: true,
	}
	for status, want := range cases {
		p := Proposta{Status: status}
		if got := p.Terminal(); got != want {
			t.Errorf("Terminal(%q) = %v, esperava %v", status, got, want)
		}
	}
}

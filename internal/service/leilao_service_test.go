package service

import (
	"context"
	"errors"
	"testing"
	"time"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
	"github.com/r-viana/ProgWebFrontDiego/internal/notify"
)

// fakeLeilaoRepo responde tudo de memória e conta chamadas; com fail=true,
// toda operação falha, simulando a API fora do ar.
type fakeLeilaoRepo struct {
	calls  int
	fail   bool
	leilao entity.Leilao
}

var errAPIFora = errors.New("connection refused")

func (f *fakeLeilaoRepo) List(_ context.Context, _ entity.FiltroLeilao) (entity.ListaLeiloes, error) {
	f.calls++
	if f.fail {
		return entity.ListaLeiloes{}, errAPIFora
	}
	return entity.ListaLeiloes{Items: []entity.Leilao{f.leilao}, Total: 1, Page: 1, Limit: 10, Pages: 1}, nil
}

func (f *fakeLeilaoRepo) GetByID(_ context.Context, _ string) (*entity.Leilao, error) {
	f.calls++
	if f.fail {
		return nil, errAPIFora
	}
	l := f.leilao
	return &l, nil
}

func (f *fakeLeilaoRepo) Create(_ context.Context, input entity.CreateLeilaoInput) (*entity.Leilao, error) {
	f.calls++
	if f.fail {
		return nil, errAPIFora
	}
	l := f.leilao
	l.Titulo = input.Titulo
	return &l, nil
}

func (f *fakeLeilaoRepo) Update(_ context.Context, _ string, _ entity.UpdateLeilaoInput) (*entity.Leilao, error) {
	f.calls++
	if f.fail {
		return nil, errAPIFora
	}
	l := f.leilao
	return &l, nil
}

func (f *fakeLeilaoRepo) Delete(_ context.Context, _ string) error {
	f.calls++
	if f.fail {
		return errAPIFora
	}
	return nil
}

func (f *fakeLeilaoRepo) PlaceBid(_ context.Context, _ string, valor float64) (*entity.Leilao, error) {
	f.calls++
	if f.fail {
		return nil, errAPIFora
	}
	l := f.leilao
	l.PrecoAtual = valor
	return &l, nil
}

func (f *fakeLeilaoRepo) Close(_ context.Context, _ string) (*entity.Leilao, error) {
	f.calls++
	if f.fail {
		return nil, errAPIFora
	}
	l := f.leilao
	l.Status = entity.LeilaoFinalizado
	return &l, nil
}

func terminaFuturo() string {
	return time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339)
}

func TestLeilaoAPIForaDoArCaiParaOMock(t *testing.T) {
	api := &fakeLeilaoRepo{fail: true}
	mock := &fakeLeilaoRepo{leilao: entity.Leilao{ID: "l_local", Titulo: "Local"}}
	svc := NewLeilaoService(SourceAPI, api, mock, &notify.Recorder{})

	lista, source, err := svc.List(context.Background(), entity.FiltroLeilao{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if source != SourceMock {
		t.Fatalf("fonte esperada mock, veio %q", source)
	}
	if api.calls != 1 || mock.calls != 1 {
		t.Fatalf("esperava 1 chamada em cada fonte, api=%d mock=%d", api.calls, mock.calls)
	}
	if lista.Items[0].ID != "l_local" {
		t.Fatalf("resultado deveria vir do mock: %+v", lista.Items)
	}
}

func TestLeilaoPreferenciaMockNuncaTentaAPI(t *testing.T) {
	api := &fakeLeilaoRepo{}
	mock := &fakeLeilaoRepo{leilao: entity.Leilao{ID: "l_local"}}
	svc := NewLeilaoService(SourceMock, api, mock, &notify.Recorder{})
	ctx := context.Background()

	svc.List(ctx, entity.FiltroLeilao{})
	svc.GetByID(ctx, "l_local")
	svc.PlaceBid(ctx, "l_local", 50)

	if api.calls != 0 {
		t.Fatalf("API não deveria ser consultada com preferência mock, houve %d chamadas", api.calls)
	}
	if mock.calls != 3 {
		t.Fatalf("mock deveria responder as 3 operações, respondeu %d", mock.calls)
	}
}

func TestLeilaoAPISaudavelRespondeEtiquetada(t *testing.T) {
	api := &fakeLeilaoRepo{leilao: entity.Leilao{ID: "l_api"}}
	mock := &fakeLeilaoRepo{}
	svc := NewLeilaoService(SourceAPI, api, mock, &notify.Recorder{})

	leilao, source, err := svc.GetByID(context.Background(), "l_api")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if source != SourceAPI || leilao.ID != "l_api" {
		t.Fatalf("esperava resposta da API, veio source=%q leilao=%+v", source, leilao)
	}
	if mock.calls != 0 {
		t.Fatalf("mock não deveria ser tocado quando a API responde, houve %d chamadas", mock.calls)
	}
}

func TestLeilaoCreateValidaAntesDeQualquerFonte(t *testing.T) {
	cases := []struct {
		name    string
		input   entity.CreateLeilaoInput
		wantErr error
	}{
		{
			name:    "sem título",
			input:   entity.CreateLeilaoInput{PrecoInicial: 1, TerminaEm: terminaFuturo()},
			wantErr: ErrTituloObrigatorio,
		},
		{
			name:    "preço abaixo do mínimo",
			input:   entity.CreateLeilaoInput{Titulo: "Mew", PrecoInicial: 0.001, TerminaEm: terminaFuturo()},
			wantErr: ErrPrecoInvalido,
		},
		{
			name:    "término no passado",
			input:   entity.CreateLeilaoInput{Titulo: "Mew", PrecoInicial: 1, TerminaEm: "2020-01-01T00:00:00Z"},
			wantErr: ErrTerminoInvalido,
		},
		{
			name:    "término ilegível",
			input:   entity.CreateLeilaoInput{Titulo: "Mew", PrecoInicial: 1, TerminaEm: "amanhã"},
			wantErr: ErrTerminoInvalido,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := &fakeLeilaoRepo{}
			mock := &fakeLeilaoRepo{}
			recorder := &notify.Recorder{}
			svc := NewLeilaoService(SourceAPI, api, mock, recorder)

			_, _, err := svc.Create(context.Background(), tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("erro esperado %v, veio %v", tc.wantErr, err)
			}
			if api.calls+mock.calls != 0 {
				t.Fatalf("validação deveria barrar antes das fontes, api=%d mock=%d", api.calls, mock.calls)
			}
			if last := recorder.Last(); last.Kind != notify.KindValidation {
				t.Fatalf("notificação esperada de validação, veio %+v", last)
			}
		})
	}
}

func TestLeilaoPrecoMinimoExatoPassa(t *testing.T) {
	mock := &fakeLeilaoRepo{leilao: entity.Leilao{ID: "l_novo"}}
	svc := NewLeilaoService(SourceMock, nil, mock, &notify.Recorder{})

	_, source, err := svc.Create(context.Background(), entity.CreateLeilaoInput{
		Titulo:       "Magikarp",
		PrecoInicial: 0.01,
		TerminaEm:    terminaFuturo(),
	})
	if err != nil {
		t.Fatalf("Create com preço 0.01 deveria passar: %v", err)
	}
	if source != SourceMock {
		t.Fatalf("fonte esperada mock, veio %q", source)
	}
}

func TestLeilaoCanEditDelegaParaARegraDoDominio(t *testing.T) {
	svc := NewLeilaoService(SourceMock, nil, &fakeLeilaoRepo{}, &notify.Recorder{})
	leilao := entity.Leilao{OwnerID: "u1"}

	if !svc.CanEdit(leilao, false, "u1") {
		t.Error("dono deveria poder editar")
	}
	if !svc.CanEdit(leilao, true, "outro") {
		t.Error("admin deveria poder editar")
	}
	if svc.CanEdit(leilao, false, "") {
		t.Error("sem usuário não deveria editar")
	}
}

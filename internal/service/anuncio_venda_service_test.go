package service

import (
	"context"
	"errors"
	"math"
	"testing"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
	"github.com/r-viana/ProgWebFrontDiego/internal/notify"
)

type fakeAnuncioVendaRepo struct {
	createCalls int
	createErr   error
}

func (f *fakeAnuncioVendaRepo) GetAll(_ context.Context, _ entity.FiltroAnuncioVenda) (entity.Page[entity.AnuncioVenda], error) {
	return entity.SinglePage([]entity.AnuncioVenda{{ID: 1}}), nil
}

func (f *fakeAnuncioVendaRepo) GetByID(_ context.Context, id int) (*entity.AnuncioVenda, error) {
	return &entity.AnuncioVenda{ID: id}, nil
}

func (f *fakeAnuncioVendaRepo) Create(_ context.Context, input entity.CreateAnuncioVendaInput) (*entity.AnuncioVenda, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &entity.AnuncioVenda{ID: 10, Titulo: input.Titulo, PrecoTotal: input.PrecoTotal}, nil
}

func (f *fakeAnuncioVendaRepo) Update(_ context.Context, id int, _ entity.UpdateAnuncioVendaInput) (*entity.AnuncioVenda, error) {
	return &entity.AnuncioVenda{ID: id}, nil
}

func (f *fakeAnuncioVendaRepo) Delete(_ context.Context, _ int) error { return nil }

func TestCreateAnuncioValidacaoNaoChegaNoRepositorio(t *testing.T) {
	cases := []struct {
		name    string
		input   entity.CreateAnuncioVendaInput
		wantErr error
	}{
		{
			name:    "sem título",
			input:   entity.CreateAnuncioVendaInput{PrecoTotal: 10, QuantidadeDisponivel: 1},
			wantErr: ErrTituloObrigatorio,
		},
		{
			name:    "preço zero",
			input:   entity.CreateAnuncioVendaInput{Titulo: "Lote", QuantidadeDisponivel: 1},
			wantErr: ErrPrecoInvalido,
		},
		{
			name:    "quantidade zero",
			input:   entity.CreateAnuncioVendaInput{Titulo: "Lote", PrecoTotal: 10},
			wantErr: ErrQuantidadeInvalida,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeAnuncioVendaRepo{}
			recorder := &notify.Recorder{}
			svc := NewAnuncioVendaService(repo, recorder)

			_, err := svc.Create(context.Background(), tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("erro esperado %v, veio %v", tc.wantErr, err)
			}
			if repo.createCalls != 0 {
				t.Fatalf("validação deveria barrar antes do repositório, houve %d chamadas", repo.createCalls)
			}
			if last := recorder.Last(); last.Kind != notify.KindValidation {
				t.Fatalf("notificação esperada de validação, veio %+v", last)
			}
		})
	}
}

func TestCreateAnuncioNotificaSucesso(t *testing.T) {
	repo := &fakeAnuncioVendaRepo{}
	recorder := &notify.Recorder{}
	svc := NewAnuncioVendaService(repo, recorder)

	anuncio, err := svc.Create(context.Background(), entity.CreateAnuncioVendaInput{
		Titulo:               "Lote Charizard",
		PrecoTotal:           350,
		QuantidadeDisponivel: 2,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if anuncio.ID != 10 {
		t.Fatalf("anúncio errado: %+v", anuncio)
	}
	if repo.createCalls != 1 {
		t.Fatalf("repositório deveria ser chamado uma vez, foi %d", repo.createCalls)
	}
	last := recorder.Last()
	if last.Kind != notify.KindSuccess || last.Message != "Anúncio criado com sucesso!" {
		t.Fatalf("notificação errada: %+v", last)
	}
}

func TestCreateAnuncioErroDeRedeNotificaEPropaga(t *testing.T) {
	falha := errors.New("backend fora do ar")
	repo := &fakeAnuncioVendaRepo{createErr: falha}
	recorder := &notify.Recorder{}
	svc := NewAnuncioVendaService(repo, recorder)

	_, err := svc.Create(context.Background(), entity.CreateAnuncioVendaInput{
		Titulo:               "Lote",
		PrecoTotal:           10,
		QuantidadeDisponivel: 1,
	})
	if !errors.Is(err, falha) {
		t.Fatalf("erro do repositório deveria propagar, veio %v", err)
	}
	if last := recorder.Last(); last.Kind != notify.KindError {
		t.Fatalf("notificação esperada de erro, veio %+v", last)
	}
}

func TestTaxaDeVenda(t *testing.T) {
	if got := CalcularTaxaVenda(100); math.Abs(got-10) > 1e-9 {
		t.Errorf("taxa de 100 esperada 10, veio %v", got)
	}
	if got := CalcularPrecoFinal(100); math.Abs(got-110) > 1e-9 {
		t.Errorf("preço final de 100 esperado 110, veio %v", got)
	}
	if got := CalcularTaxaVenda(0); got != 0 {
		t.Errorf("taxa de 0 esperada 0, veio %v", got)
	}
}

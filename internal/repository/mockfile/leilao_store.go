// Package mockfile é o backend de leilões que funciona sem rede: a lista
// inteira vive em um único arquivo JSON (o análogo do localStorage do front
// antigo) e cada operação lê tudo, altera em memória e grava tudo de volta.
// Seguro apenas para um processo por arquivo; o mutex cobre o caso de
// goroutines concorrentes dentro do mesmo processo.
package mockfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
)

var (
	ErrLeilaoNotFound  = errors.New("leilão não encontrado")
	ErrLeilaoEncerrado = errors.New("leilão não está ativo")
	ErrLanceInvalido   = errors.New("lance deve ser maior que o preço atual")
)

const (
	defaultLimit = 10
	minLimit     = 5
	maxLimit     = 50
)

type LeilaoStore struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

func NewLeilaoStore(path string) *LeilaoStore {
	return &LeilaoStore{path: path, now: time.Now}
}

// load devolve a lista atual, semeando o arquivo na primeira leitura.
func (s *LeilaoStore) load() ([]entity.Leilao, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("mockfile: lendo %s: %w", s.path, err)
	}

	if len(raw) > 0 {
		var all []entity.Leilao
		if err := json.Unmarshal(raw, &all); err == nil && len(all) > 0 {
			return all, nil
		}
		// Arquivo corrompido: descarta e ressemeia.
	}

	all := s.seed()
	if err := s.save(all); err != nil {
		return nil, err
	}
	return all, nil
}

func (s *LeilaoStore) save(all []entity.Leilao) error {
	raw, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, raw, 0644); err != nil {
		return fmt.Errorf("mockfile: gravando %s: %w", s.path, err)
	}
	return nil
}

func (s *LeilaoStore) iso(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// seed global: alguns leilões de exemplo para as telas não nascerem vazias.
func (s *LeilaoStore) seed() []entity.Leilao {
	now := s.now()
	return []entity.Leilao{
		{
			ID:           "l_1001",
			Titulo:       "Charizard Base Set (Shadowless)",
			Descricao:    "Carta em ótimo estado. Leve desgaste nas bordas.",
			PrecoInicial: 10.00,
			PrecoAtual:   23.50,
			Status:       entity.LeilaoAtivo,
			TerminaEm:    s.iso(now.Add(7 * time.Hour)),
			CriadoEm:     s.iso(now.Add(-48 * time.Hour)),
			OwnerID:      "user_mock_1",
			OwnerNome:    "Zezinho",
		},
		{
			ID:           "l_1002",
			Titulo:       "Pikachu Promo (Edição Especial)",
			Descricao:    "Promo rara. Excelente para coleção.",
			PrecoInicial: 0.01,
			PrecoAtual:   2.75,
			Status:       entity.LeilaoAtivo,
			TerminaEm:    s.iso(now.Add(28 * time.Hour)),
			CriadoEm:     s.iso(now.Add(-5 * time.Hour)),
			OwnerID:      "user_mock_2",
			OwnerNome:    "Ramon",
		},
		{
			ID:           "l_1003",
			Titulo:       "Eevee (Common) - Lote com 10",
			Descricao:    "Lote com 10 Eevees comuns, ideal para deck.",
			PrecoInicial: 5.00,
			PrecoAtual:   5.00,
			Status:       entity.LeilaoFinalizado,
			TerminaEm:    s.iso(now.Add(-2 * time.Hour)),
			CriadoEm:     s.iso(now.Add(-30 * time.Hour)),
			OwnerID:      "user_mock_1",
			OwnerNome:    "Zezinho",
		},
	}
}

// bootstrapMine cria exemplos para um dono que ainda não tem leilão salvo,
// para a tela "Meus Leilões" permitir testar filtros, paginação e CRUD.
func (s *LeilaoStore) bootstrapMine(all []entity.Leilao, ownerID, ownerNome string) ([]entity.Leilao, bool) {
	for _, l := range all {
		if l.OwnerID == ownerID {
			return all, false
		}
	}

	nome := strings.TrimSpace(ownerNome)
	if nome == "" {
		nome = "Você"
	}
	if len(nome) > 80 {
		nome = nome[:80]
	}
	now := s.now()

	samples := []entity.Leilao{
		{
			ID:           genID(),
			Titulo:       "Charizard (mock) - 1ª Edição",
			Descricao:    "Exemplo de leilão criado automaticamente para testes.",
			PrecoInicial: 10.0,
			PrecoAtual:   14.25,
			Status:       entity.LeilaoAtivo,
			TerminaEm:    s.iso(now.Add(48 * time.Hour)),
			CriadoEm:     s.iso(now.Add(-time.Hour)),
			AtualizadoEm: s.iso(now.Add(-30 * time.Minute)),
			OwnerID:      ownerID,
			OwnerNome:    nome,
		},
		{
			ID:           genID(),
			Titulo:       "Pikachu (mock) - Holo",
			Descricao:    "Leilão de exemplo para testar busca e edição.",
			PrecoInicial: 5.0,
			PrecoAtual:   5.0,
			Status:       entity.LeilaoAtivo,
			TerminaEm:    s.iso(now.Add(12 * time.Hour)),
			CriadoEm:     s.iso(now.Add(-20 * time.Minute)),
			AtualizadoEm: s.iso(now.Add(-20 * time.Minute)),
			OwnerID:      ownerID,
			OwnerNome:    nome,
		},
		{
			ID:           genID(),
			Titulo:       "Eevee (mock) - Near Mint",
			Descricao:    "Um exemplo finalizado para testar filtro de status.",
			PrecoInicial: 3.0,
			PrecoAtual:   7.9,
			Status:       entity.LeilaoFinalizado,
			TerminaEm:    s.iso(now.Add(-72 * time.Hour)),
			CriadoEm:     s.iso(now.Add(-7 * 24 * time.Hour)),
			AtualizadoEm: s.iso(now.Add(-72 * time.Hour)),
			OwnerID:      ownerID,
			OwnerNome:    nome,
		},
	}

	return append(all, samples...), true
}

func genID() string {
	return "l_" + uuid.NewString()
}

func parseDay(d string) (time.Time, bool) {
	if d == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", d)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func parseISO(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (s *LeilaoStore) List(_ context.Context, filtro entity.FiltroLeilao) (entity.ListaLeiloes, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return entity.ListaLeiloes{}, err
	}

	scope := filtro.Scope
	if scope == "" {
		scope = "all"
	}

	if scope == "mine" && filtro.OwnerID != "" {
		var seeded bool
		all, seeded = s.bootstrapMine(all, filtro.OwnerID, filtro.OwnerNome)
		if seeded {
			if err := s.save(all); err != nil {
				return entity.ListaLeiloes{}, err
			}
		}
	}

	filtered := make([]entity.Leilao, 0, len(all))
	q := strings.ToLower(strings.TrimSpace(filtro.Q))
	de, hasDe := parseDay(filtro.TerminaDe)
	ate, hasAte := parseDay(filtro.TerminaAte)
	if hasAte {
		// Fim do dia, inclusivo.
		ate = ate.Add(24*time.Hour - time.Millisecond)
	}

	for _, l := range all {
		if scope == "mine" && filtro.OwnerID != "" && l.OwnerID != filtro.OwnerID {
			continue
		}
		if q != "" {
			hit := strings.Contains(strings.ToLower(l.Titulo), q) ||
				strings.Contains(strings.ToLower(l.Descricao), q) ||
				strings.Contains(strings.ToLower(l.OwnerNome), q)
			if !hit {
				continue
			}
		}
		if filtro.Status != "" && filtro.Status != "todos" && l.Status != filtro.Status {
			continue
		}
		if hasDe || hasAte {
			t, ok := parseISO(l.TerminaEm)
			if !ok {
				continue
			}
			if hasDe && t.Before(de) {
				continue
			}
			if hasAte && t.After(ate) {
				continue
			}
		}
		filtered = append(filtered, l)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		ti, _ := parseISO(filtered[i].TerminaEm)
		tj, _ := parseISO(filtered[j].TerminaEm)
		return ti.Before(tj)
	})

	page := filtro.Page
	if page < 1 {
		page = 1
	}
	limit := filtro.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	if limit < minLimit {
		limit = minLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	total := len(filtered)
	pages := (total + limit - 1) / limit
	if pages < 1 {
		pages = 1
	}
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return entity.ListaLeiloes{
		Items: filtered[start:end],
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: pages,
	}, nil
}

func (s *LeilaoStore) GetByID(_ context.Context, id string) (*entity.Leilao, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			l := all[i]
			return &l, nil
		}
	}
	return nil, ErrLeilaoNotFound
}

func (s *LeilaoStore) Create(_ context.Context, input entity.CreateLeilaoInput) (*entity.Leilao, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return nil, err
	}

	precoInicial := input.PrecoInicial
	if precoInicial < 0.01 {
		precoInicial = 0.01
	}
	ownerNome := input.OwnerNome
	if ownerNome == "" {
		ownerNome = "Usuário"
	}
	nowISO := s.iso(s.now())

	created := entity.Leilao{
		ID:           genID(),
		Titulo:       strings.TrimSpace(input.Titulo),
		Descricao:    strings.TrimSpace(input.Descricao),
		PrecoInicial: precoInicial,
		PrecoAtual:   precoInicial,
		Status:       entity.LeilaoAtivo,
		TerminaEm:    input.TerminaEm,
		CriadoEm:     nowISO,
		AtualizadoEm: nowISO,
		OwnerID:      input.OwnerID,
		OwnerNome:    ownerNome,
	}

	// Mais novo primeiro, como o front antigo fazia.
	all = append([]entity.Leilao{created}, all...)
	if err := s.save(all); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *LeilaoStore) Update(_ context.Context, id string, input entity.UpdateLeilaoInput) (*entity.Leilao, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range all {
		if all[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrLeilaoNotFound
	}

	l := all[idx]
	if input.Titulo != nil {
		l.Titulo = strings.TrimSpace(*input.Titulo)
	}
	if input.Descricao != nil {
		l.Descricao = strings.TrimSpace(*input.Descricao)
	}
	if input.PrecoInicial != nil {
		p := *input.PrecoInicial
		if p < 0.01 {
			p = 0.01
		}
		l.PrecoInicial = p
	}
	if input.PrecoAtual != nil {
		p := *input.PrecoAtual
		if p < 0 {
			p = 0
		}
		l.PrecoAtual = p
	}
	if input.Status != nil {
		l.Status = *input.Status
	}
	if input.TerminaEm != nil {
		l.TerminaEm = *input.TerminaEm
	}
	l.AtualizadoEm = s.iso(s.now())

	all[idx] = l
	if err := s.save(all); err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *LeilaoStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return err
	}

	// Id ausente não é erro: filtra e grava o que sobrou, então apagar
	// duas vezes termina no mesmo estado.
	next := all[:0:0]
	for _, l := range all {
		if l.ID != id {
			next = append(next, l)
		}
	}
	return s.save(next)
}

func (s *LeilaoStore) PlaceBid(ctx context.Context, id string, valor float64) (*entity.Leilao, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range all {
		if all[i].ID != id {
			continue
		}
		l := all[i]
		if l.Status != entity.LeilaoAtivo || l.Encerrado(s.now()) {
			return nil, ErrLeilaoEncerrado
		}
		if valor <= l.PrecoAtual {
			return nil, ErrLanceInvalido
		}
		l.PrecoAtual = valor
		l.AtualizadoEm = s.iso(s.now())
		all[i] = l
		if err := s.save(all); err != nil {
			return nil, err
		}
		return &l, nil
	}
	return nil, ErrLeilaoNotFound
}

func (s *LeilaoStore) Close(ctx context.Context, id string) (*entity.Leilao, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range all {
		if all[i].ID != id {
			continue
		}
		l := all[i]
		if l.Status != entity.LeilaoAtivo {
			return nil, ErrLeilaoEncerrado
		}
		l.Status = entity.LeilaoFinalizado
		l.AtualizadoEm = s.iso(s.now())
		all[i] = l
		if err := s.save(all); err != nil {
			return nil, err
		}
		return &l, nil
	}
	return nil, ErrLeilaoNotFound
}

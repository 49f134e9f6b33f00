// poketrade é o cliente de terminal do marketplace: navega anúncios, envia
// propostas, gerencia o carrinho e opera os leilões pela fachada que decide
// entre a API real e o store local.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/r-viana/ProgWebFrontDiego/internal/config"
	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
	"github.com/r-viana/ProgWebFrontDiego/internal/notify"
	"github.com/r-viana/ProgWebFrontDiego/internal/repository/mockfile"
	"github.com/r-viana/ProgWebFrontDiego/internal/repository/rest"
	"github.com/r-viana/ProgWebFrontDiego/internal/service"
	"github.com/r-viana/ProgWebFrontDiego/internal/state"
)

type app struct {
	cfg      config.Config
	in       *bufio.Reader
	auth     *service.AuthService
	anuncios *service.AnuncioVendaService
	proposta *service.PropostaService
	leiloes  *service.LeilaoService
	cart     *state.CartStore
	user     *entity.User
}

func main() {
	config.LoadEnv()
	cfg := config.FromEnv()

	tokens := rest.FileTokenSource{Path: cfg.TokenFile}
	client := rest.NewClient(rest.ClientConfig{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.RequestTimeout,
		Tokens:  tokens,
		OnUnauthorized: func() {
			fmt.Println("Sessão expirada, faça login novamente.")
		},
	})

	notifier := notify.Terminal{}
	a := &app{
		cfg:      cfg,
		in:       bufio.NewReader(os.Stdin),
		auth:     service.NewAuthService(rest.NewAuthREST(client), notifier),
		anuncios: service.NewAnuncioVendaService(rest.NewAnuncioVendaREST(client), notifier),
		proposta: service.NewPropostaService(rest.NewPropostaREST(client), notifier),
		leiloes: service.NewLeilaoService(
			service.Source(cfg.LeiloesSource),
			rest.NewLeilaoREST(client),
			mockfile.NewLeilaoStore(cfg.MockStorePath),
			notifier,
		),
		cart: state.NewCartStore(service.NewCarrinhoService(rest.NewCarrinhoREST(client), notifier)),
	}
	a.run()
}

func (a *app) run() {
	for {
		fmt.Println()
		fmt.Println("=== PokeTrade ===")
		fmt.Println("1 - Anúncios de venda")
		fmt.Println("2 - Enviar proposta")
		fmt.Println("3 - Carrinho")
		fmt.Println("4 - Leilões")
		fmt.Println("5 - Login")
		fmt.Println("0 - Sair")

		switch a.promptInt("Opção") {
		case 1:
			a.listarAnuncios()
		case 2:
			a.enviarProposta()
		case 3:
			a.menuCarrinho()
		case 4:
			a.menuLeiloes()
		case 5:
			a.login()
		case 0:
			return
		default:
			fmt.Println("Opção inválida")
		}
	}
}

func (a *app) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

func (a *app) prompt(label string) string {
	fmt.Printf("%s: ", label)
	line, _ := a.in.ReadString('\n')
	return strings.TrimSpace(line)
}

func (a *app) promptInt(label string) int {
	v, err := strconv.Atoi(a.prompt(label))
	if err != nil {
		return -1
	}
	return v
}

func (a *app) promptFloat(label string) float64 {
	raw := strings.ReplaceAll(a.prompt(label), ",", ".")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}

func (a *app) moeda(valor float64) string {
	return fmt.Sprintf("%s %.2f", a.cfg.CurrencySymbol, valor)
}

func (a *app) login() {
	input := entity.LoginInput{
		Username: a.prompt("Username"),
		Senha:    a.prompt("Senha"),
	}

	ctx, cancel := a.ctx()
	defer cancel()
	resp, err := a.auth.Login(ctx, input)
	if err != nil {
		return
	}
	a.user = &resp.User
	fmt.Printf("Bem-vindo, %s!\n", resp.User.Nome)
}

func (a *app) listarAnuncios() {
	ctx, cancel := a.ctx()
	defer cancel()

	page, err := a.anuncios.GetAll(ctx, entity.FiltroAnuncioVenda{
		Status: entity.AnuncioAtivo,
		Limit:  20,
	})
	if err != nil {
		return
	}

	fmt.Printf("\n%d anúncios ativos\n", page.Total)
	for _, anuncio := range page.Items {
		fmt.Printf("  #%d %s - %s (taxa %s, final %s)\n",
			anuncio.ID,
			anuncio.Titulo,
			a.moeda(anuncio.PrecoTotal),
			a.moeda(service.CalcularTaxaVenda(anuncio.PrecoTotal)),
			a.moeda(service.CalcularPrecoFinal(anuncio.PrecoTotal)),
		)
	}
}

func (a *app) enviarProposta() {
	if a.user == nil {
		fmt.Println("Faça login primeiro.")
		return
	}

	input := entity.CreatePropostaInput{
		UsuarioID:   a.user.ID,
		AnuncioID:   a.promptInt("Anúncio"),
		ValorOferta: a.promptFloat("Valor da oferta"),
		Mensagem:    a.prompt("Mensagem (opcional)"),
	}

	ctx, cancel := a.ctx()
	defer cancel()
	a.proposta.Create(ctx, input)
}

func (a *app) menuCarrinho() {
	ctx, cancel := a.ctx()
	defer cancel()

	if err := a.cart.Fetch(ctx); err != nil {
		return
	}

	for _, item := range a.cart.Itens() {
		titulo := "(anúncio indisponível)"
		if item.Anuncio != nil {
			titulo = item.Anuncio.Titulo
		}
		fmt.Printf("  [%d] %dx %s\n", item.ID, item.Quantidade, titulo)
	}
	resumo := a.cart.Resumo()
	fmt.Printf("Total: %d itens, %s\n", resumo.TotalItens, a.moeda(resumo.ValorTotal))

	fmt.Println("1 - Adicionar  2 - Remover  3 - Finalizar  0 - Voltar")
	switch a.promptInt("Opção") {
	case 1:
		a.cart.Add(ctx, entity.AdicionarCarrinhoInput{
			AnuncioVendaID: a.promptInt("Anúncio"),
			Quantidade:     a.promptInt("Quantidade"),
		})
	case 2:
		a.cart.Remove(ctx, a.promptInt("Item"))
	case 3:
		a.cart.Checkout(ctx)
	}
}

func (a *app) menuLeiloes() {
	ctx, cancel := a.ctx()
	defer cancel()

	lista, source, err := a.leiloes.List(ctx, entity.FiltroLeilao{Status: "todos", Limit: 20})
	if err != nil {
		return
	}
	if source == service.SourceMock {
		fmt.Println("(exibindo dados locais)")
	}

	for _, leilao := range lista.Items {
		fmt.Printf("  %s %s - atual %s (%s, termina %s)\n",
			leilao.ID, leilao.Titulo, a.moeda(leilao.PrecoAtual), leilao.Status, leilao.TerminaEm)
	}

	fmt.Println("1 - Criar  2 - Dar lance  3 - Encerrar  0 - Voltar")
	switch a.promptInt("Opção") {
	case 1:
		input := entity.CreateLeilaoInput{
			Titulo:       a.prompt("Título"),
			Descricao:    a.prompt("Descrição (opcional)"),
			PrecoInicial: a.promptFloat("Preço inicial"),
			TerminaEm:    a.prompt("Termina em (RFC3339)"),
		}
		if a.user != nil {
			input.OwnerID = strconv.Itoa(a.user.ID)
			input.OwnerNome = a.user.Nome
		}
		a.leiloes.Create(ctx, input)
	case 2:
		id := a.prompt("Leilão")
		a.leiloes.PlaceBid(ctx, id, a.promptFloat("Valor do lance"))
	case 3:
		a.leiloes.Close(ctx, a.prompt("Leilão"))
	}
}

package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestClientEnviaBearerQuandoHaToken(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, Tokens: StaticTokenSource("abc123")})
	if _, err := client.get(context.Background(), "/auth/profile", nil); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "Bearer abc123" {
		t.Fatalf("Authorization esperado 'Bearer abc123', veio %q", got)
	}
}

func TestClientSemTokenNaoEnviaHeader(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL})
	if _, err := client.get(context.Background(), "/cartas", nil); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "" {
		t.Fatalf("não deveria haver Authorization, veio %q", got)
	}
}

func Test401LimpaTokenEChamaHookUmaVez(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token expirado"}`))
	}))
	defer server.Close()

	tokens := FileTokenSource{Path: filepath.Join(t.TempDir(), "token")}
	if err := tokens.Save("velho"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	hooks := 0
	client := NewClient(ClientConfig{
		BaseURL:        server.URL,
		Tokens:         tokens,
		OnUnauthorized: func() { hooks++ },
	})

	_, err := client.get(context.Background(), "/auth/profile", nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != 401 {
		t.Fatalf("esperava APIError 401, veio %v", err)
	}
	if apiErr.Message != "token expirado" {
		t.Fatalf("mensagem esperada 'token expirado', veio %q", apiErr.Message)
	}
	if hooks != 1 {
		t.Fatalf("hook deveria rodar exatamente uma vez, rodou %d", hooks)
	}
	if _, err := os.Stat(tokens.Path); !os.IsNotExist(err) {
		t.Fatalf("token deveria ter sido apagado: %v", err)
	}
}

func Test401ComSessaoGerenciadaNaoMexeNoToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"expirado"}`))
	}))
	defer server.Close()

	tokens := FileTokenSource{Path: filepath.Join(t.TempDir(), "token")}
	if err := tokens.Save("gerenciado"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	hooks := 0
	client := NewClient(ClientConfig{
		BaseURL:        server.URL,
		Tokens:         tokens,
		ManagedSession: true,
		OnUnauthorized: func() { hooks++ },
	})

	if _, err := client.get(context.Background(), "/auth/profile", nil); err == nil {
		t.Fatal("esperava erro 401")
	}
	if hooks != 0 {
		t.Fatalf("hook não deveria rodar com sessão gerenciada, rodou %d", hooks)
	}
	token, err := tokens.Token()
	if err != nil || token != "gerenciado" {
		t.Fatalf("token deveria permanecer: %q, %v", token, err)
	}
}

func TestNewAPIErrorAceitaOsDoisFormatos(t *testing.T) {
	cases := []struct {
		body string
		want string
	}{
		{`{"message":"sem estoque"}`, "sem estoque"},
		{`{"error":"proibido"}`, "proibido"},
		{`{"error":true,"message":"corpo inválido"}`, "corpo inválido"},
		{`nao-e-json`, ""},
	}
	for _, tc := range cases {
		got := newAPIError(400, []byte(tc.body))
		if got.Message != tc.want {
			t.Errorf("corpo %q: mensagem esperada %q, veio %q", tc.body, tc.want, got.Message)
		}
	}
}

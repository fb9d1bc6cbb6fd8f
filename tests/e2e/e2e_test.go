//go:build integration

package e2e

// End-to-end integration tests using real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v
//
// Covered flows:
//   - cadastro de cliente com primeiro pet
//   - registro de consumo: snapshot de preço, decremento de estoque, tudo-ou-nada
//   - relatórios agregados após consumos
//   - remoção em cascata de cliente

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"petlovers/internal/config"
	"petlovers/internal/infra"
	"petlovers/internal/router"
	"petlovers/internal/worker"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	decimal.MarshalJSONWithoutQuotes = true

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("petlovers_test"),
		tcPostgres.WithUsername("petlovers"),
		tcPostgres.WithPassword("petlovers"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:            3001,
		Env:             "test",
		WorkerPoolSize:  1,
		DatabaseURL:     pgURL,
		RedisURL:        rdURL,
		CacheTTLSeconds: 60,
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	dispatcher := worker.NewDispatcher(rdb)
	r := router.New(cfg, db, rdb, dispatcher)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &testEnv{server: srv}
}

type clienteResp struct {
	ID   uint `json:"id"`
	Pets []struct {
		ID     uint   `json:"id"`
		Nome   string `json:"nome"`
		DonoID uint   `json:"donoId"`
	} `json:"pets"`
}

type produtoResp struct {
	ID      uint    `json:"id"`
	Preco   float64 `json:"preco"`
	Estoque int     `json:"estoque"`
}

func criarCliente(t *testing.T, env *testEnv, nome, email string) clienteResp {
	t.Helper()
	resp := do(t, env.server, "POST", "/api/clientes", jsonBody(t, map[string]any{
		"nome":  nome,
		"email": email,
		"pet":   map[string]any{"nome": "Rex", "tipo": "cachorro", "raca": "labrador"},
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var c clienteResp
	decodeJSON(t, resp, &c)
	return c
}

func criarProduto(t *testing.T, env *testEnv, nome string, preco float64, estoque int) produtoResp {
	t.Helper()
	resp := do(t, env.server, "POST", "/api/produtos", jsonBody(t, map[string]any{
		"nome": nome, "preco": preco, "estoque": estoque,
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var p produtoResp
	decodeJSON(t, resp, &p)
	return p
}

func listarProdutos(t *testing.T, env *testEnv) []produtoResp {
	t.Helper()
	resp := do(t, env.server, "GET", "/api/produtos", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var ps []produtoResp
	decodeJSON(t, resp, &ps)
	return ps
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_HealthReportaDependencias(t *testing.T) {
	env := setupTestEnv(t)

	resp := do(t, env.server, "GET", "/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health struct {
		OK       bool   `json:"ok"`
		DB       string `json:"db"`
		Redis    string `json:"redis"`
		DLQDepth int64  `json:"dlqDepth"`
	}
	decodeJSON(t, resp, &health)
	assert.True(t, health.OK)
	assert.Equal(t, "connected", health.DB)
	assert.Equal(t, "connected", health.Redis)
	assert.Zero(t, health.DLQDepth, "fila morta começa vazia")
}

func TestE2E_CadastroClienteComPet(t *testing.T) {
	env := setupTestEnv(t)

	c := criarCliente(t, env, "Ana Souza", "ana@example.com")
	require.NotZero(t, c.ID)
	require.Len(t, c.Pets, 1)
	assert.Equal(t, c.ID, c.Pets[0].DonoID)

	resp := do(t, env.server, "GET", "/api/clientes", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var lista []clienteResp
	decodeJSON(t, resp, &lista)
	require.Len(t, lista, 1)
	assert.Len(t, lista[0].Pets, 1)
}

func TestE2E_RegistrarConsumoDecrementaEstoque(t *testing.T) {
	env := setupTestEnv(t)

	cliente := criarCliente(t, env, "Ana Souza", "ana@example.com")
	produto := criarProduto(t, env, "Ração Premium", 7.50, 10)

	resp := do(t, env.server, "POST", "/api/consumos", jsonBody(t, map[string]any{
		"clienteId": cliente.ID,
		"items": []map[string]any{
			{"tipo": "produto", "id": produto.ID, "quantidade": 2},
		},
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	produtos := listarProdutos(t, env)
	require.Len(t, produtos, 1)
	assert.Equal(t, 8, produtos[0].Estoque)
}

func TestE2E_ConsumoComReferenciaInexistenteNaoGravaNada(t *testing.T) {
	env := setupTestEnv(t)

	cliente := criarCliente(t, env, "Ana Souza", "ana@example.com")
	produto := criarProduto(t, env, "Ração Premium", 7.50, 10)

	// Segunda linha aponta para produto inexistente: transação inteira aborta.
	resp := do(t, env.server, "POST", "/api/consumos", jsonBody(t, map[string]any{
		"clienteId": cliente.ID,
		"items": []map[string]any{
			{"tipo": "produto", "id": produto.ID, "quantidade": 2},
			{"tipo": "produto", "id": 9999, "quantidade": 1},
		},
	}))
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	produtos := listarProdutos(t, env)
	require.Len(t, produtos, 1)
	assert.Equal(t, 10, produtos[0].Estoque, "estoque intacto após falha")
}

func TestE2E_RelatoriosAposConsumos(t *testing.T) {
	env := setupTestEnv(t)

	ana := criarCliente(t, env, "Ana Souza", "ana@example.com")
	bruno := criarCliente(t, env, "Bruno Lima", "bruno@example.com")
	produto := criarProduto(t, env, "Ração Premium", 10.00, 100)

	svcResp := do(t, env.server, "POST", "/api/servicos", jsonBody(t, map[string]any{
		"nome": "Banho e tosa", "preco": 80.00,
	}))
	require.Equal(t, http.StatusCreated, svcResp.StatusCode)
	var servico struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, svcResp, &servico)

	registrar := func(clienteID uint, items []map[string]any) {
		resp := do(t, env.server, "POST", "/api/consumos", jsonBody(t, map[string]any{
			"clienteId": clienteID, "items": items,
		}))
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	registrar(ana.ID, []map[string]any{
		{"tipo": "produto", "id": produto.ID, "quantidade": 5},
		{"tipo": "servico", "id": servico.ID, "quantidade": 1, "petId": ana.Pets[0].ID},
	})
	registrar(bruno.ID, []map[string]any{
		{"tipo": "produto", "id": produto.ID, "quantidade": 2},
	})

	// Top clientes por quantidade: Ana (6) antes de Bruno (2).
	resp := do(t, env.server, "GET", "/api/relatorios/top-clientes-quantidade", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var porQuantidade []struct {
		ClienteID       uint   `json:"clienteId"`
		ClienteNome     string `json:"clienteNome"`
		TotalQuantidade int    `json:"totalQuantidade"`
	}
	decodeJSON(t, resp, &porQuantidade)
	require.Len(t, porQuantidade, 2)
	assert.Equal(t, "Ana Souza", porQuantidade[0].ClienteNome)
	assert.Equal(t, 6, porQuantidade[0].TotalQuantidade)

	// Top clientes por valor: Ana 5×10 + 80 = 130, Bruno 20.
	resp = do(t, env.server, "GET", "/api/relatorios/top-clientes-valor", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var porValor []struct {
		ClienteNome string  `json:"clienteNome"`
		TotalValor  float64 `json:"totalValor"`
	}
	decodeJSON(t, resp, &porValor)
	require.Len(t, porValor, 2)
	assert.Equal(t, "Ana Souza", porValor[0].ClienteNome)
	assert.InDelta(t, 130.00, porValor[0].TotalValor, 0.001)

	// Itens por pet: consumo com petId aparece na tabulação tipo - raça.
	resp = do(t, env.server, "GET", "/api/relatorios/top-itens-por-pet", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var porPet map[string]map[string]int
	decodeJSON(t, resp, &porPet)
	require.Contains(t, porPet, "cachorro - labrador")
	assert.Equal(t, 1, porPet["cachorro - labrador"]["Banho e tosa"])
}

func TestE2E_RemoverClienteEmCascata(t *testing.T) {
	env := setupTestEnv(t)

	cliente := criarCliente(t, env, "Ana Souza", "ana@example.com")
	produto := criarProduto(t, env, "Ração Premium", 10.00, 10)

	resp := do(t, env.server, "POST", "/api/consumos", jsonBody(t, map[string]any{
		"clienteId": cliente.ID,
		"items": []map[string]any{
			{"tipo": "produto", "id": produto.ID, "quantidade": 1, "petId": cliente.Pets[0].ID},
		},
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Cliente, pets e consumos saem juntos.
	delResp := do(t, env.server, "DELETE", "/api/clientes/"+itoa(cliente.ID), nil)
	require.Equal(t, http.StatusNoContent, delResp.StatusCode)
	delResp.Body.Close()

	listResp := do(t, env.server, "GET", "/api/clientes", nil)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var lista []clienteResp
	decodeJSON(t, listResp, &lista)
	assert.Empty(t, lista)

	// Relatório por pet volta vazio depois da cascata.
	repResp := do(t, env.server, "GET", "/api/relatorios/top-itens-por-pet", nil)
	require.Equal(t, http.StatusOK, repResp.StatusCode)
	var porPet map[string]map[string]int
	decodeJSON(t, repResp, &porPet)
	assert.Empty(t, porPet)
}

func itoa(v uint) string {
	b, _ := json.Marshal(v)
	return string(b)
}

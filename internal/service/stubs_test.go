package service_test

// In-memory repository stubs shared by the service tests. They mirror the
// persistence contracts closely enough to exercise the workflows without a
// database; transactional methods accept a nil *gorm.DB.

import (
	"context"

	"petlovers/internal/model"
	"petlovers/internal/repository"

	"gorm.io/gorm"
)

// ── Cliente ───────────────────────────────────────────────────────────────────

type stubClienteRepo struct {
	clientes map[uint]*model.Cliente
	nextID   uint
	removed  []uint
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uint]*model.Cliente)}
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	r.nextID++
	c.ID = r.nextID
	for i := range c.Pets {
		c.Pets[i].ID = r.nextID*100 + uint(i) + 1
		c.Pets[i].DonoID = c.ID
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uint) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) List(_ context.Context) ([]model.Cliente, error) {
	out := make([]model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) DeleteCascade(_ context.Context, id uint) error {
	delete(r.clientes, id)
	r.removed = append(r.removed, id)
	return nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// ── Pet ───────────────────────────────────────────────────────────────────────

type stubPetRepo struct {
	pets    map[uint]*model.Pet
	nextID  uint
	removed []uint
}

func newStubPetRepo() *stubPetRepo {
	return &stubPetRepo{pets: make(map[uint]*model.Pet)}
}

func (r *stubPetRepo) Create(_ context.Context, p *model.Pet) error {
	r.nextID++
	p.ID = r.nextID
	r.pets[p.ID] = p
	return nil
}

func (r *stubPetRepo) FindByID(_ context.Context, id uint) (*model.Pet, error) {
	p, ok := r.pets[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubPetRepo) Update(_ context.Context, p *model.Pet) error {
	r.pets[p.ID] = p
	return nil
}

func (r *stubPetRepo) DeleteCascade(_ context.Context, id uint) error {
	delete(r.pets, id)
	r.removed = append(r.removed, id)
	return nil
}

var _ repository.PetRepository = (*stubPetRepo)(nil)

// ── Produto ───────────────────────────────────────────────────────────────────

type stubProdutoRepo struct {
	produtos map[uint]*model.Produto
	nextID   uint
}

func newStubProdutoRepo() *stubProdutoRepo {
	return &stubProdutoRepo{produtos: make(map[uint]*model.Produto)}
}

func (r *stubProdutoRepo) Create(_ context.Context, p *model.Produto) error {
	if p.ID == 0 {
		r.nextID++
		p.ID = r.nextID
	}
	r.produtos[p.ID] = p
	return nil
}

func (r *stubProdutoRepo) FindByID(_ context.Context, id uint) (*model.Produto, error) {
	p, ok := r.produtos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProdutoRepo) List(_ context.Context) ([]model.Produto, error) {
	out := make([]model.Produto, 0, len(r.produtos))
	for _, p := range r.produtos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProdutoRepo) Update(_ context.Context, p *model.Produto) error {
	r.produtos[p.ID] = p
	return nil
}

func (r *stubProdutoRepo) DeleteCascade(_ context.Context, id uint) error {
	delete(r.produtos, id)
	return nil
}

func (r *stubProdutoRepo) FindByIDForUpdateTx(_ *gorm.DB, id uint) (*model.Produto, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubProdutoRepo) DescontarEstoqueTx(_ *gorm.DB, id uint, quantidade int) error {
	p, ok := r.produtos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Estoque -= quantidade
	return nil
}

var _ repository.ProdutoRepository = (*stubProdutoRepo)(nil)

// ── Servico ───────────────────────────────────────────────────────────────────

type stubServicoRepo struct {
	servicos map[uint]*model.Servico
	nextID   uint
}

func newStubServicoRepo() *stubServicoRepo {
	return &stubServicoRepo{servicos: make(map[uint]*model.Servico)}
}

func (r *stubServicoRepo) Create(_ context.Context, s *model.Servico) error {
	if s.ID == 0 {
		r.nextID++
		s.ID = r.nextID
	}
	r.servicos[s.ID] = s
	return nil
}

func (r *stubServicoRepo) FindByID(_ context.Context, id uint) (*model.Servico, error) {
	s, ok := r.servicos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubServicoRepo) List(_ context.Context) ([]model.Servico, error) {
	out := make([]model.Servico, 0, len(r.servicos))
	for _, s := range r.servicos {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubServicoRepo) Update(_ context.Context, s *model.Servico) error {
	r.servicos[s.ID] = s
	return nil
}

func (r *stubServicoRepo) DeleteCascade(_ context.Context, id uint) error {
	delete(r.servicos, id)
	return nil
}

func (r *stubServicoRepo) FindByIDTx(_ *gorm.DB, id uint) (*model.Servico, error) {
	return r.FindByID(context.Background(), id)
}

var _ repository.ServicoRepository = (*stubServicoRepo)(nil)

// ── Consumo ───────────────────────────────────────────────────────────────────

type stubConsumoRepo struct {
	consumos []model.Consumo
	nextID   uint
}

func newStubConsumoRepo() *stubConsumoRepo { return &stubConsumoRepo{} }

func (r *stubConsumoRepo) CreateTx(_ *gorm.DB, c *model.Consumo) error {
	r.nextID++
	c.ID = r.nextID
	r.consumos = append(r.consumos, *c)
	return nil
}

func (r *stubConsumoRepo) List(_ context.Context) ([]model.Consumo, error) {
	return r.consumos, nil
}

func (r *stubConsumoRepo) DB() *gorm.DB { return nil }

var _ repository.ConsumoRepository = (*stubConsumoRepo)(nil)

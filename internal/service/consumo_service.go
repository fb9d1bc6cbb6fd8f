package service

import (
	"context"
	"errors"
	"fmt"

	"petlovers/internal/dto"
	"petlovers/internal/model"
	"petlovers/internal/repository"
	"petlovers/internal/worker"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrPetDeOutroCliente is returned when a line item names a pet that does not
// belong to the client registering the consumption.
var ErrPetDeOutroCliente = errors.New("o pet informado não pertence ao cliente")

// ConsumoService is the consumption-registration workflow: it resolves current
// prices, decrements product stock and persists one record per line item,
// all-or-nothing per request.
type ConsumoService interface {
	Registrar(ctx context.Context, req dto.RegistrarConsumoRequest) error
}

type consumoService struct {
	repo        repository.ConsumoRepository
	clienteRepo repository.ClienteRepository
	petRepo     repository.PetRepository
	produtoRepo repository.ProdutoRepository
	servicoRepo repository.ServicoRepository
	dispatcher  *worker.Dispatcher
}

func NewConsumoService(
	repo repository.ConsumoRepository,
	clienteRepo repository.ClienteRepository,
	petRepo repository.PetRepository,
	produtoRepo repository.ProdutoRepository,
	servicoRepo repository.ServicoRepository,
	dispatcher *worker.Dispatcher,
) ConsumoService {
	return &consumoService{
		repo:        repo,
		clienteRepo: clienteRepo,
		petRepo:     petRepo,
		produtoRepo: produtoRepo,
		servicoRepo: servicoRepo,
		dispatcher:  dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// Registrar records a purchase event:
//  1. Resolve cliente and any per-line pets (pre-flight, outside TX).
//  2. Resolve every referenced produto/servico — a single missing id aborts
//     the whole call before anything is written.
//  3. BEGIN TX: per line, lock the product row (SELECT … FOR UPDATE), re-read
//     the unit price under the lock, decrement estoque, insert one Consumo
//     with precoTotal = preço × quantidade.
//  4. COMMIT — partial application is never observable.
//  5. (async) enqueue a report-cache refresh job.
//
// Stock may go negative: a shortfall is treated as a back-order and logged,
// not rejected.
func (s *consumoService) Registrar(ctx context.Context, req dto.RegistrarConsumoRequest) error {
	// 1. Cliente must exist
	if _, err := s.clienteRepo.FindByID(ctx, req.ClienteID); err != nil {
		return &NotFoundError{Recurso: "Cliente", ID: req.ClienteID}
	}

	// Per-line pets must exist and belong to the cliente
	for _, item := range req.Items {
		if item.PetID == nil {
			continue
		}
		pet, err := s.petRepo.FindByID(ctx, *item.PetID)
		if err != nil {
			return &NotFoundError{Recurso: "Pet", ID: *item.PetID}
		}
		if pet.DonoID != req.ClienteID {
			return fmt.Errorf("%w: pet %d, cliente %d", ErrPetDeOutroCliente, *item.PetID, req.ClienteID)
		}
	}

	// 2. Pre-flight item resolution — fail fast before touching stock
	for _, item := range req.Items {
		switch item.Tipo {
		case "produto":
			if _, err := s.produtoRepo.FindByID(ctx, item.ID); err != nil {
				return &NotFoundError{Recurso: "Produto", ID: item.ID}
			}
		case "servico":
			if _, err := s.servicoRepo.FindByID(ctx, item.ID); err != nil {
				return &NotFoundError{Recurso: "Serviço", ID: item.ID}
			}
		}
	}

	// 3–4. ACID transaction: price snapshot, stock decrement, one row per line,
	// in the order the lines were submitted.
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for _, item := range req.Items {
			consumo := model.Consumo{
				ClienteID:  req.ClienteID,
				PetID:      item.PetID,
				Quantidade: item.Quantidade,
			}

			var preco decimal.Decimal
			switch item.Tipo {
			case "produto":
				produto, err := s.produtoRepo.FindByIDForUpdateTx(tx, item.ID)
				if err != nil {
					return &NotFoundError{Recurso: "Produto", ID: item.ID}
				}
				if err := s.produtoRepo.DescontarEstoqueTx(tx, item.ID, item.Quantidade); err != nil {
					return err
				}
				if produto.Estoque < item.Quantidade {
					log.Warn().
						Uint("produto_id", produto.ID).
						Int("estoque", produto.Estoque).
						Int("quantidade", item.Quantidade).
						Msg("estoque ficou negativo (encomenda em atraso)")
				}
				preco = produto.Preco
				id := item.ID
				consumo.ProdutoID = &id
			case "servico":
				servico, err := s.servicoRepo.FindByIDTx(tx, item.ID)
				if err != nil {
					return &NotFoundError{Recurso: "Serviço", ID: item.ID}
				}
				preco = servico.Preco
				id := item.ID
				consumo.ServicoID = &id
			default:
				return fmt.Errorf("tipo de item desconhecido: %q", item.Tipo)
			}

			consumo.PrecoTotal = preco.Mul(decimal.NewFromInt(int64(item.Quantidade)))
			if err := s.repo.CreateTx(tx, &consumo); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return txErr
	}

	// 5. Warm the report cache (best-effort — fire & forget)
	if s.dispatcher != nil {
		if err := s.dispatcher.EnqueueAtualizarRelatorios(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to enqueue report refresh")
		}
	}
	return nil
}

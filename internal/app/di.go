package app

import (
	"context"
	"io"

	repository "github.com/you-humble/rocket-maintenance/autoparts/internal/repository/part"
	service "github.com/you-humble/rocket-maintenance/autoparts/internal/service/part"
	store "github.com/you-humble/rocket-maintenance/autoparts/internal/transport/console/store/v1"
	"github.com/you-humble/rocket-maintenance/autoparts/platform/console"
	"github.com/you-humble/rocket-maintenance/autoparts/platform/console/middleware"
	"github.com/you-humble/rocket-maintenance/autoparts/platform/logger"
)

type PartRepository interface {
	service.PartRepository
	repository.BatchCreator
}

type StoreHandler interface {
	Serve(ctx context.Context) error
}

type di struct {
	in  io.Reader
	out io.Writer

	repository PartRepository
	service    store.InventoryService

	reader  *console.LineReader
	handler StoreHandler
}

func NewDI(in io.Reader, out io.Writer) *di { return &di{in: in, out: out} }

func (d *di) PartsRepository(_ context.Context) PartRepository {
	if d.repository == nil {
		d.repository = repository.NewPartRepository()
	}

	return d.repository
}

func (d *di) InventoryService(ctx context.Context) store.InventoryService {
	if d.service == nil {
		d.service = service.NewInventoryService(d.PartsRepository(ctx))
	}

	return d.service
}

func (d *di) LineReader(_ context.Context) *console.LineReader {
	if d.reader == nil {
		d.reader = console.NewLineReader(d.in)
	}

	return d.reader
}

func (d *di) StoreHandler(ctx context.Context) StoreHandler {
	if d.handler == nil {
		d.handler = store.NewStoreHandler(
			d.InventoryService(ctx),
			d.LineReader(ctx),
			d.out,
			middleware.Logging(logger.L()),
			middleware.Recovery(logger.L()),
		)
	}

	return d.handler
}

package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/you-humble/rocket-maintenance/autoparts/internal/converter"
	"github.com/you-humble/rocket-maintenance/autoparts/internal/model"
	"github.com/you-humble/rocket-maintenance/autoparts/platform/console"
	"github.com/you-humble/rocket-maintenance/autoparts/platform/logger"
)

type InventoryService interface {
	AddPart(ctx context.Context, p model.Part) error
	SearchPart(ctx context.Context, name string) (model.Part, error)
	RemovePart(ctx context.Context, name string) (model.Part, error)
	ListParts(ctx context.Context) ([]model.Part, error)
	TotalValue(ctx context.Context) (float64, error)
}

type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

type handler struct {
	svc      InventoryService
	in       LineReader
	out      io.Writer
	dispatch console.ActionHandler
}

func NewStoreHandler(
	svc InventoryService,
	in LineReader,
	out io.Writer,
	middlewares ...console.Middleware,
) *handler {
	h := &handler{svc: svc, in: in, out: out}
	h.dispatch = console.Chain(h.handle, middlewares...)
	return h
}

// Serve runs the menu loop until the user exits, the input ends or ctx is done.
func (h *handler) Serve(ctx context.Context) error {
	for {
		h.print(menuText)

		line, err := h.in.ReadLine(ctx)
		if err != nil {
			return h.stop(ctx, err)
		}

		option := converter.ParseOption(line)
		if option == OptionExit {
			h.println(msgExit)
			return nil
		}

		err = h.dispatch(ctx, console.Action{Option: option, Name: actionName(option)})
		if err == nil {
			continue
		}
		if inputClosed(err) {
			return h.stop(ctx, err)
		}
		h.printf(msgError, err.Error())
	}
}

func (h *handler) handle(ctx context.Context, action console.Action) error {
	switch action.Option {
	case OptionAddElectrical:
		return h.addPart(ctx, electricalForm)
	case OptionAddMechanical:
		return h.addPart(ctx, mechanicalForm)
	case OptionSearch:
		return h.searchPart(ctx)
	case OptionRemove:
		return h.removePart(ctx)
	case OptionList:
		return h.listParts(ctx)
	case OptionTotalValue:
		return h.totalValue(ctx)
	default:
		h.println(msgInvalid)
		return nil
	}
}

// partForm describes the prompt that differs between categories.
type partForm struct {
	title       string
	extraPrompt string
	parseExtra  func(string) (float64, error)
	build       func(name string, price float64, qty int64, extra float64) model.Part
}

var (
	electricalForm = partForm{
		title:       msgAddElectrical,
		extraPrompt: promptVoltage,
		parseExtra:  converter.ParseVoltage,
		build: func(name string, price float64, qty int64, voltage float64) model.Part {
			return converter.ElectricalPartToModel(name, price, qty, voltage)
		},
	}
	mechanicalForm = partForm{
		title:       msgAddMechanical,
		extraPrompt: promptWeight,
		parseExtra:  converter.ParseWeight,
		build: func(name string, price float64, qty int64, weight float64) model.Part {
			return converter.MechanicalPartToModel(name, price, qty, weight)
		},
	}
)

// addPart stops at the first answer that does not parse; nothing is stored then.
func (h *handler) addPart(ctx context.Context, form partForm) error {
	h.println(form.title)

	rawName, err := h.ask(ctx, promptName)
	if err != nil {
		return err
	}
	name := converter.ParseName(rawName)

	price, err := h.askNumber(ctx, promptPrice, converter.ParsePrice)
	if err != nil {
		return err
	}

	rawQty, err := h.ask(ctx, promptQuantity)
	if err != nil {
		return err
	}
	qty, err := converter.ParseQuantity(rawQty)
	if err != nil {
		return err
	}

	extra, err := h.askNumber(ctx, form.extraPrompt, form.parseExtra)
	if err != nil {
		return err
	}

	if err := h.svc.AddPart(ctx, form.build(name, price, qty, extra)); err != nil {
		return err
	}
	h.printf(msgAdded, name)
	return nil
}

func (h *handler) searchPart(ctx context.Context) error {
	rawName, err := h.ask(ctx, promptSearch)
	if err != nil {
		return err
	}
	name := converter.ParseName(rawName)

	p, err := h.svc.SearchPart(ctx, name)
	switch {
	case errors.Is(err, model.ErrPartNotFound):
		h.printf(msgNotFound, name)
		return nil
	case err != nil:
		return err
	}

	h.printf(msgFound, p.Details())
	return nil
}

func (h *handler) removePart(ctx context.Context) error {
	rawName, err := h.ask(ctx, promptRemove)
	if err != nil {
		return err
	}
	name := converter.ParseName(rawName)

	_, err = h.svc.RemovePart(ctx, name)
	switch {
	case errors.Is(err, model.ErrPartNotFound):
		h.printf(msgNotFound, name)
		return nil
	case err != nil:
		return err
	}

	h.printf(msgRemoved, name)
	return nil
}

func (h *handler) listParts(ctx context.Context) error {
	parts, err := h.svc.ListParts(ctx)
	if err != nil {
		return err
	}

	if len(parts) == 0 {
		h.println(msgEmpty)
		return nil
	}

	h.println(msgListHeader)
	for _, p := range parts {
		h.println(p.Details())
	}
	return nil
}

func (h *handler) totalValue(ctx context.Context) error {
	total, err := h.svc.TotalValue(ctx)
	if err != nil {
		return err
	}

	h.printf(msgTotal, total)
	return nil
}

func (h *handler) ask(ctx context.Context, prompt string) (string, error) {
	h.print(prompt)
	return h.in.ReadLine(ctx)
}

func (h *handler) askNumber(ctx context.Context, prompt string, parse func(string) (float64, error)) (float64, error) {
	raw, err := h.ask(ctx, prompt)
	if err != nil {
		return 0, err
	}
	return parse(raw)
}

// stop ends the loop quietly when input ran out or ctx was cancelled.
func (h *handler) stop(ctx context.Context, err error) error {
	if errors.Is(err, io.EOF) {
		logger.Info(ctx, "input closed, leaving the store")
		h.println()
		h.println(msgExit)
		return nil
	}
	if ctx.Err() != nil {
		logger.Info(ctx, "menu loop cancelled", logger.ErrorF(err))
		return nil
	}
	return err
}

func inputClosed(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func (h *handler) print(a ...any)                 { _, _ = fmt.Fprint(h.out, a...) }
func (h *handler) println(a ...any)               { _, _ = fmt.Fprintln(h.out, a...) }
func (h *handler) printf(format string, a ...any) { _, _ = fmt.Fprintf(h.out, format, a...) }

// Package zoom wires zoom actions into the dispatcher.
package zoom

import (
	"github.com/dshills/zoomfold/internal/dispatcher"
	"github.com/dshills/zoomfold/internal/input"
	"github.com/dshills/zoomfold/internal/zoom/controller"
)

// Handler dispatches zoom namespace actions to the zoom controller.
type Handler struct {
	*dispatcher.BaseNamespaceHandler
	controller *controller.Controller
}

// NewHandler creates a zoom namespace handler.
func NewHandler(c *controller.Controller) *Handler {
	h := &Handler{
		BaseNamespaceHandler: dispatcher.NewBaseNamespaceHandler("zoom"),
		controller:           c,
	}
	h.Register("zoom.in", h.handleZoomIn)
	h.Register("zoom.out", h.handleZoomOut)
	return h
}

func (h *Handler) handleZoomIn(_ input.Action, ctx *dispatcher.Context) dispatcher.Result {
	if ctx.Snapshot == nil {
		return dispatcher.Errorf("zoom.in: no active document")
	}
	if !h.controller.ZoomIn(ctx.Ctx, ctx.Snapshot) {
		return dispatcher.NoOp()
	}
	return dispatcher.OK()
}

func (h *Handler) handleZoomOut(_ input.Action, ctx *dispatcher.Context) dispatcher.Result {
	if ctx.Snapshot == nil {
		return dispatcher.Errorf("zoom.out: no active document")
	}
	h.controller.ZoomOut(ctx.Ctx, ctx.Snapshot)
	return dispatcher.OK()
}

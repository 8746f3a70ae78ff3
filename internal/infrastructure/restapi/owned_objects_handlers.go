package restapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"object_explorer/internal/app/port"
	"object_explorer/internal/app/service"
	"object_explorer/internal/domain/entity"
)

// PanelInputsRequest is the body of PUT /panels/:panelId/inputs and the
// optional body of POST /panels.
type PanelInputsRequest struct {
	OwnerID        string `json:"ownerId" binding:"required"`
	ByParentObject bool   `json:"byParentObject"`
	Network        string `json:"network"`
}

func (r PanelInputsRequest) inputs() entity.PanelInputs {
	return entity.PanelInputs{OwnerID: r.OwnerID, ByParentObject: r.ByParentObject, Network: r.Network}
}

// PageRequest is the body of the page change endpoints. Page only has to be
// present; zero and negative pages select an empty window.
type PageRequest struct {
	Page *int `json:"page" binding:"required"`
}

// ExpandRequest is the body of PUT /panels/:panelId/coins/expanded.
// With Toggle set an already open group is closed instead.
type ExpandRequest struct {
	TypeTag string `json:"typeTag" binding:"required"`
	Toggle  bool   `json:"toggle"`
}

// PanelResponse is the data of every panel endpoint.
type PanelResponse struct {
	PanelID string                  `json:"panelId"`
	View    entity.OwnedObjectsView `json:"view"`
}

// OwnedObjectsHandler serves owned-object views, one-shot and per panel.
type OwnedObjectsHandler struct {
	ownedService port.OwnedObjectsService
	panels       *service.PanelRegistry
	logger       port.Logger
}

// NewOwnedObjectsHandler creates a new OwnedObjectsHandler.
func NewOwnedObjectsHandler(ownedSvc port.OwnedObjectsService, panels *service.PanelRegistry, logger port.Logger) *OwnedObjectsHandler {
	return &OwnedObjectsHandler{ownedService: ownedSvc, panels: panels, logger: logger}
}

// GetOwnedObjectsHandler handles GET /owners/:ownerId/objects.
func (h *OwnedObjectsHandler) GetOwnedObjectsHandler(c *gin.Context) {
	byObject, err := queryBool(c, "byObject")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	coinPage, err := queryInt(c, "coinPage", 1)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	nftPage, err := queryInt(c, "nftPage", 1)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	in := entity.PanelInputs{OwnerID: c.Param("ownerId"), ByParentObject: byObject, Network: c.Query("network")}
	coins := service.ExpandGroup(service.OnPageChange(entity.ViewState{}, coinPage), c.Query("expanded"))

	view, err := h.ownedService.GetOwnedObjectsView(c.Request.Context(), in, coins, nftPage)
	if err != nil {
		h.logger.Warn("Owned objects request failed", "owner", in.OwnerID, "network", in.Network, "error", err)
		if errors.Is(err, entity.ErrFetchFailed) {
			c.JSON(http.StatusBadGateway, APIResponse{Data: view, StatusMessage: view.Message})
			return
		}
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, APIResponse{Data: view, StatusMessage: "Owned objects retrieved successfully."})
}

// CreatePanelHandler handles POST /panels. A body with inputs dispatches the
// first fetch right away.
func (h *OwnedObjectsHandler) CreatePanelHandler(c *gin.Context) {
	var req *PanelInputsRequest
	if c.Request.ContentLength > 0 {
		req = &PanelInputsRequest{}
		if err := c.ShouldBindJSON(req); err != nil {
			respondBadRequest(c, err.Error())
			return
		}
	}

	panel := h.panels.Create()
	if req == nil {
		c.JSON(http.StatusCreated, APIResponse{Data: PanelResponse{PanelID: panel.ID(), View: panel.View()}, StatusMessage: "Panel created."})
		return
	}

	err := panel.SetInputs(c.Request.Context(), req.inputs())
	resp := PanelResponse{PanelID: panel.ID(), View: panel.View()}
	if err != nil {
		respondError(c, err, resp)
		return
	}
	c.JSON(http.StatusCreated, APIResponse{Data: resp, StatusMessage: "Panel created."})
}

// GetPanelHandler handles GET /panels/:panelId.
func (h *OwnedObjectsHandler) GetPanelHandler(c *gin.Context) {
	panel, ok := h.lookup(c)
	if !ok {
		return
	}
	h.respondPanel(c, panel)
}

// DeletePanelHandler handles DELETE /panels/:panelId.
func (h *OwnedObjectsHandler) DeletePanelHandler(c *gin.Context) {
	if err := h.panels.Delete(c.Param("panelId")); err != nil {
		respondError(c, err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetInputsHandler handles PUT /panels/:panelId/inputs. It waits for the
// fetch; a request superseded by a newer one answers 409 with the view of the
// newer request.
func (h *OwnedObjectsHandler) SetInputsHandler(c *gin.Context) {
	var req PanelInputsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	panel, ok := h.lookup(c)
	if !ok {
		return
	}

	if err := panel.SetInputs(c.Request.Context(), req.inputs()); err != nil {
		h.logger.Debug("Panel fetch did not commit cleanly", "panel", panel.ID(), "error", err)
		respondError(c, err, PanelResponse{PanelID: panel.ID(), View: panel.View()})
		return
	}
	h.respondPanel(c, panel)
}

// SetCoinPageHandler handles PUT /panels/:panelId/coins/page.
func (h *OwnedObjectsHandler) SetCoinPageHandler(c *gin.Context) {
	var req PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	panel, ok := h.lookup(c)
	if !ok {
		return
	}
	panel.OnCoinPageChange(*req.Page)
	h.respondPanel(c, panel)
}

// ExpandGroupHandler handles PUT /panels/:panelId/coins/expanded.
func (h *OwnedObjectsHandler) ExpandGroupHandler(c *gin.Context) {
	var req ExpandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	panel, ok := h.lookup(c)
	if !ok {
		return
	}
	if req.Toggle {
		panel.ToggleGroup(req.TypeTag)
	} else {
		panel.ExpandGroup(req.TypeTag)
	}
	h.respondPanel(c, panel)
}

// CollapseGroupHandler handles DELETE /panels/:panelId/coins/expanded.
func (h *OwnedObjectsHandler) CollapseGroupHandler(c *gin.Context) {
	panel, ok := h.lookup(c)
	if !ok {
		return
	}
	panel.CollapseGroup()
	h.respondPanel(c, panel)
}

// SetNFTPageHandler handles PUT /panels/:panelId/nfts/page.
func (h *OwnedObjectsHandler) SetNFTPageHandler(c *gin.Context) {
	var req PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	panel, ok := h.lookup(c)
	if !ok {
		return
	}
	panel.OnNFTPageChange(*req.Page)
	h.respondPanel(c, panel)
}

func (h *OwnedObjectsHandler) lookup(c *gin.Context) (*service.Panel, bool) {
	panel, err := h.panels.Get(c.Param("panelId"))
	if err != nil {
		respondError(c, err, nil)
		return nil, false
	}
	return panel, true
}

func (h *OwnedObjectsHandler) respondPanel(c *gin.Context, panel *service.Panel) {
	c.JSON(http.StatusOK, APIResponse{
		Data:          PanelResponse{PanelID: panel.ID(), View: panel.View()},
		StatusMessage: "Panel state retrieved successfully.",
	})
}

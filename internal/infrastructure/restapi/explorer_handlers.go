package restapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"object_explorer/internal/app/port"
	"object_explorer/internal/domain/entity"
)

// NetworkResponse is one entry of GET /networks.
type NetworkResponse struct {
	entity.NetworkDefinition
	Default bool `json:"default"`
}

// ExplorerHandler serves the module viewer, staking summaries and the
// network list.
type ExplorerHandler struct {
	moduleService  port.ModuleService
	stakingService port.StakingService
	networks       port.NetworkDefinitionProvider
	logger         port.Logger
}

// NewExplorerHandler creates a new ExplorerHandler.
func NewExplorerHandler(ms port.ModuleService, ss port.StakingService, np port.NetworkDefinitionProvider, logger port.Logger) *ExplorerHandler {
	return &ExplorerHandler{moduleService: ms, stakingService: ss, networks: np, logger: logger}
}

// GetModulesHandler handles GET /packages/:packageId/modules.
func (h *ExplorerHandler) GetModulesHandler(c *gin.Context) {
	page, err := queryInt(c, "page", 1)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	packageID := c.Param("packageId")

	modules, err := h.moduleService.GetModulesPage(c.Request.Context(), c.Query("network"), packageID, page)
	if err != nil {
		h.logger.Warn("Modules request failed", "package", packageID, "error", err)
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, APIResponse{Data: modules, StatusMessage: "Modules retrieved successfully."})
}

// GetStakingHandler handles GET /owners/:ownerId/staking.
func (h *ExplorerHandler) GetStakingHandler(c *gin.Context) {
	owner := c.Param("ownerId")
	summary, err := h.stakingService.GetStakingSummary(c.Request.Context(), c.Query("network"), owner)
	if err != nil {
		h.logger.Warn("Staking request failed", "owner", owner, "error", err)
		respondError(c, err, nil)
		return
	}

	msg := "Delegations retrieved successfully."
	if len(summary.Delegations) == 0 {
		msg = "No delegations found for this address."
	}
	c.JSON(http.StatusOK, APIResponse{Data: summary, StatusMessage: msg})
}

// ListNetworksHandler handles GET /networks.
func (h *ExplorerHandler) ListNetworksHandler(c *gin.Context) {
	defs := h.networks.GetAllNetworkDefinitions()
	def := h.networks.DefaultNetwork()
	out := make([]NetworkResponse, 0, len(defs))
	for _, d := range defs {
		out = append(out, NetworkResponse{NetworkDefinition: d, Default: d.Identifier == def})
	}
	c.JSON(http.StatusOK, APIResponse{Data: out, StatusMessage: "Networks retrieved successfully."})
}

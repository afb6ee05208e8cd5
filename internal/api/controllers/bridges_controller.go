package controllers

import (
	"net/http"

	"bridges/internal/models/request_models"
	"bridges/internal/services"
	"bridges/pkg/utils"
	"github.com/gin-gonic/gin"
)

type BridgesController struct {
	bridgeService services.BridgeServiceInterface
}

func NewBridgesController(bridgeService services.BridgeServiceInterface) *BridgesController {
	return &BridgesController{
		bridgeService: bridgeService,
	}
}

// GetBridge godoc
// @Summary Get a bridge
// @Description Bridge attributes with district, state and country names
// @Tags Bridges
// @Produce json
// @Param id path int true "Bridge ID"
// @Success 200 {object} response_models.BridgeDetail
// @Failure 404 {object} utils.APIResponse
// @Router /api/bridges/{id} [get]
func (b *BridgesController) GetBridge(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, "Bridge not found")
		return
	}

	bridge, err := b.bridgeService.GetBridge(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, bridge)
}

// Search godoc
// @Summary Search bridges
// @Description Case-insensitive match on name, river name and description
// @Tags Bridges
// @Produce json
// @Param q query string false "Keyword"
// @Success 200 {array} response_models.BridgeSummary
// @Router /api/search [get]
func (b *BridgesController) Search(c *gin.Context) {
	results, err := b.bridgeService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// CreateBridge godoc
// @Summary Create a bridge
// @Tags Bridges
// @Accept json
// @Produce json
// @Param request body request_models.CreateBridgeRequest true "Bridge payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/bridges [post]
func (b *BridgesController) CreateBridge(c *gin.Context) {
	var req request_models.CreateBridgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	bridge, err := b.bridgeService.CreateBridge(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondWithStatus(c, http.StatusCreated, bridge, "Bridge created successfully")
}

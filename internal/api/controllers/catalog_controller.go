package controllers

import (
	"context"
	"net/http"

	"bridges/internal/models/response_models"
	"bridges/internal/services"
	"bridges/pkg/utils"
	"github.com/gin-gonic/gin"
)

// CatalogController serves the cascading lookups. A missing or malformed
// parent id answers an empty list rather than an error.
type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// ListCountries godoc
// @Summary List countries
// @Tags Catalog
// @Produce json
// @Success 200 {array} response_models.NamedItem
// @Router /api/countries [get]
func (cc *CatalogController) ListCountries(c *gin.Context) {
	items, err := cc.catalogService.ListCountries(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListStates godoc
// @Summary List states of a country
// @Tags Catalog
// @Produce json
// @Param country_id query int false "Country ID"
// @Success 200 {array} response_models.NamedItem
// @Router /api/states [get]
func (cc *CatalogController) ListStates(c *gin.Context) {
	cc.listChildren(c, "country_id", cc.catalogService.ListStates)
}

// ListDistricts godoc
// @Summary List districts of a state
// @Tags Catalog
// @Produce json
// @Param state_id query int false "State ID"
// @Success 200 {array} response_models.NamedItem
// @Router /api/districts [get]
func (cc *CatalogController) ListDistricts(c *gin.Context) {
	cc.listChildren(c, "state_id", cc.catalogService.ListDistricts)
}

// ListBridges godoc
// @Summary List bridges of a district
// @Tags Catalog
// @Produce json
// @Param district_id query int false "District ID"
// @Success 200 {array} response_models.NamedItem
// @Router /api/bridges [get]
func (cc *CatalogController) ListBridges(c *gin.Context) {
	cc.listChildren(c, "district_id", cc.catalogService.ListBridges)
}

func (cc *CatalogController) listChildren(
	c *gin.Context,
	param string,
	list func(ctx context.Context, parentID uint) ([]response_models.NamedItem, error)) {

	parentID, ok := parseID(c.Query(param))
	if !ok {
		c.JSON(http.StatusOK, []response_models.NamedItem{})
		return
	}

	items, err := list(c.Request.Context(), parentID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"bridges/internal/services"
	"bridges/pkg/utils"
	"github.com/gin-gonic/gin"
)

type PagesController struct {
	catalogService services.CatalogServiceInterface
	bridgeService  services.BridgeServiceInterface
}

func NewPagesController(
	catalogService services.CatalogServiceInterface,
	bridgeService services.BridgeServiceInterface) *PagesController {

	return &PagesController{
		catalogService: catalogService,
		bridgeService:  bridgeService,
	}
}

// Home lists the countries and a small sample of bridges.
func (p *PagesController) Home(c *gin.Context) {
	ctx := c.Request.Context()

	countries, err := p.catalogService.ListCountries(ctx)
	if err != nil {
		renderError(c, err)
		return
	}

	bridges, err := p.catalogService.FeaturedBridges(ctx)
	if err != nil {
		renderError(c, err)
		return
	}

	renderPage(c, http.StatusOK, "home.html", gin.H{
		"Countries": countries,
		"Bridges":   bridges,
	})
}

// Search renders the matches for ?q=. A single match goes straight to the
// bridge page.
func (p *PagesController) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	results, err := p.bridgeService.Search(c.Request.Context(), query)
	if err != nil {
		renderError(c, err)
		return
	}

	if len(results) == 1 {
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/bridge/%d", results[0].ID))
		return
	}

	renderPage(c, http.StatusOK, "search_results.html", gin.H{
		"Title":   "Search",
		"Query":   query,
		"Results": results,
	})
}

func (p *PagesController) BridgeDetail(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		renderError(c, utils.ErrBridgeNotFound)
		return
	}

	bridge, err := p.bridgeService.GetBridge(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}

	renderPage(c, http.StatusOK, "bridge_detail.html", gin.H{
		"Title":  bridge.Name,
		"Bridge": bridge,
	})
}

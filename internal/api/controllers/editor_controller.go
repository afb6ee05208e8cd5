package controllers

import (
	"errors"
	"net/http"

	"bridges/internal/models/request_models"
	"bridges/internal/services"
	"bridges/pkg/utils"
	"github.com/gin-gonic/gin"
)

type EditorController struct {
	catalogService services.CatalogServiceInterface
	bridgeService  services.BridgeServiceInterface
}

func NewEditorController(
	catalogService services.CatalogServiceInterface,
	bridgeService services.BridgeServiceInterface) *EditorController {

	return &EditorController{
		catalogService: catalogService,
		bridgeService:  bridgeService,
	}
}

func (e *EditorController) AddBridgeForm(c *gin.Context) {
	e.renderForm(c, http.StatusOK, request_models.CreateBridgeForm{}, "")
}

func (e *EditorController) AddBridge(c *gin.Context) {
	var form request_models.CreateBridgeForm
	if err := c.ShouldBind(&form); err != nil {
		e.renderForm(c, http.StatusBadRequest, form, "Invalid form submission")
		return
	}

	file, err := c.FormFile("image_file")
	switch {
	case err == nil:
		form.ImageFile = file
	case !errors.Is(err, http.ErrMissingFile):
		e.renderForm(c, http.StatusBadRequest, form, "Could not read the uploaded file")
		return
	}

	if _, err := e.bridgeService.CreateBridgeFromForm(c.Request.Context(), form); err != nil {
		if utils.IsSubmissionError(err) {
			e.renderForm(c, utils.StatusForError(err), form, err.Error())
			return
		}
		renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (e *EditorController) renderForm(c *gin.Context, code int, form request_models.CreateBridgeForm, message string) {
	countries, err := e.catalogService.ListCountries(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	renderPage(c, code, "add_bridge.html", gin.H{
		"Title":     "Add bridge",
		"Countries": countries,
		"Form":      form,
		"Error":     message,
	})
}

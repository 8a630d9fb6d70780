package handlers

import (
	"net/http"

	response "jobledger/internal/adapter/http/dto/response"
	"jobledger/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// ListStatuses godoc
// @Summary      Lifecycle statuses in order, with UI gating flags
// @Tags         workflow
// @Produce      json
// @Success      200  {object}  response.Result{data=[]response.StatusResponse}
// @Router       /workflow/statuses [get]
func ListStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, response.OK(response.FromStatuses(entities.JobStatuses())))
}

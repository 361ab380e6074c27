package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tieubaoca/reporto-be/types"
)

func HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, types.StatusResponse{Status: "ok"})
}

package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/nsmosa/alumni-portal-api/internal/identity"
	"github.com/nsmosa/alumni-portal-api/internal/middleware"
)

func principalFromContext(c *gin.Context) (identity.AdminPrincipal, bool) {
	return middleware.AdminFromContext(c)
}

package rbac

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, handler *Handler) {
	internal := r.Group("/internal/rbac")
	{
		internal.POST("/enforce", handler.Enforce)
	}
}

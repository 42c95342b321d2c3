package router

import (
	"github.com/gin-gonic/gin"

	"supercut/internal/handler"
)

func SetupRouter(r *gin.Engine, hdl *handler.Handler) {
	api := r.Group("/api")
	{
		api.POST("/compilation", hdl.CreateCompilation)
		api.GET("/compilation", hdl.GetCompilation)
		api.GET("/compilation/history", hdl.GetCompilationHistory)
		api.DELETE("/compilation/:taskId", hdl.DeleteCompilation)

		api.POST("/subclip", hdl.CreateSubClip)

		api.GET("/catalog/movies", hdl.GetMovies)
		api.PUT("/catalog/movies/:videoId/tags", hdl.ReplaceMovieTags)

		api.GET("/neighbors", hdl.GetNeighbors)
	}
}

package config

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// SetupGin monta o engine usado pelo stub backend local.
func SetupGin() *gin.Engine {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Logger + Recovery (evita que um panic derrube o servidor)
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Limite de corpo (1 MB cobre os payloads do marketplace)
	router.Use(func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, 1*1024*1024)
		c.Next()
	})

	// Tratador global: transforma c.Error em resposta JSON uniforme
	router.Use(func(c *gin.Context) {
		c.Next()

		err := c.Errors.Last()
		if err != nil {
			code := http.StatusInternalServerError
			if meta, ok := err.Meta.(int); ok {
				code = meta
			}
			c.JSON(code, gin.H{
				"error":   true,
				"message": err.Error(),
			})
		}
	})

	return router
}

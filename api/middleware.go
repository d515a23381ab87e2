package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/decompme/toolerr/errors"
)

// Middleware returns a gin handler that translates the last error a request
// handler attached with c.Error.
//
// When neither the default handler nor the translator produce a response and
// nothing has been written yet, a generic 500 is sent so the error is never
// swallowed silently.
//
// Example:
//
//	translator := api.NewTranslator(
//		api.WithLogger(logger),
//		api.WithClassifier(storage.ClassifyError),
//	)
//	r := gin.New()
//	r.Use(translator.Middleware())
func (t *Translator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}

		response := t.Handle(c.Request.Context(), last.Err)
		if c.Writer.Written() {
			return
		}
		if response == nil {
			response = &Response{
				Status: http.StatusInternalServerError,
				Data: map[string]any{
					"detail": "Internal server error",
					"kind":   errors.TypeName(last.Err),
				},
			}
		}
		if response.Data == nil {
			c.AbortWithStatus(response.Status)
			return
		}
		c.AbortWithStatusJSON(response.Status, response.Data)
	}
}

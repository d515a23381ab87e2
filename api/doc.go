// Package api translates errors into structured HTTP error responses.
//
// A Translator recognizes three failure families:
//
//   - *errors.ToolFailure: status 400 with
//     {code, detail, command?, stdout?, stderr?, kind}
//   - *errors.AssertionError and *errors.IntegrityError: status 500 with
//     {detail, kind}
//   - anything else: whatever the default handler produced, tagged with kind
//     when the payload is a map
//
// The "kind" field is the error's type name, so clients can classify any
// error response without parsing detail text.
//
// # Usage
//
//	translator := api.NewTranslator(api.WithLogger(slog.Default()))
//	resp := translator.Handle(ctx, err)
//	if resp == nil {
//		// neither the default handler nor the translator recognized err
//	}
//
// With gin, register Middleware and attach errors with c.Error:
//
//	r.Use(translator.Middleware())
//	r.POST("/compile", func(c *gin.Context) {
//		if _, err := gcc.Run(c.Request.Context(), args...); err != nil {
//			_ = c.Error(err)
//			return
//		}
//		c.Status(http.StatusNoContent)
//	})
package api

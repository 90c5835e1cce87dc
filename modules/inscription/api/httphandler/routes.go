package httphandler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) Mount(router fiber.Router) error {
	r := router.Group("/v1/inscription")

	r.Post("/deploy", h.Deploy)
	r.Post("/mint", h.Mint)
	r.Post("/close", h.Close)
	r.Post("/rebase/info", h.InfoRebase)
	r.Post("/rebase/mint", h.RebaseMint)
	r.Post("/transfer", h.Transfer)
	r.Get("/info/:id", h.GetInfo)
	r.Post("/supply/batch", h.GetSupplyBatch)
	r.Get("/supply/:id", h.GetSupply)
	r.Get("/balance/:address", h.GetBalance)
	return nil
}

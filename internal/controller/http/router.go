package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func InitRoutes(r *chi.Mux, c *Controller, adminAuth func(http.Handler) http.Handler) *chi.Mux {
	r.Get("/ping", c.Ping)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/order/submit", c.SubmitOrder)
		r.Get("/orders/{id}", c.GetOrder)
		r.Post("/orders/{id}/payment/online/check-status", c.CheckPaymentStatus)
		r.Get("/coupons/{value}/check", c.CheckCoupon)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", c.AdminLogin)

			r.Group(func(r chi.Router) {
				r.Use(adminAuth)
				r.Get("/coupons", c.GetCoupons)
				r.Post("/coupons", c.CreateCoupon)
				r.Delete("/coupons/{id}", c.DeleteCoupon)
			})
		})
	})

	return r
}

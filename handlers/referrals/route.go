package referrals

import "github.com/gin-gonic/gin"

func RegisterReferralRoutes(r gin.IRoutes, h *Handler) {
	r.GET("/", h.ShowForm)
	r.POST("/", h.SubmitReferral)
}

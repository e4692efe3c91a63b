package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/adapter/http/handlers"
)

const (
	PathPaymentMethods = "/payment-methods"
	PathPayments       = "/payments"
)

func addPluginRoutes(rg *gin.RouterGroup, paymentMethodHandler *handlers.PaymentMethodHandler, paymentHandler *handlers.PaymentHandler) {
	paymentMethods := rg.Group(PathPaymentMethods)
	{
		paymentMethods.POST("/:payment_method_id", paymentMethodHandler.Register)
		paymentMethods.GET("/:payment_method_id", paymentMethodHandler.GetDetail)
		paymentMethods.DELETE("/:payment_method_id", paymentMethodHandler.Delete)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:payment_id/purchase", paymentHandler.Purchase)
		payments.POST("/:payment_id/authorize", paymentHandler.Authorize)
		payments.POST("/:payment_id/capture", paymentHandler.Capture)
		payments.POST("/:payment_id/void", paymentHandler.Void)
		payments.POST("/:payment_id/credit", paymentHandler.Credit)
		payments.POST("/:payment_id/refund", paymentHandler.Refund)
		payments.GET("/:payment_id", paymentHandler.GetPaymentInfo)
	}
}

package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/fathomstudio/killbill-basecommerce-plugin/internal/adapter/http/dto/request"
	response "github.com/fathomstudio/killbill-basecommerce-plugin/internal/adapter/http/dto/response"
	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/domain/entities"
	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/usecase"
	"github.com/fathomstudio/killbill-basecommerce-plugin/pkg"
)

// PaymentHandler handles HTTP requests for payment transactions.

type PaymentHandler struct {
	dispatcher usecase.ITransactionDispatcher
}

func NewPaymentHandler(dispatcher usecase.ITransactionDispatcher) *PaymentHandler {
	return &PaymentHandler{dispatcher: dispatcher}
}

type transactionOp func(c *gin.Context, tenantID string, req entities.TransactionRequest) (entities.TransactionOutcome, error)

// Purchase charges the stored payment method for the payment id in the path.
func (h *PaymentHandler) Purchase(c *gin.Context) {
	h.dispatch(c, "purchase", func(c *gin.Context, tenantID string, req entities.TransactionRequest) (entities.TransactionOutcome, error) {
		return h.dispatcher.Purchase(c.Request.Context(), tenantID, req)
	})
}

func (h *PaymentHandler) Authorize(c *gin.Context) {
	h.dispatch(c, "authorize", func(c *gin.Context, tenantID string, req entities.TransactionRequest) (entities.TransactionOutcome, error) {
		return h.dispatcher.Authorize(c.Request.Context(), tenantID, req)
	})
}

func (h *PaymentHandler) Capture(c *gin.Context) {
	h.dispatch(c, "capture", func(c *gin.Context, tenantID string, req entities.TransactionRequest) (entities.TransactionOutcome, error) {
		return h.dispatcher.Capture(c.Request.Context(), tenantID, req)
	})
}

func (h *PaymentHandler) Void(c *gin.Context) {
	h.dispatch(c, "void", func(c *gin.Context, tenantID string, req entities.TransactionRequest) (entities.TransactionOutcome, error) {
		return h.dispatcher.Void(c.Request.Context(), tenantID, req)
	})
}

func (h *PaymentHandler) Credit(c *gin.Context) {
	h.dispatch(c, "credit", func(c *gin.Context, tenantID string, req entities.TransactionRequest) (entities.TransactionOutcome, error) {
		return h.dispatcher.Credit(c.Request.Context(), tenantID, req)
	})
}

func (h *PaymentHandler) Refund(c *gin.Context) {
	h.dispatch(c, "refund", func(c *gin.Context, tenantID string, req entities.TransactionRequest) (entities.TransactionOutcome, error) {
		return h.dispatcher.Refund(c.Request.Context(), tenantID, req)
	})
}

func (h *PaymentHandler) dispatch(c *gin.Context, op string, run transactionOp) {
	tenantID := c.GetHeader(TenantHeader)
	paymentID := c.Param("payment_id")
	log.Printf("[payment][handler] %s start tenant_id=%s payment_id=%s", op, tenantID, paymentID)

	if tenantID == "" {
		c.JSON(errMissingTenant.HTTPStatus, errMissingTenant.ToHTTPError())
		return
	}

	var payload request.TransactionCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload payment_id=%s err=%v", paymentID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	req, err := payload.ToTransactionRequest(paymentID)
	if err != nil {
		log.Printf("[payment][handler] invalid amount payment_id=%s amount=%q", paymentID, payload.Amount)
		appErr := pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Amount must be a positive decimal", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	outcome, err := run(c, tenantID, req)
	if err != nil {
		log.Printf("[payment][handler] %s failed payment_id=%s err=%v", op, paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] %s done payment_id=%s status=%s", op, paymentID, outcome.Status)

	c.JSON(http.StatusOK, response.FromTransactionOutcome(outcome))
}

// GetPaymentInfo returns the transaction history for a payment; this
// integration keeps no history, so the list is always empty.
func (h *PaymentHandler) GetPaymentInfo(c *gin.Context) {
	tenantID := c.GetHeader(TenantHeader)
	if tenantID == "" {
		c.JSON(errMissingTenant.HTTPStatus, errMissingTenant.ToHTTPError())
		return
	}

	outcomes, err := h.dispatcher.GetPaymentInfo(c.Request.Context(), tenantID, c.Param("payment_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTransactionOutcomes(outcomes))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCredentialsNotFound):
		return pkg.NewDomainErrorSimple("CREDENTIALS_NOT_FOUND", "Tenant is not configured", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMissingCredentialField):
		return pkg.NewDomainErrorSimple("CREDENTIALS_INCOMPLETE", "Tenant configuration is incomplete", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentMethodNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_NOT_FOUND", "Payment method not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnknownPaymentMethodType):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_CORRUPT", "Stored payment method has an unknown type", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

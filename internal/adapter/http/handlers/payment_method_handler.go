package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/fathomstudio/killbill-basecommerce-plugin/internal/adapter/http/dto/request"
	response "github.com/fathomstudio/killbill-basecommerce-plugin/internal/adapter/http/dto/response"
	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/usecase"
	"github.com/fathomstudio/killbill-basecommerce-plugin/pkg"
)

// TenantHeader carries the tenant the request acts on behalf of.
const TenantHeader = "X-Tenant-Id"

var errMissingTenant = pkg.NewDomainErrorSimple("MISSING_TENANT", "X-Tenant-Id header is required", http.StatusBadRequest)

// PaymentMethodHandler handles HTTP requests for payment method
// registration and lifecycle.

type PaymentMethodHandler struct {
	registrar usecase.IPaymentMethodRegistrar
}

func NewPaymentMethodHandler(registrar usecase.IPaymentMethodRegistrar) *PaymentMethodHandler {
	return &PaymentMethodHandler{registrar: registrar}
}

// Register tokenizes the supplied card or bank account and stores the token
// under the payment method id in the path.
func (h *PaymentMethodHandler) Register(c *gin.Context) {
	tenantID := c.GetHeader(TenantHeader)
	paymentMethodID := c.Param("payment_method_id")
	log.Printf("[paymentmethod][handler] register start tenant_id=%s payment_method_id=%s", tenantID, paymentMethodID)

	if tenantID == "" {
		c.JSON(errMissingTenant.HTTPStatus, errMissingTenant.ToHTTPError())
		return
	}

	var payload request.PaymentMethodRegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[paymentmethod][handler] invalid payload payment_method_id=%s err=%v", paymentMethodID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	err := h.registrar.RegisterPaymentMethod(c.Request.Context(), tenantID, payload.AccountID, paymentMethodID, payload.Properties)
	if err != nil {
		log.Printf("[paymentmethod][handler] register failed payment_method_id=%s err=%v", paymentMethodID, err)
		appErr := mapPaymentMethodError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[paymentmethod][handler] register success payment_method_id=%s", paymentMethodID)

	c.Status(http.StatusCreated)
}

// Delete is part of the host plugin contract; deletion is a no-op upstream.
func (h *PaymentMethodHandler) Delete(c *gin.Context) {
	tenantID := c.GetHeader(TenantHeader)
	if tenantID == "" {
		c.JSON(errMissingTenant.HTTPStatus, errMissingTenant.ToHTTPError())
		return
	}

	if err := h.registrar.DeletePaymentMethod(c.Request.Context(), tenantID, c.Param("payment_method_id")); err != nil {
		appErr := mapPaymentMethodError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// GetDetail returns the stub payment method detail for the id in the path.
func (h *PaymentMethodHandler) GetDetail(c *gin.Context) {
	tenantID := c.GetHeader(TenantHeader)
	if tenantID == "" {
		c.JSON(errMissingTenant.HTTPStatus, errMissingTenant.ToHTTPError())
		return
	}

	method, err := h.registrar.GetPaymentMethodDetail(c.Request.Context(), tenantID, c.Param("payment_method_id"))
	if err != nil {
		appErr := mapPaymentMethodError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStoredPaymentMethod(method))
}

func mapPaymentMethodError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCredentialsNotFound):
		return pkg.NewDomainErrorSimple("CREDENTIALS_NOT_FOUND", "Tenant is not configured", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMissingCredentialField):
		return pkg.NewDomainErrorSimple("CREDENTIALS_INCOMPLETE", "Tenant configuration is incomplete", http.StatusConflict)
	case errors.Is(err, usecase.ErrUnrecognizedProperty),
		errors.Is(err, usecase.ErrMissingField),
		errors.Is(err, usecase.ErrUnknownPaymentType):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayRegistration):
		return pkg.NewDomainErrorSimple("GATEWAY_REJECTED", err.Error(), http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

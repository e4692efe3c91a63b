package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/adapter/http/handlers/mocks"
	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/domain/entities"
	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/usecase"
)

func registerRouter(h *PaymentMethodHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/payment-methods/:payment_method_id", h.Register)
	r.GET("/v1/payment-methods/:payment_method_id", h.GetDetail)
	r.DELETE("/v1/payment-methods/:payment_method_id", h.Delete)
	return r
}

func TestPaymentMethodHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing tenant header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		registrar := mocks.NewMockIPaymentMethodRegistrar(ctrl)
		r := registerRouter(NewPaymentMethodHandler(registrar))

		req := httptest.NewRequest(http.MethodPost, "/v1/payment-methods/pm-1", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		registrar := mocks.NewMockIPaymentMethodRegistrar(ctrl)
		r := registerRouter(NewPaymentMethodHandler(registrar))

		req := httptest.NewRequest(http.MethodPost, "/v1/payment-methods/pm-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(TenantHeader, "tenant-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		registrar := mocks.NewMockIPaymentMethodRegistrar(ctrl)
		r := registerRouter(NewPaymentMethodHandler(registrar))

		wantProps := map[string]string{
			"paymentType":               "card",
			"creditCardNumber":          "4111111111111111",
			"creditCardExpirationMonth": "5",
			"creditCardExpirationYear":  "27",
			"creditCardCVV2":            "123",
		}
		registrar.EXPECT().RegisterPaymentMethod(gomock.Any(), "tenant-1", "acc-1", "pm-1", wantProps).Return(nil)

		body, _ := json.Marshal(map[string]any{"account_id": "acc-1", "properties": wantProps})
		req := httptest.NewRequest(http.MethodPost, "/v1/payment-methods/pm-1", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(TenantHeader, "tenant-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("mapped errors", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			want int
		}{
			{name: "credentials not found", err: usecase.ErrCredentialsNotFound, want: http.StatusNotFound},
			{name: "credentials incomplete", err: usecase.ErrMissingCredentialField, want: http.StatusConflict},
			{name: "unrecognized property", err: usecase.ErrUnrecognizedProperty, want: http.StatusBadRequest},
			{name: "missing field", err: usecase.ErrMissingField, want: http.StatusBadRequest},
			{name: "unknown payment type", err: usecase.ErrUnknownPaymentType, want: http.StatusBadRequest},
			{name: "gateway rejected", err: usecase.ErrGatewayRegistration, want: http.StatusUnprocessableEntity},
			{name: "transport failure", err: errors.New("connection reset"), want: http.StatusInternalServerError},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				registrar := mocks.NewMockIPaymentMethodRegistrar(ctrl)
				r := registerRouter(NewPaymentMethodHandler(registrar))

				registrar.EXPECT().RegisterPaymentMethod(gomock.Any(), "tenant-1", gomock.Any(), "pm-1", gomock.Any()).Return(tc.err)

				req := httptest.NewRequest(http.MethodPost, "/v1/payment-methods/pm-1", bytes.NewBufferString(`{"account_id":"acc-1","properties":{"paymentType":"card"}}`))
				req.Header.Set("Content-Type", "application/json")
				req.Header.Set(TenantHeader, "tenant-1")
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				if w.Code != tc.want {
					t.Fatalf("expected %d, got %d: %s", tc.want, w.Code, w.Body.String())
				}
			})
		}
	})
}

func TestPaymentMethodHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	registrar := mocks.NewMockIPaymentMethodRegistrar(ctrl)
	r := registerRouter(NewPaymentMethodHandler(registrar))

	registrar.EXPECT().DeletePaymentMethod(gomock.Any(), "tenant-1", "pm-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/payment-methods/pm-1", nil)
	req.Header.Set(TenantHeader, "tenant-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestPaymentMethodHandler_GetDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	registrar := mocks.NewMockIPaymentMethodRegistrar(ctrl)
	r := registerRouter(NewPaymentMethodHandler(registrar))

	registrar.EXPECT().GetPaymentMethodDetail(gomock.Any(), "tenant-1", "pm-1").Return(entities.StoredPaymentMethod{PaymentMethodID: "pm-1", GatewayToken: "tok_abc", Type: entities.PaymentMethodTypeCard}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/payment-methods/pm-1", nil)
	req.Header.Set(TenantHeader, "tenant-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["payment_method_id"] != "pm-1" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if _, leaked := body["gateway_token"]; leaked {
		t.Fatalf("token must not be exposed: %s", w.Body.String())
	}
}

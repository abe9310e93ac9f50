package pincode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/washhub/washhub/internal/dto"
	pincodesvc "github.com/washhub/washhub/internal/pincode"
)

func NewMock(t *testing.T) (*PincodeHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestLookupHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Localities returned", func(t *testing.T) {
		service.EXPECT().Lookup(gomock.Any(), "600001").
			Return([]pincodesvc.Locality{
				{Pincode: "600001", Name: "Parrys", District: "Chennai", State: "Tamil Nadu"},
				{Pincode: "600001", Name: "Sowcarpet", District: "Chennai", State: "Tamil Nadu"},
			})

		r := httptest.NewRequest(http.MethodGet, "/api/pincode/600001", nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("pincode", "600001")
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
		w := httptest.NewRecorder()

		handler.Lookup(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body []dto.LocalityDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Len(t, body, 2)
		assert.Equal(t, "Parrys", body[0].Name)
	})

	t.Run("Missing pincode", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/pincode/", nil)
		rctx := chi.NewRouteContext()
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
		w := httptest.NewRecorder()

		handler.Lookup(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

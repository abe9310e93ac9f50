package pincode

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/washhub/washhub/internal/config"
	"github.com/washhub/washhub/pkg/clients"
)

func NewMock(t *testing.T) (*Service, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	client := clients.NewMockHTTPClientI(ctrl)
	service := New(&config.Config{PincodeAddress: "http://pincode.local"}, client)
	defer ctrl.Finish()
	return service, client
}

func TestLookup(t *testing.T) {
	service, client := NewMock(t)

	tests := []struct {
		name        string
		prepareMock func()
		expected    []Locality
	}{
		{
			name: "Directory response is passed through",
			prepareMock: func() {
				client.EXPECT().
					Get("http://pincode.local/api/pincode/600001", nil).
					Return(http.StatusOK, []byte(`[{"pincode":"600001","name":"Parrys","district":"Chennai","state":"Tamil Nadu"}]`), nil, nil)
			},
			expected: []Locality{
				{Pincode: "600001", Name: "Parrys", District: "Chennai", State: "Tamil Nadu"},
			},
		},
		{
			name: "Transport error falls back",
			prepareMock: func() {
				client.EXPECT().
					Get("http://pincode.local/api/pincode/600001", nil).
					Return(0, nil, nil, errors.New("connection refused"))
			},
			expected: fallbackLocalities(),
		},
		{
			name: "Unexpected status falls back",
			prepareMock: func() {
				client.EXPECT().
					Get("http://pincode.local/api/pincode/600001", nil).
					Return(http.StatusBadGateway, nil, nil, nil)
			},
			expected: fallbackLocalities(),
		},
		{
			name: "Malformed body falls back",
			prepareMock: func() {
				client.EXPECT().
					Get("http://pincode.local/api/pincode/600001", nil).
					Return(http.StatusOK, []byte(`{not json`), nil, nil)
			},
			expected: fallbackLocalities(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			localities := service.Lookup(context.Background(), "600001")
			assert.Equal(t, tt.expected, localities)
		})
	}
}

func TestFallbackLocalities(t *testing.T) {
	localities := fallbackLocalities()
	assert.Len(t, localities, 3)
	assert.Equal(t, "000001", localities[0].Pincode)
	assert.Equal(t, "Locality 3", localities[2].Name)
	assert.Equal(t, "Unavailable", localities[1].District)
}

package clients

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestSMSClientSend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := NewMockHTTPClientI(ctrl)
	smsClient := NewSMSClient("http://sms.local")
	smsClient.SetClient(mockClient)

	tests := []struct {
		name        string
		prepareMock func()
		expectError bool
	}{
		{
			name: "Gateway accepts the message",
			prepareMock: func() {
				mockClient.EXPECT().
					Post("http://sms.local/api/sms/send", nil, []byte(`{"code":"123456","phone":"9876543210"}`)).
					Return(http.StatusOK, []byte(`{"success":true}`), nil)
			},
		},
		{
			name: "Gateway rejects the message",
			prepareMock: func() {
				mockClient.EXPECT().
					Post("http://sms.local/api/sms/send", nil, gomock.Any()).
					Return(http.StatusOK, []byte(`{"success":false}`), nil)
			},
			expectError: true,
		},
		{
			name: "Unexpected status",
			prepareMock: func() {
				mockClient.EXPECT().
					Post("http://sms.local/api/sms/send", nil, gomock.Any()).
					Return(http.StatusBadGateway, nil, nil)
			},
			expectError: true,
		},
		{
			name: "Malformed response body",
			prepareMock: func() {
				mockClient.EXPECT().
					Post("http://sms.local/api/sms/send", nil, gomock.Any()).
					Return(http.StatusOK, []byte(`{not json`), nil)
			},
			expectError: true,
		},
		{
			name: "Transport error",
			prepareMock: func() {
				mockClient.EXPECT().
					Post("http://sms.local/api/sms/send", nil, gomock.Any()).
					Return(0, nil, errors.New("connection refused"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := smsClient.Send(context.Background(), "9876543210", "123456")
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

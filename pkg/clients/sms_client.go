package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// SMSClient talks to the external SMS gateway. The gateway answers with a
// success boolean rather than relying on the status code alone.
type SMSClient struct {
	url    string
	client HTTPClientI
}

func NewSMSClient(url string) *SMSClient {
	return &SMSClient{
		url: url,
		client: &HTTPClientAdapter{
			client: &http.Client{Timeout: timeout},
		},
	}
}

func (c *SMSClient) SetClient(mock HTTPClientI) {
	c.client = mock
}

func (c *SMSClient) Send(ctx context.Context, phone, code string) error {
	body, err := json.Marshal(map[string]string{"phone": phone, "code": code})
	if err != nil {
		return err
	}

	statusCode, respBody, err := c.client.Post(c.url+"/api/sms/send", nil, body)
	if err != nil {
		return err
	}
	if statusCode != http.StatusOK {
		return fmt.Errorf("sms gateway returned status %d", statusCode)
	}

	var resp struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return fmt.Errorf("failed to parse sms gateway response: %w", err)
	}
	if !resp.Success {
		return fmt.Errorf("sms gateway rejected message for %s", phone)
	}
	return nil
}

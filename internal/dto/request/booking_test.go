package request

import (
	"encoding/json"
	"strings"
	"testing"

	"booking-widget/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body string) UpdateBookingRequest {
	t.Helper()
	var req UpdateBookingRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func TestUpdateBookingRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		invalid []string
	}{
		{name: "empty", body: `{}`},
		{name: "valid", body: `{"date":"2024-06-01","time":"14:30","service":"haircut"}`},
		{name: "nulls", body: `{"date":null,"time":null,"service":null}`},
		{name: "bad date", body: `{"date":"01/06/2024"}`, invalid: []string{"Date"}},
		{name: "bad time", body: `{"time":"2pm"}`, invalid: []string{"Time"}},
		{name: "long service", body: `{"service":"` + strings.Repeat("a", 65) + `"}`, invalid: []string{"Service"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := decode(t, tt.body)

			errs := utils.ValidateStruct(req)

			if len(tt.invalid) == 0 {
				assert.Empty(t, errs)
				return
			}
			for _, field := range tt.invalid {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestUpdateBookingRequest_Patch(t *testing.T) {
	req := decode(t, `{"date":"2024-06-01","service":null,"confirmed":true}`)

	p := req.Patch()

	assert.Equal(t, "2024-06-01", *p.Date.Ptr())
	assert.False(t, p.Time.IsSet())
	assert.True(t, p.Service.IsNull())
	require.NotNil(t, p.Confirmed)
	assert.True(t, *p.Confirmed)
}

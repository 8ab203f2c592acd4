package service_test

import (
	"strings"
	"testing"

	"medicare/internal/domain/service"
)

// TestService_Validate tests validation of Service.
func TestService_Validate(t *testing.T) {
	tests := []struct {
		name    string
		service service.Service
		wantErr bool
	}{
		{
			name:    "valid service",
			service: service.Service{ID: "1", Title: "General Consultation", Price: 50.00, Category: "Consultation"},
			wantErr: false,
		},
		{
			name:    "free service is allowed",
			service: service.Service{ID: "2", Title: "Health Screening", Price: 0},
			wantErr: false,
		},
		{
			name:    "empty title",
			service: service.Service{ID: "3", Price: 50.00},
			wantErr: true,
		},
		{
			name:    "title too long",
			service: service.Service{ID: "4", Title: strings.Repeat("x", 101), Price: 50.00},
			wantErr: true,
		},
		{
			name:    "negative price",
			service: service.Service{ID: "5", Title: "Consultation", Price: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.service.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

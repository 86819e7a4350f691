package models

import (
	"errors"
	"testing"
)

func TestCustomerInfo_Validate(t *testing.T) {
	tests := []struct {
		name    string
		info    CustomerInfo
		wantErr error
	}{
		{
			name: "all fields present",
			info: CustomerInfo{FirstName: "John", LastName: "Doe", PostalCode: "12345"},
		},
		{
			name:    "missing first name",
			info:    CustomerInfo{LastName: "Doe", PostalCode: "12345"},
			wantErr: ErrMissingFirstName,
		},
		{
			name:    "missing last name",
			info:    CustomerInfo{FirstName: "John", PostalCode: "12345"},
			wantErr: ErrMissingLastName,
		},
		{
			name:    "missing postal code",
			info:    CustomerInfo{FirstName: "John", LastName: "Doe"},
			wantErr: ErrMissingPostalCode,
		},
		{
			name:    "all fields missing reports first name first",
			info:    CustomerInfo{},
			wantErr: ErrMissingFirstName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.info.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

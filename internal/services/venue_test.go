package services

import (
	"context"
	"testing"

	"github.com/squaredcircle/promoter-backend/internal/apierr"
)

func TestVenueCreateValidation(t *testing.T) {
	cases := []struct {
		name     string
		input    CreateVenueInput
		wantCode string
	}{
		{
			name:     "missing name",
			input:    CreateVenueInput{StreetAddress: "412 Canal St", City: "Philadelphia", State: "PA", Zipcode: "19123"},
			wantCode: "invalid_input",
		},
		{
			name:     "short zipcode",
			input:    CreateVenueInput{Name: "Hammerlock Arena", StreetAddress: "412 Canal St", City: "Philadelphia", State: "PA", Zipcode: "1912"},
			wantCode: "invalid_input",
		},
		{
			name:     "non numeric zipcode",
			input:    CreateVenueInput{Name: "Hammerlock Arena", StreetAddress: "412 Canal St", City: "Philadelphia", State: "PA", Zipcode: "1912a"},
			wantCode: "invalid_input",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewVenueService(testDB(t), testLogger(t), &fakeVenueRepo{})
			_, err := svc.Create(context.Background(), tc.input)
			if err == nil {
				t.Fatalf("expected error")
			}
			if got := apierr.CodeOf(err); got != tc.wantCode {
				t.Fatalf("code = %q, want %q", got, tc.wantCode)
			}
		})
	}
}

func TestVenueNameUniqueness(t *testing.T) {
	svc := NewVenueService(testDB(t), testLogger(t), &fakeVenueRepo{})
	ctx := context.Background()

	input := CreateVenueInput{Name: "Hammerlock Arena", StreetAddress: "412 Canal St", City: "Philadelphia", State: "PA", Zipcode: "19123"}
	if _, err := svc.Create(ctx, input); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := svc.Create(ctx, input)
	if apierr.CodeOf(err) != "name_taken" {
		t.Fatalf("code = %q, want name_taken", apierr.CodeOf(err))
	}
}

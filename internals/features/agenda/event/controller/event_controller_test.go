package controller

import (
	"reflect"
	"testing"
	"time"

	eventDto "orquestra_backend/internals/features/agenda/event/dto"
)

func strPtr(s string) *string { return &s }

func TestBuildEventUpdates(t *testing.T) {
	when := time.Date(2026, 10, 1, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  eventDto.UpdateEventRequest
		want map[string]interface{}
	}{
		{
			name: "empty request updates nothing",
			req:  eventDto.UpdateEventRequest{},
			want: map[string]interface{}{},
		},
		{
			name: "status change alone is a valid update",
			req:  eventDto.UpdateEventRequest{Status: strPtr("cancelado")},
			want: map[string]interface{}{"status": "cancelado"},
		},
		{
			name: "postponing keeps other fields untouched",
			req:  eventDto.UpdateEventRequest{Status: strPtr("adiado"), StartsAt: &when},
			want: map[string]interface{}{"status": "adiado", "starts_at": when},
		},
		{
			name: "full update",
			req: eventDto.UpdateEventRequest{
				Title:       strPtr("Concerto de Natal"),
				Type:        strPtr("concerto"),
				Status:      strPtr("ativo"),
				StartsAt:    &when,
				Location:    strPtr("Teatro Municipal"),
				Description: strPtr("Programa natalino"),
			},
			want: map[string]interface{}{
				"title":       "Concerto de Natal",
				"type":        "concerto",
				"status":      "ativo",
				"starts_at":   when,
				"location":    "Teatro Municipal",
				"description": "Programa natalino",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildEventUpdates(&tt.req)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("buildEventUpdates = %#v, want %#v", got, tt.want)
			}
		})
	}
}

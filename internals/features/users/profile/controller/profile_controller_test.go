package controller

import (
	"reflect"
	"testing"
	"time"

	profileDto "orquestra_backend/internals/features/users/profile/dto"
)

func strPtr(s string) *string { return &s }

func TestBuildProfileUpdates(t *testing.T) {
	birth := time.Date(1998, 3, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  profileDto.UpdateProfileRequest
		want map[string]interface{}
	}{
		{
			name: "empty request updates nothing",
			req:  profileDto.UpdateProfileRequest{},
			want: map[string]interface{}{},
		},
		{
			name: "nickname alone leaves the rest of the row untouched",
			req:  profileDto.UpdateProfileRequest{Nickname: strPtr("Du")},
			want: map[string]interface{}{"nickname": "Du"},
		},
		{
			name: "instrument and section together",
			req: profileDto.UpdateProfileRequest{
				Instrument: strPtr("Violoncelo"),
				Section:    strPtr("Violoncelo"),
			},
			want: map[string]interface{}{
				"instrument": "Violoncelo",
				"section":    "Violoncelo",
			},
		},
		{
			name: "full update",
			req: profileDto.UpdateProfileRequest{
				Nickname:            strPtr("Du"),
				FullName:            strPtr("Eduarda Lima"),
				BirthDate:           &birth,
				Phone:               strPtr("11999990000"),
				Instrument:          strPtr("Flauta"),
				Section:             strPtr("Flauta"),
				InstrumentOwnership: strPtr("cefec"),
			},
			want: map[string]interface{}{
				"nickname":             "Du",
				"full_name":            "Eduarda Lima",
				"birth_date":           birth,
				"phone":                "11999990000",
				"instrument":           "Flauta",
				"section":              "Flauta",
				"instrument_ownership": "cefec",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildProfileUpdates(&tt.req)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("buildProfileUpdates = %#v, want %#v", got, tt.want)
			}
		})
	}
}

package route

import (
	"errors"
	"testing"

	"github.com/Faultbox/cubefolio/internal/cube"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Route
		wantErr bool
	}{
		{"/", Overview(), false},
		{"", Overview(), false},
		{"/?from=music", OverviewFrom(cube.Music), false},
		{"/?from=MUSIC", OverviewFrom(cube.Music), false},
		{"/?from=attic", Overview(), false},
		{"/?from=", Overview(), false},
		{"/front", Page(cube.Front), false},
		{"/thinking/", Page(cube.Thinking), false},
		{"back", Page(cube.Back), false},
		{"/attic", Route{}, true},
		{"/front/extra", Route{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownRoute) {
					t.Fatalf("Parse(%q) error = %v, want ErrUnknownRoute", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	routes := []Route{Overview(), OverviewFrom(cube.Community)}
	for _, f := range cube.All {
		routes = append(routes, Page(f))
	}
	for _, r := range routes {
		got, err := Parse(r.String())
		if err != nil || got != r {
			t.Errorf("Parse(%q) = %+v, %v", r.String(), got, err)
		}
	}
}

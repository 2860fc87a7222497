package render

import "testing"

func TestLerpEndpoints(t *testing.T) {
	red := RGB{R: 255, G: 0, B: 0}
	blue := RGB{R: 0, G: 0, B: 255}

	if got := Lerp(red, blue, 0); got != red {
		t.Errorf("Lerp(red, blue, 0) = %+v, want %+v", got, red)
	}
	if got := Lerp(red, blue, 1); got != blue {
		t.Errorf("Lerp(red, blue, 1) = %+v, want %+v", got, blue)
	}
}

func TestLerpMidpointFloors(t *testing.T) {
	red := RGB{R: 255, G: 0, B: 0}
	blue := RGB{R: 0, G: 0, B: 255}

	// channel average is 127.5; truncation keeps the floor
	want := RGB{R: 127, G: 0, B: 127}
	if got := Lerp(red, blue, 0.5); got != want {
		t.Errorf("Lerp(red, blue, 0.5) = %+v, want %+v", got, want)
	}
}

func TestLerpDoesNotClamp(t *testing.T) {
	red := RGB{R: 255, G: 0, B: 0}
	blue := RGB{R: 0, G: 0, B: 255}

	// out-of-range ratios propagate as out-of-gamut colors by contract
	got := Lerp(red, blue, 1.2)
	if got.R >= 0 {
		t.Errorf("Lerp at t=1.2 R = %d, want negative (out of gamut)", got.R)
	}
	if got.B <= 255 {
		t.Errorf("Lerp at t=1.2 B = %d, want above 255", got.B)
	}
}

package format

import "testing"

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"1:02:03", 3723.0},
		{"25:36:59", 92219.0},
		{"3:45", 225.0},
		{"90", 90.0},
		{"", 0.0},
		{"garbage", 0.0},
		{"1:oops:3", 0.0},
		{"4:20:00:00", 72000.0}, // extra leading components are ignored
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseDuration(tt.input)
			if got != tt.want {
				t.Errorf("ParseDuration(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTimestampToMilliseconds(t *testing.T) {
	got, err := TimestampToMilliseconds("00:00:10.123", 0)
	if err != nil {
		t.Fatalf("TimestampToMilliseconds returned error: %v", err)
	}
	if want := 10002.0; got != want {
		t.Errorf("TimestampToMilliseconds(00:00:10.123) = %v, want %v", got, want)
	}
}

func TestTimestampToMilliseconds_Invalid(t *testing.T) {
	if _, err := TimestampToMilliseconds("1:02", 0); err == nil {
		t.Error("expected error for a too-short timestamp")
	}
	if _, err := TimestampToMilliseconds("aa:bb:cc.ddd", 0); err == nil {
		t.Error("expected error for a non-numeric timestamp")
	}
}

func TestMillisecondsFromParts(t *testing.T) {
	got := MillisecondsFromParts(1, 2, 3, 4)
	if want := 3723004.0; got != want {
		t.Errorf("MillisecondsFromParts(1, 2, 3, 4) = %v, want %v", got, want)
	}
}

package gotchi

import "testing"

func TestColorHex(t *testing.T) {
	info := CollateralTypeInfo{
		PrimaryColor:   [3]byte{0xf5, 0xac, 0x37},
		SecondaryColor: [3]byte{0xfe, 0xf0, 0xd1},
		CheekColor:     [3]byte{0xf6, 0x96, 0x14},
	}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"primary", info.PrimaryColorHex(), "#f5ac37"},
		{"secondary", info.SecondaryColorHex(), "#fef0d1"},
		{"cheek", info.CheekColorHex(), "#f69614"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, tt.got)
			}
		})
	}
}

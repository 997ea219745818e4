package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContact_FullName(t *testing.T) {
	tests := []struct {
		first, last string
		want        string
	}{
		{"Ada", "Lovelace", "Ada Lovelace"},
		{"Ada", "", "Ada"},
		{"", "Lovelace", "Lovelace"},
		{"", "", ""},
	}
	for _, tt := range tests {
		c := Contact{FirstName: tt.first, LastName: tt.last}
		assert.Equal(t, tt.want, c.FullName())
	}
}

func TestJobRequirements_TargetRole(t *testing.T) {
	r := JobRequirements{Role: "sdr"}
	assert.Equal(t, "sdr", r.TargetRole())

	r.ExplicitRole = "account executive"
	assert.Equal(t, "account executive", r.TargetRole())
}

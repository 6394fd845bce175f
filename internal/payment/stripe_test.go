package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   int64
	}{
		{name: "whole units", amount: 10, want: 1000},
		{name: "with cents", amount: 19.99, want: 1999},
		{name: "rounds half up", amount: 0.005, want: 1},
		{name: "float drift", amount: 29.07, want: 2907},
		{name: "zero", amount: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MinorUnits(tt.amount))
		})
	}
}

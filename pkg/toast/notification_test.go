package toast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotification_Normalized(t *testing.T) {
	tests := []struct {
		name string
		in   Notification
		want Notification
	}{
		{
			name: "all fields omitted fall back to defaults",
			in:   Notification{},
			want: Notification{Variant: VariantToast, Type: TypeDefault, Position: PositionTopRight},
		},
		{
			name: "recognized values pass through",
			in:   Notification{Variant: VariantSooner, Type: TypeError, Position: PositionCenter},
			want: Notification{Variant: VariantSooner, Type: TypeError, Position: PositionCenter},
		},
		{
			name: "unknown variant degrades to toast",
			in:   Notification{Variant: "snackbar", Type: TypeSuccess, Position: PositionBottomLeft},
			want: Notification{Variant: VariantToast, Type: TypeSuccess, Position: PositionBottomLeft},
		},
		{
			name: "unknown type degrades to default",
			in:   Notification{Variant: VariantBanner, Type: "fatal", Position: PositionTopLeft},
			want: Notification{Variant: VariantBanner, Type: TypeDefault, Position: PositionTopLeft},
		},
		{
			name: "unknown position degrades to top-right",
			in:   Notification{Variant: VariantToast, Type: TypeWarning, Position: "middle-out"},
			want: Notification{Variant: VariantToast, Type: TypeWarning, Position: PositionTopRight},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalized()
			assert.Equal(t, tt.want.Variant, got.Variant)
			assert.Equal(t, tt.want.Type, got.Type)
			assert.Equal(t, tt.want.Position, got.Position)
		})
	}
}

func TestNotification_NormalizedKeepsStoredValues(t *testing.T) {
	n := Notification{ID: "n-1", Message: "hello", Variant: "snackbar"}
	_ = n.Normalized()

	// The stored record keeps options exactly as supplied.
	assert.Equal(t, Variant("snackbar"), n.Variant)
}

func TestNotification_Persistent(t *testing.T) {
	assert.True(t, Notification{}.Persistent())
	assert.True(t, Notification{Duration: 0}.Persistent())
	assert.False(t, Notification{Duration: time.Second}.Persistent())
}

func TestOptions(t *testing.T) {
	var n Notification
	for _, opt := range []Option{
		WithVariant(VariantBanner),
		WithType(TypeWarning),
		WithPosition(PositionBottomRight),
		WithDuration(3 * time.Second),
	} {
		opt(&n)
	}

	assert.Equal(t, VariantBanner, n.Variant)
	assert.Equal(t, TypeWarning, n.Type)
	assert.Equal(t, PositionBottomRight, n.Position)
	assert.Equal(t, 3*time.Second, n.Duration)
}

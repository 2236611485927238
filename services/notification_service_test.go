package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestToastNotifier(t *testing.T) {
	t.Run("Show And Current", func(t *testing.T) {
		n := NewToastNotifier(time.Minute, zap.NewNop())
		n.Show("Confirmation email sent to your inbox!")

		toast := n.Current()
		require.NotNil(t, toast)
		assert.Equal(t, "Confirmation email sent to your inbox!", toast.Message)
	})

	t.Run("Dismiss", func(t *testing.T) {
		n := NewToastNotifier(time.Minute, zap.NewNop())
		n.Show("hello")
		n.Dismiss()
		assert.Nil(t, n.Current())
	})

	t.Run("Auto-Dismiss After TTL", func(t *testing.T) {
		n := NewToastNotifier(10*time.Millisecond, zap.NewNop())
		n.Show("hello")

		time.Sleep(25 * time.Millisecond)
		assert.Nil(t, n.Current())
	})

	t.Run("Nil When Nothing Shown", func(t *testing.T) {
		n := NewToastNotifier(time.Minute, zap.NewNop())
		assert.Nil(t, n.Current())
	})
}

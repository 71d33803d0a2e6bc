package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/neondodge/internal/application/system"
)

func TestInputSystem_Reset(t *testing.T) {
	s := NewInputSystem(system.DefaultJoystickRadius)
	s.Joystick().Press(10, 10)
	s.touching = true

	s.Reset()

	assert.False(t, s.Joystick().Active())
	assert.False(t, s.touching)
}

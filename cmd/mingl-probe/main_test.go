package main

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestMonitorLineMarksThePrimary(t *testing.T) {
	mode := &glfw.VidMode{Width: 2560, Height: 1440, RefreshRate: 144, RedBits: 8, GreenBits: 8, BlueBits: 8}

	assert.Equal(t, "monitor:  * DP-1 2560x1440@144Hz rgb888", monitorLine("DP-1", mode, true))
	assert.Equal(t, "monitor:    HDMI-1 2560x1440@144Hz rgb888", monitorLine("HDMI-1", mode, false))
}

func TestMonitorLineSurvivesAMissingVideoMode(t *testing.T) {
	assert.Equal(t, "monitor:    HDMI-1 (no current video mode)", monitorLine("HDMI-1", nil, false))
}

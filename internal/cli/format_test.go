package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"apkplan/internal/manifest"
	"apkplan/internal/planner"
)

func TestRenderPlanTable(t *testing.T) {
	plan := planner.Plan{
		Package:     "com.example.app",
		VersionCode: 5,
		Variants: []planner.Variant{
			{
				MinSDK:       7,
				Screens:      manifest.ScreenSupport{Normal: true},
				RelativePath: "phone",
				BuildSlot:    0,
			},
			{
				MinSDK:       7,
				Screens:      manifest.ScreenSupport{Large: true},
				GLESVersion:  0x20000,
				ABI:          "x86",
				RelativePath: "tablet",
				BuildSlot:    1,
				Revision:     3,
			},
		},
	}

	var buf bytes.Buffer
	renderPlanTable(&buf, plan)
	out := buf.String()

	assert.Contains(t, out, "phone")
	assert.Contains(t, out, "tablet-x86")
	assert.Contains(t, out, "2.0")
	// Composed identifiers: 5*10000 + slot*100 + revision.
	assert.Contains(t, out, "50000")
	assert.Contains(t, out, "50103")
}

package cli

import (
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"apkplan/internal/manifest"
	"apkplan/internal/planner"
)

var (
	successColor = color.New(color.FgGreen)
	headerColor  = color.New(color.FgCyan, color.Bold)
)

// renderPlanTable writes the plan's variants as a table: one row per
// variant, with its slot, differentiating key, secondary axes and the
// composed versionCode.
func renderPlanTable(w io.Writer, plan planner.Plan) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Slot", "Variant", "MinSDK", "Screens", "GL ES", "ABI", "Rev", "VersionCode"})
	for _, v := range plan.Variants {
		gl := ""
		if v.GLESVersion != 0 {
			gl = manifest.GLESVersionString(v.GLESVersion)
		}
		t.AppendRow(table.Row{
			v.BuildSlot,
			v.Name(),
			v.MinSDK,
			v.Screens.String(),
			gl,
			v.ABI,
			v.Revision,
			strconv.Itoa(v.ComposedVersionCode(plan.VersionCode)),
		})
	}
	style := table.StyleLight
	style.Options.DrawBorder = false
	t.SetStyle(style)
	t.Render()
}

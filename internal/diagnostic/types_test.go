package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsSeverities(t *testing.T) {
	var d Diagnostics

	d.AddInfo(CodeUnsupportedShape, "2 fields left unchanged")
	d.AddWarning(CodeStructuralMismatch, "no counterpart", "Outfit/Arm", "VRCPhysBone", "rootTransform")
	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Error())

	d.AddError(CodeFieldFailed, "boom", "Outfit", "MAMergeArmature", "mergeTarget")
	require.True(t, d.HasErrors())
	assert.Equal(t, 3, d.Len())
	assert.EqualError(t, d.Error(), "Outfit [MAMergeArmature].mergeTarget: [field-failed] boom")

	all := d.All()
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, SeverityWarning, all[1].Severity)
	assert.Equal(t, SeverityInfo, all[2].Severity)
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{
		Code:        CodeStructuralMismatch,
		Message:     `no node "Armature/Hipps"`,
		Node:        "Outfit/Body",
		Component:   "VRCPhysBone",
		Field:       "rootTransform",
		Suggestions: []string{"Hips"},
	}

	assert.Equal(t,
		`Outfit/Body [VRCPhysBone].rootTransform: [structural-mismatch] no node "Armature/Hipps" (did you mean Hips?)`,
		d.String())

	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
}

func TestMerge(t *testing.T) {
	var a, b Diagnostics
	a.AddInfo("x", "one")
	b.AddWarning("y", "two", "", "", "")
	b.AddError("z", "three", "", "", "")

	a.Merge(b)
	assert.Len(t, a.Infos, 1)
	assert.Len(t, a.Warnings, 1)
	assert.Len(t, a.Errors, 1)
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "unknown", Severity(42).String())
}

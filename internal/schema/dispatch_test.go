package schema

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hierarchy-remapper/scene"
)

type limits struct {
	Min, Max float64
	Pivot    *scene.Node
}

type physBoneBase struct {
	Root      *scene.Node
	colliders []*scene.Component
}

type physBone struct {
	physBoneBase

	Radius     float32
	Curve      [4]float64
	Ignore     [2]*scene.Node
	Targets    []scene.Object
	Limits     limits
	Lookup     map[string]*scene.Node
	Updated    time.Time
	Mode       scene.Kind
	Scratch    any
	Skipped    *scene.Node `remap:"-"`
	RenamedRef *scene.Node `remap:"parentOverride"`
}

func TestDispatch(t *testing.T) {
	tests := []struct {
		typ      reflect.Type
		expected scene.Kind
	}{
		{reflect.TypeFor[int](), scene.KindScalar},
		{reflect.TypeFor[string](), scene.KindScalar},
		{reflect.TypeFor[scene.Kind](), scene.KindScalar},
		{reflect.TypeFor[time.Duration](), scene.KindScalar},
		{reflect.TypeFor[time.Time](), scene.KindScalar},
		{reflect.TypeFor[scene.Vector3](), scene.KindScalar},
		{reflect.TypeFor[[]string](), scene.KindScalar},
		{reflect.TypeFor[*scene.Node](), scene.KindRef},
		{reflect.TypeFor[*scene.Component](), scene.KindRef},
		{reflect.TypeFor[scene.Object](), scene.KindRef},
		{reflect.TypeFor[[3]*scene.Node](), scene.KindArray},
		{reflect.TypeFor[[]*scene.Component](), scene.KindList},
		{reflect.TypeFor[limits](), scene.KindRecord},
		{reflect.TypeFor[*limits](), scene.KindRecord},
		{reflect.TypeFor[map[string]*scene.Node](), scene.KindOpaque},
		{reflect.TypeFor[[]map[string]int](), scene.KindOpaque},
		{reflect.TypeFor[any](), scene.KindOpaque},
		{reflect.TypeFor[func()](), scene.KindOpaque},
		{nil, scene.KindOpaque},
	}

	for _, tt := range tests {
		name := "nil"
		if tt.typ != nil {
			name = tt.typ.String()
		}

		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Dispatch(tt.typ))
		})
	}
}

func TestRegisterStruct(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, RegisterStruct(r, reflect.TypeFor[*physBone]()))

	name := TypeName(reflect.TypeFor[physBone]())
	def, ok := r.Lookup(name)
	require.True(t, ok)
	assert.Equal(t, TypeName(reflect.TypeFor[physBoneBase]()), def.Extends)

	fields, err := r.Fields(name)
	require.NoError(t, err)

	kinds := make(map[string]scene.Kind, len(fields))
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		kinds[f.Name] = f.Kind
		names = append(names, f.Name)
	}

	assert.Equal(t, []string{
		"Root", "colliders",
		"Radius", "Curve", "Ignore", "Targets", "Limits", "Lookup", "Updated", "Mode", "Scratch", "parentOverride",
	}, names)
	assert.Equal(t, scene.KindRef, kinds["Root"])
	assert.Equal(t, scene.KindList, kinds["colliders"], "unexported fields are registered")
	assert.Equal(t, scene.KindScalar, kinds["Curve"])
	assert.Equal(t, scene.KindArray, kinds["Ignore"])
	assert.Equal(t, scene.KindList, kinds["Targets"])
	assert.Equal(t, scene.KindRecord, kinds["Limits"])
	assert.Equal(t, scene.KindOpaque, kinds["Lookup"])
	assert.Equal(t, scene.KindScalar, kinds["Mode"])
	assert.Equal(t, scene.KindRef, kinds["parentOverride"])

	limitsDef, ok := r.Lookup(TypeName(reflect.TypeFor[limits]()))
	require.True(t, ok, "nested record types are registered too")
	assert.Len(t, limitsDef.Fields, 3)

	require.NoError(t, RegisterStruct(r, reflect.TypeFor[physBone]()), "re-registering is a no-op")
	assert.Error(t, RegisterStruct(r, reflect.TypeFor[int]()))
}

package mir

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"ember/internal/source"
	"ember/internal/types"
)

func testEnv() *types.Env {
	env := types.NewEnv()
	env.AddRecord(types.RecordDef{Name: "error", Fields: nil})
	env.AddRecord(types.RecordDef{Name: "point", Fields: []types.Field{
		{Name: "x", Type: types.Number()},
		{Name: "y", Type: types.Number()},
	}})
	return env
}

func TestCompileTypePrimitivesAndRecord(t *testing.T) {
	env := testEnv()
	sp := source.Span{}

	cases := []struct {
		name string
		in   types.Type
		want Type
	}{
		{"boolean", types.Boolean(), Boolean()},
		{"none", types.None(), None()},
		{"number", types.Number(), Number()},
		{"string", types.String(), ByteString()},
		{"record", types.Record("point"), Record("point")},
		{"union-collapses-to-variant", types.Union(types.Number(), types.String()), VariantType()},
		{"any-is-variant", types.Any(), VariantType()},
		{"list-boxes-to-concrete-record", types.List(types.Number()), compileConcreteList()},
		{"map-boxes-to-concrete-record", types.Map(types.String(), types.Number()), compileConcreteMap()},
		{
			"function",
			types.Function([]types.Type{types.Number(), types.Boolean()}, types.String()),
			Function([]Type{Number(), Boolean()}, ByteString()),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := compileType(env, tc.in, sp)
			if err != nil {
				t.Fatalf("compileType(%v) returned error: %v", tc.in, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("compileType(%v) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

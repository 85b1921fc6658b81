package lockstep_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/lockstep-client/pkg/lockstep"
)

type contact struct {
	Name  lockstep.Optional[string] `json:"name,omitzero"  yaml:"name,omitempty"`
	Phone lockstep.Optional[string] `json:"phone,omitzero" yaml:"phone,omitempty"`
	Age   lockstep.Optional[int]    `json:"age,omitzero"   yaml:"age,omitempty"`
}

func TestOptional_Accessors(t *testing.T) {
	t.Parallel()

	some := lockstep.Some("x")
	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, "x", v)
	assert.True(t, some.IsPresent())
	assert.False(t, some.IsZero())
	assert.Equal(t, "x", some.OrElse("y"))
	require.NotNil(t, some.Ptr())
	assert.Equal(t, "x", *some.Ptr())
	assert.Equal(t, "x", some.String())

	none := lockstep.None[string]()
	_, ok = none.Get()
	assert.False(t, ok)
	assert.True(t, none.IsZero())
	assert.Equal(t, "y", none.OrElse("y"))
	assert.Nil(t, none.Ptr())
	assert.Empty(t, none.String())

	var zero lockstep.Optional[int]
	assert.False(t, zero.IsPresent())

	n := 7
	assert.Equal(t, lockstep.Some(7), lockstep.FromPtr(&n))
	assert.Equal(t, lockstep.None[int](), lockstep.FromPtr[int](nil))
}

func TestOptional_PresentZeroValueIsKept(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(contact{Age: lockstep.Some(0), Name: lockstep.Some("")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"","age":0}`, string(data))
}

func TestOptional_JSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   contact
		want string
	}{
		{name: "all absent", in: contact{}, want: `{}`},
		{name: "some present", in: contact{Name: lockstep.Some("Ada")}, want: `{"name":"Ada"}`},
		{
			name: "all present",
			in:   contact{Name: lockstep.Some("Ada"), Phone: lockstep.Some("555"), Age: lockstep.Some(36)},
			want: `{"name":"Ada","phone":"555","age":36}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := json.Marshal(tt.in)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))

			var decoded contact
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, tt.in, decoded)
		})
	}
}

func TestOptional_UnmarshalNull(t *testing.T) {
	t.Parallel()

	var decoded contact
	require.NoError(t, json.Unmarshal([]byte(`{"name":null,"age":3}`), &decoded))

	assert.False(t, decoded.Name.IsPresent())
	assert.Equal(t, 3, decoded.Age.OrElse(0))

	require.Error(t, json.Unmarshal([]byte(`{"age":"three"}`), &decoded))
}

func TestOptional_MarshalStandalone(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(lockstep.None[string]())
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	data, err = json.Marshal(lockstep.Some([]string{"a"}))
	require.NoError(t, err)
	assert.Equal(t, `["a"]`, string(data))
}

func TestOptional_YAML(t *testing.T) {
	t.Parallel()

	data, err := yaml.Marshal(contact{Name: lockstep.Some("Ada")})
	require.NoError(t, err)
	assert.Equal(t, "name: Ada\n", string(data))
}

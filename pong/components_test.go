package pong

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterComponentsCoversEntity(t *testing.T) {
	registry := NewStorage().Registry()

	entity := reflect.TypeFor[Entity]()
	for i := range entity.NumField() {
		field := entity.Field(i)
		assert.True(t, registry.Registered(field.Type.Elem()), field.Name)
	}
}

func TestSide(t *testing.T) {
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "right", Right.String())
	assert.Equal(t, Right, Left.Opponent())
	assert.Equal(t, Left, Right.Opponent())
}

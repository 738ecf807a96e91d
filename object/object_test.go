/*
File    : olisp/object/object_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringForms(t *testing.T) {
	assert.Equal(t, "3", (&Integer{Value: 3}).String())
	assert.Equal(t, "-7", (&Integer{Value: -7}).String())
	assert.Equal(t, "true", True.String())
	assert.Equal(t, "false", False.String())
	assert.Equal(t, "nil", None.String())
	assert.Equal(t, "hi", (&String{Value: "hi"}).String())
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		v       Value
		isTruth bool
	}{
		{&Integer{Value: 0}, false},
		{&Integer{Value: 1}, true},
		{&Float{Value: 0}, false},
		{&Float{Value: 0.1}, true},
		{&String{Value: ""}, false},
		{&String{Value: "x"}, true},
		{False, false},
		{True, true},
		{None, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.isTruth, Truthy(tt.v))
	}
}

func TestEqual_IntAndFloatPromotion(t *testing.T) {
	assert.True(t, Equal(&Integer{Value: 2}, &Float{Value: 2.0}))
	assert.True(t, Equal(&Float{Value: 2.0}, &Integer{Value: 2}))
	assert.False(t, Equal(&Integer{Value: 2}, &Float{Value: 2.1}))
}

func TestEqual_FloatEpsilon(t *testing.T) {
	assert.True(t, Equal(&Float{Value: 0.1 + 0.2}, &Float{Value: 0.3}))
	assert.False(t, Equal(&Float{Value: 1.0}, &Float{Value: 1.1}))
}

func TestEqual_DifferentKindsNeverEqualExceptIntAndFloat(t *testing.T) {
	assert.False(t, Equal(&Integer{Value: 1}, &String{Value: "1"}))
	assert.False(t, Equal(True, &Integer{Value: 1}))
	assert.False(t, Equal(None, False))
}

func TestEqual_StringsAndBooleans(t *testing.T) {
	assert.True(t, Equal(&String{Value: "abc"}, &String{Value: "abc"}))
	assert.False(t, Equal(&String{Value: "abc"}, &String{Value: "abd"}))
	assert.True(t, Equal(True, True))
	assert.False(t, Equal(True, False))
}

func TestBoolReturnsCanonicalSingletons(t *testing.T) {
	assert.Same(t, True, Bool(true))
	assert.Same(t, False, Bool(false))
}

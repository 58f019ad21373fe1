package driftcord

import (
	"reflect"
	"testing"
)

func TestReturnRangeInt32(t *testing.T) {
	rangeString := "0-4,6-7"
	max := int32(8)
	expected := []int32{0, 1, 2, 3, 4, 6, 7}

	result := returnRangeInt32(rangeString, max)

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Expected %v, but got %v", expected, result)
	}
}

func TestReturnRangeInt32Single(t *testing.T) {
	rangeString := "0"
	max := int32(8)
	expected := []int32{0}

	result := returnRangeInt32(rangeString, max)

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Expected %v, but got %v", expected, result)
	}
}

func TestReturnRangeInt32Empty(t *testing.T) {
	rangeString := ""
	max := int32(8)

	result := returnRangeInt32(rangeString, max)

	if len(result) != 0 {
		t.Errorf("Expected empty, but got %v", result)
	}
}

func TestReturnRangeInt32OutOfBounds(t *testing.T) {
	rangeString := "0-4,6-7,8"
	max := int32(8)
	expected := []int32{0, 1, 2, 3, 4, 6, 7}

	result := returnRangeInt32(rangeString, max)

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Expected %v, but got %v", expected, result)
	}
}

func TestIncludes(t *testing.T) {
	values := []string{"READY", "GUILD_CREATE"}

	if !includes(values, "READY") {
		t.Errorf("Expected READY to be included")
	}

	if includes(values, "TYPING_START") {
		t.Errorf("Expected TYPING_START to not be included")
	}

	if includes(nil, "READY") {
		t.Errorf("Expected nothing to be included in nil")
	}
}

func TestQuickHash(t *testing.T) {
	a := quickHash("token")
	b := quickHash("token")

	if a != b {
		t.Errorf("Expected identical digests, got %q and %q", a, b)
	}

	if len(a) != 64 {
		t.Errorf("Expected digest length 64, but got %d", len(a))
	}

	if quickHash("other") == a {
		t.Errorf("Expected different digests for different inputs")
	}
}

func TestRandomHex(t *testing.T) {
	length := 16
	result := randomHex(length)
	if len(result) != length*2 {
		t.Errorf("Expected length %d, but got %d", length*2, len(result))
	}
}

func TestRandomHexZeroLength(t *testing.T) {
	result := randomHex(0)
	if len(result) != 0 {
		t.Errorf("Expected length 0, but got %d", len(result))
	}
}

func TestRandomHexNegativeLength(t *testing.T) {
	result := randomHex(-10)

	if len(result) != 0 {
		t.Errorf("Expected length 0, but got %d", len(result))
	}
}

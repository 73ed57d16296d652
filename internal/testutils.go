package internal

import (
	"errors"
	"reflect"
	"testing"
)

func mismatch(t *testing.T, got, want interface{}) {
	t.Helper()

	t.Errorf("\nGot: %+v\nwant: %+v", got, want)
}

// AssertNoError stops the test on any error
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
}

// AssertErrored stops the test unless there is an error
func AssertErrored(t *testing.T, err error) {
	t.Helper()

	if err == nil {
		t.Fatal("Expected an error, but got nil")
	}
}

// AssertErrorIs stops the test unless err wraps target
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()

	if !errors.Is(err, target) {
		t.Fatalf("Expected error %q, got %v", target, err)
	}
}

// AssertEqual compares comparable values with ==
func AssertEqual(t *testing.T, got, want interface{}) {
	t.Helper()

	if got != want {
		mismatch(t, got, want)
	}
}

// AssertDeepEqual is AssertEqual for slices, maps and structs holding them
func AssertDeepEqual(t *testing.T, got, want interface{}) {
	t.Helper()

	if !reflect.DeepEqual(got, want) {
		mismatch(t, got, want)
	}
}

func AssertTrue(t *testing.T, got bool) {
	t.Helper()

	if !got {
		t.Error("Expected to be true, but it wasn't")
	}
}

func AssertNotEmptyString(t *testing.T, got string) {
	t.Helper()

	if got == "" {
		t.Error("unexpected empty string")
	}
}

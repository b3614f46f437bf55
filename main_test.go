//go:build !(js && wasm)

package main

import (
	"strings"
	"testing"
)

func TestScanArgs(t *testing.T) {
	var w, h int
	var pct float64
	if err := scanArgs([]string{"8", "2", "37.5"}, &w, &h, &pct); err != nil {
		t.Fatalf("scanArgs: %v", err)
	}
	if w != 8 || h != 2 || pct != 37.5 {
		t.Fatalf("parsed %d, %d, %v", w, h, pct)
	}

	err := scanArgs([]string{"3", "abc"}, &w, &h)
	if err == nil || !strings.Contains(err.Error(), `argument "abc"`) {
		t.Fatalf("want error naming the bad argument, got %v", err)
	}
	if err := scanArgs([]string{"3"}, &w, &h); err == nil {
		t.Fatalf("expected error for missing arguments")
	}
}

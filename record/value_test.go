/*
 * Copyright © 2026 Jake Folio, All rights reserved.
 */

package record

import (
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
)

func TestValueKinds(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		kind Kind
	}{
		{"null", Null(), KindNull},
		{"number", Number(5), KindNumber},
		{"string", String("x"), KindString},
		{"bool", Bool(true), KindBool},
		{"datetime", DateTime(strfmt.DateTime(time.Now())), KindDateTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.v.Kind() != tt.kind {
				t.Errorf("Expected kind %v, got %v", tt.kind, tt.v.Kind())
			}
		})
	}
}

func TestStrictEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same numbers", Number(5), Number(5), true},
		{"different numbers", Number(5), Number(6), false},
		{"same strings", String("a"), String("a"), true},
		{"number vs numeric string", Number(5), String("5"), false},
		{"bool vs number", Bool(true), Number(1), false},
		{"nulls", Null(), Null(), true},
		{"null vs zero number", Null(), Number(0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLooseEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"numeric string vs number", String("5"), Number(5), true},
		{"number vs numeric string", Number(5), String("5"), true},
		{"non-numeric string vs number", String("5a"), Number(5), false},
		{"two numeric strings", String("5"), String("5.0"), true},
		{"bool vs number one", Bool(true), Number(1), false},
		{"null vs zero", Null(), Number(0), false},
		{"plain strings", String("a"), String("a"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LooseEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("LooseEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestKeyCoercesNumericStrings(t *testing.T) {
	if Number(5).Key() != String("5").Key() {
		t.Error("number 5 and string \"5\" should share an index key")
	}
	if Number(5).Key() == String("5a").Key() {
		t.Error("string \"5a\" should not share a key with number 5")
	}
	if String("a").Key() == String("b").Key() {
		t.Error("distinct strings should have distinct keys")
	}
	if Bool(true).Key() == Number(1).Key() {
		t.Error("bool true should not share a key with number 1")
	}
}

func TestNormalize(t *testing.T) {
	if got := String("5").Normalize(); !got.Equal(Number(5)) {
		t.Errorf("Expected normalized number 5, got %v", got)
	}
	if got := String("5a").Normalize(); !got.Equal(String("5a")) {
		t.Errorf("Expected \"5a\" unchanged, got %v", got)
	}
	if got := Bool(true).Normalize(); !got.Equal(Bool(true)) {
		t.Errorf("Expected bool unchanged, got %v", got)
	}
}

func TestFromAny(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"nil", nil, Null()},
		{"bool", true, Bool(true)},
		{"string", "x", String("x")},
		{"float64", 1.5, Number(1.5)},
		{"int", 7, Number(7)},
		{"int64", int64(7), Number(7)},
		{"time", now, DateTime(strfmt.DateTime(now))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromAny(tt.in)
			if err != nil {
				t.Fatalf("FromAny(%v): %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("FromAny(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if _, err := FromAny([]string{"no"}); err == nil {
		t.Error("Expected error for unsupported type")
	}
}

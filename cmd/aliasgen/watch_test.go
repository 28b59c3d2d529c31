package main

import (
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
)

func TestRelevantEvent(t *testing.T) {
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{
			name:  "go file write",
			event: fsnotify.Event{Name: "units/directives.go", Op: fsnotify.Write},
			want:  true,
		},
		{
			name:  "declaration file write",
			event: fsnotify.Event{Name: "units/aliasgen.yaml", Op: fsnotify.Write},
			want:  true,
		},
		{
			name:  "go file removed",
			event: fsnotify.Event{Name: "units/directives.go", Op: fsnotify.Remove},
			want:  true,
		},
		{
			name:  "own output ignored",
			event: fsnotify.Event{Name: "units/units.gen.go", Op: fsnotify.Write},
			want:  false,
		},
		{
			name:  "chmod ignored",
			event: fsnotify.Event{Name: "units/directives.go", Op: fsnotify.Chmod},
			want:  false,
		},
		{
			name:  "unrelated file ignored",
			event: fsnotify.Event{Name: "units/README.md", Op: fsnotify.Write},
			want:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relevantEvent(tt.event))
		})
	}
}

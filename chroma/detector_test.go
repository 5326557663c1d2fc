package chroma_test

import (
	"testing"

	"github.com/fwojciec/diffpreview/chroma"
	"github.com/stretchr/testify/assert"
)

func TestDetector_DetectFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"src/Core/Program.cs", "C#"},
		{"Program.cs", "C#"},
		{"tools/build.py", "Python"},
		{"cmd/main.go", "Go"},
		{".editorconfig", "INI"},
		{"src/.globalconfig", "INI"},
		{"src/Core/Core.csproj", "XML"},
		{"Directory.Build.props", "XML"},
		{"notes.unknownext", ""},
	}

	detector := chroma.NewDetector()
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, detector.DetectFromPath(tt.path))
		})
	}
}

package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-mmdc/internal/yamlutil"
)

type settings struct {
	Width   int    `yaml:"width"`
	Timeout string `yaml:"timeout"`
	Browser struct {
		Bin string `yaml:"bin"`
	} `yaml:"browser"`
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Strict decoding of settings documents
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		data       []byte
		dest       any
		wantErr    error
		wantAnyErr bool
	}{
		{
			name: "known fields decode",
			data: []byte("width: 800\ntimeout: 10s\nbrowser:\n  bin: /usr/bin/chromium\n"),
			dest: &settings{},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &settings{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("width: 1"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:       "unknown field rejected",
			data:       []byte("width: 1\nheigth: 2\n"),
			dest:       &settings{},
			wantAnyErr: true,
		},
		{
			name:       "invalid syntax",
			data:       []byte("width: [unclosed"),
			dest:       &settings{},
			wantAnyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if tt.wantAnyErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.HasPrefix(err.Error(), "yamlutil:") {
					t.Errorf("error %q should carry yamlutil prefix", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			s := tt.dest.(*settings)
			if s.Width != 800 || s.Timeout != "10s" || s.Browser.Bin != "/usr/bin/chromium" {
				t.Errorf("decoded = %+v", s)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict_SizeLimit - Oversized documents are rejected early
// ---------------------------------------------------------------------------

func TestUnmarshalStrict_SizeLimit(t *testing.T) {
	t.Parallel()

	data := []byte("timeout: " + strings.Repeat("x", yamlutil.MaxInputSize))
	err := yamlutil.UnmarshalStrict(data, &settings{})
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Fatalf("error = %v, want ErrInputTooLarge", err)
	}
}

package cachedprop_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"
	cachedprop "github.com/probablyarth/cachedprop-go"
)

func TestLogObserver(t *testing.T) {
	for _, tc := range []struct {
		name      string
		verbosity int
		want      []string
	}{
		{
			name:      "errors only",
			verbosity: 0,
			want: []string{
				`"msg":"cached property computation failed","error":"boom","property":"rows"`,
			},
		},
		{
			name:      "verbose",
			verbosity: 1,
			want: []string{
				`"event":"miss","property":"rows"`,
				`"msg":"cached property computation failed","error":"boom","property":"rows"`,
				`"event":"miss","property":"rows"`,
				`"event":"hit","property":"rows"`,
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var lines []string
			log := funcr.NewJSON(func(obj string) {
				lines = append(lines, obj)
			}, funcr.Options{Verbosity: tc.verbosity})

			fail := true
			prop := cachedprop.New("rows", func(ctx context.Context, d *dataset) (int, error) {
				if fail {
					fail = false
					return 0, errors.New("boom")
				}
				return 1, nil
			})

			d := &dataset{}
			d.Configure(cachedprop.WithObserver(cachedprop.LogObserver(log)))
			for range 3 {
				prop.Get(context.Background(), d)
			}

			if len(lines) != len(tc.want) {
				t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(tc.want), strings.Join(lines, "\n"))
			}
			for i, want := range tc.want {
				if !strings.Contains(lines[i], want) {
					t.Errorf("line %d = %s, want it to contain %s", i, lines[i], want)
				}
			}
		})
	}
}

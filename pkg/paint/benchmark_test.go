package paint_test

import (
	"context"
	"strings"
	"testing"

	"github.com/yaklabco/textengine/pkg/importer"
	"github.com/yaklabco/textengine/pkg/layout"
	"github.com/yaklabco/textengine/pkg/measure"
	"github.com/yaklabco/textengine/pkg/paint"
)

func benchmarkMarkdown() []byte {
	var sb strings.Builder
	for range 50 {
		sb.WriteString("# Section\n\n")
		sb.WriteString("Lorem ipsum dolor sit amet, consectetur adipiscing elit. 猫は白です。 🌍\n\n")
		sb.WriteString("> A call-out that is rendered as an info box.\n\n")
		sb.WriteString("- first item\n- second item\n\n")
	}
	return []byte(sb.String())
}

func BenchmarkPipeline(b *testing.B) {
	content := benchmarkMarkdown()
	backends := map[string]measure.WrappingBackend{
		"terminal":  measure.Terminal{},
		"monospace": measure.NewMonospace(1, 1),
	}

	for name, backend := range backends {
		b.Run(name, func(b *testing.B) {
			doc, _, err := importer.Import(context.Background(), "bench.md", content, importer.Options{})
			if err != nil {
				b.Fatal(err)
			}
			engine := layout.NewEngine(layout.Options{})
			painter := paint.New(paint.Options{Wrapper: backend})

			b.ResetTimer()
			for b.Loop() {
				result, err := engine.Layout(doc, 80, backend)
				if err != nil {
					b.Fatal(err)
				}
				_ = painter.Paint(result.DisplayList, 80, result.Height).String()
			}
		})
	}
}

package tabular_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-gridfield/pkg/tabular"
)

func storedThreeRows() tabular.Table {
	return tabular.Table{
		Titles: []string{"A", "B"},
		Data:   [][]string{{"1", "2"}, {"3", "4"}, {"5", "6"}},
	}
}

func TestRenderPublicMarkup(t *testing.T) {
	got := tabular.RenderPublic(storedThreeRows(), tabular.Config{}, nil)
	want := `<table><thead><tr><th>A</th><th>B</th></tr></thead><tbody>` +
		`<tr><td>1</td><td>2</td></tr><tr><td>3</td><td>4</td></tr><tr><td>5</td><td>6</td></tr>` +
		`</tbody></table>`
	if got != want {
		t.Fatalf("public markup mismatch\nwant: %s\n got: %s", want, got)
	}
}

func TestRenderPublicLimits(t *testing.T) {
	got := tabular.RenderPublic(storedThreeRows(), tabular.Config{LimitRows: 1, LimitCols: 1}, nil)
	want := `<table><thead><tr><th>A</th></tr></thead><tbody><tr><td>1</td></tr></tbody></table>`
	if got != want {
		t.Fatalf("limited markup mismatch\nwant: %s\n got: %s", want, got)
	}

	expanded := tabular.RenderPublic(storedThreeRows(), tabular.Config{LimitRows: 10, LimitCols: 10}, nil)
	if n := strings.Count(expanded, "<td>"); n != 6 {
		t.Fatalf("limits must never expand output, got %d cells", n)
	}
}

func TestRenderPublicNoHeaders(t *testing.T) {
	got := tabular.RenderPublic(storedThreeRows(), tabular.Config{NoHeaders: true, LimitRows: 2}, nil)
	want := `<tbody><tr><td>1</td><td>2</td></tr><tr><td>3</td><td>4</td></tr></tbody>`
	if got != want {
		t.Fatalf("noheaders markup mismatch\nwant: %s\n got: %s", want, got)
	}
	for _, tag := range []string{"<table", "<thead", "<th>"} {
		if strings.Contains(got, tag) {
			t.Fatalf("did not expect %s with noheaders", tag)
		}
	}
}

func TestRenderPublicPadsShortRows(t *testing.T) {
	table := tabular.Table{Titles: []string{"A", "B"}, Data: [][]string{{"only"}}}
	got := tabular.RenderPublic(table, tabular.Config{NoHeaders: true}, nil)
	if got != `<tbody><tr><td>only</td><td></td></tr></tbody>` {
		t.Fatalf("unexpected output for short row: %s", got)
	}
}

func TestRenderPublicSanitizes(t *testing.T) {
	table := tabular.Table{
		Titles: []string{"Name"},
		Data:   [][]string{{`<strong>Bold</strong><script>alert(1)</script>`}},
	}
	got := tabular.RenderPublic(table, tabular.Config{NoHeaders: true}, tabular.DefaultSanitizer())
	if !strings.Contains(got, "<strong>Bold</strong>") {
		t.Fatalf("expected inline markup to survive: %s", got)
	}
	if strings.Contains(got, "script") {
		t.Fatalf("expected script to be stripped: %s", got)
	}
}

func TestSearchTextIsAlwaysEmpty(t *testing.T) {
	inputs := []any{nil, "text", storedThreeRows(), map[string]any{"data": []any{}}}
	for _, in := range inputs {
		if got := tabular.SearchText(in); got != "" {
			t.Fatalf("SearchText(%#v) = %q, want empty", in, got)
		}
	}
}

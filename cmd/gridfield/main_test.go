package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-gridfield/internal/prompt"
	"github.com/goliatone/go-gridfield/internal/store"
	"github.com/goliatone/go-gridfield/pkg/tabular"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGridCommand(t *testing.T) {
	out, err := run(t, `{"titles":["Plan","Price"],"data":[["Basic","10"]]}`,
		"grid", "-a", "id=prices", "-a", "rows=2", "-a", "cols=Plan,Price", "--prior", "-")
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, `<link rel="stylesheet" href="/addons/fieldtypes/tabular/assets/tabular.css" />`))
	assert.Contains(t, out, `name="prices_row0_0" value="Basic"`)
	assert.Equal(t, 4, strings.Count(out, `<input type="text"`))
}

func TestGridCommandInvalidConfig(t *testing.T) {
	out, err := run(t, "", "grid", "-a", "cols=A")
	require.NoError(t, err)
	assert.Contains(t, out, "Table has invalid number of rows (0) or columns (1). Check your template.")
}

func TestGridCommandAssetPathFromEnv(t *testing.T) {
	t.Setenv("GRIDFIELD_ASSET_PATH", "/static/tabular")
	out, err := run(t, "", "grid", "-a", "rows=1", "-a", "cols=A")
	require.NoError(t, err)
	assert.Contains(t, out, `href="/static/tabular/tabular.css"`)
}

func TestParseCommand(t *testing.T) {
	out, err := run(t, "t_row0_0=a&t_row0_1=b&t_row1_0=+&t_row2_0=",
		"parse", "-a", "id=t", "-a", "rows=3", "-a", "cols=A,B")
	require.NoError(t, err)
	assert.JSONEq(t, `{"titles":["A","B"],"data":[["a","b"]]}`, out)
}

func TestRenderCommand(t *testing.T) {
	stored := `{"titles":["A","B"],"data":[["1","2"],["3","4"]]}`
	out, err := run(t, stored, "render", "-a", "limitrows=1", "-a", "noheaders=true")
	require.NoError(t, err)
	assert.Equal(t, "<tbody><tr><td>1</td><td>2</td></tr></tbody>\n", out)
}

func TestAttrFlagsRejectMalformed(t *testing.T) {
	_, err := run(t, "", "grid", "-a", "rows")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid attribute "rows"`)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "gridfield dev\n", out)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("asset_path: /cfg/assets\nlog_level: debug\n"), 0o644))

	out, err := run(t, "", "--config", path, "grid", "-a", "rows=1", "-a", "cols=A")
	require.NoError(t, err)
	assert.Contains(t, out, `href="/cfg/assets/tabular.css"`)

	_, err = run(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "version")
	require.Error(t, err)
}

type answers struct {
	cells   []string
	notices []string
}

func (a *answers) Cell(_ context.Context, cell prompt.Cell) (string, error) {
	if len(a.cells) == 0 {
		return cell.Current, nil
	}
	next := a.cells[0]
	a.cells = a.cells[1:]
	return next, nil
}

func (a *answers) AddRow(context.Context, int, int) (bool, error) { return false, nil }

func (a *answers) PickField(context.Context, []string) (int, error) { return 0, nil }

func (a *answers) Notify(_ context.Context, msg string) error {
	a.notices = append(a.notices, msg)
	return nil
}

func TestEditSavesField(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "content.db")

	db, err := store.Open(ctx, dbPath)
	require.NoError(t, err)
	item, err := db.CreateItem(ctx, "schedule", "Conference")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	cfg, err := loadConfig("")
	require.NoError(t, err)
	cfg.Set(cfgKeyDB, dbPath)
	c := &cli{cfg: cfg, logger: discardLogger()}

	driver := &answers{cells: []string{"09:00", "Main", "Keynote"}}
	require.NoError(t, c.edit(ctx, driver, item.ID, ""))
	assert.Contains(t, driver.notices, "Saved 1 row(s) to Sessions.")

	db, err = store.Open(ctx, dbPath)
	require.NoError(t, err)
	defer db.Close()
	fields, err := db.Fields(ctx, item.ID)
	require.NoError(t, err)

	var table tabular.Table
	require.NoError(t, json.Unmarshal(fields["sessions"].Raw, &table))
	assert.Equal(t, [][]string{{"09:00", "Main", "Keynote"}}, table.Data)

	err = c.edit(ctx, driver, item.ID, "nope")
	require.Error(t, err)
}

func TestRenderCommandSanitize(t *testing.T) {
	stored := `{"titles":["A"],"data":[["<b>x</b><script>y</script>"]]}`

	out, err := run(t, stored, "render", "-a", "noheaders=1")
	require.NoError(t, err)
	assert.Equal(t, "<tbody><tr><td><b>x</b></td></tr></tbody>\n", out)

	out, err = run(t, stored, "--sanitize=false", "render", "-a", "noheaders=1")
	require.NoError(t, err)
	assert.Equal(t, "<tbody><tr><td><b>x</b><script>y</script></td></tr></tbody>\n", out)
}

package tabular_test

import (
	"testing"

	"github.com/goliatone/go-gridfield/pkg/fieldtype"
	"github.com/goliatone/go-gridfield/pkg/tabular"
	"github.com/goliatone/go-gridfield/pkg/testsupport"
)

func pricingFixture(t *testing.T) (tabular.Config, tabular.Table) {
	t.Helper()
	var stored tabular.Table
	testsupport.JSON(t, "pricing.json", &stored)
	cfg := tabular.ParseConfig(fieldtype.Tag{"id": "prices", "rows": "4", "cols": "Plan,Monthly,Notes"})
	return cfg, stored
}

func TestRenderAdminGridGolden(t *testing.T) {
	cfg, stored := pricingFixture(t)
	testsupport.Golden(t, "pricing_admin.golden", tabular.RenderAdminGrid(cfg, stored))
}

func TestRenderPublicGolden(t *testing.T) {
	cfg, stored := pricingFixture(t)
	testsupport.Golden(t, "pricing_public.golden", tabular.RenderPublic(stored, cfg, tabular.DefaultSanitizer()))
}

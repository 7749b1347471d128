package selftest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAgainstRepoFixtures(t *testing.T) {
	results, err := Run("../../testdata")
	require.NoError(t, err)
	require.NotEmpty(t, results)

	byName := map[string]CaseResult{}
	for _, r := range results {
		byName[r.Name] = r
	}

	for _, name := range []string{"basic/function.addaat", "basic/point.addaat", "basic/loop.addaat"} {
		r, ok := byName[name]
		require.Truef(t, ok, "missing result for %s", name)
		assert.Truef(t, r.Pass, "expected %s to pass: err=%v diff=%s", name, r.Err, r.Diff)
	}

	for _, name := range []string{
		"errors/void_array.addaat", "errors/redefinition.addaat",
		"errors/static_member_access.addaat", "errors/enum_constant_expr.addaat",
	} {
		r, ok := byName[name]
		require.Truef(t, ok, "missing result for %s", name)
		assert.Truef(t, r.Pass, "expected %s to fail translation as intended", name)
	}
}

func TestUnifiedDiffReportsMismatch(t *testing.T) {
	diff := unifiedDiff("int32_t a;\n", "int32_t b;\n")
	assert.Contains(t, diff, "-int32_t a;")
	assert.Contains(t, diff, "+int32_t b;")
}

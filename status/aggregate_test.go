package status

import (
	"testing"

	fedcal "github.com/coredds/fedcal-go"
	"github.com/stretchr/testify/require"
)

func TestStatusAtDateExcludesDHSBeforeFormation(t *testing.T) {
	idx, err := LoadDefault()
	require.NoError(t, err)

	m, err := StatusAtDate(idx, testDate(t, 1995, 11, 16))
	require.NoError(t, err)
	_, present := m[fedcal.DHS]
	require.False(t, present, "DHS should not appear in the status map before it existed")
	require.Len(t, m, len(fedcal.AllDepartments)-1)
}

func TestStatusAtDateIncludesDHSAfterFormation(t *testing.T) {
	idx, err := LoadDefault()
	require.NoError(t, err)

	m, err := StatusAtDate(idx, testDate(t, 2013, 10, 5))
	require.NoError(t, err)
	require.Len(t, m, len(fedcal.AllDepartments))
}

func TestAllUnfundedDuring2013Shutdown(t *testing.T) {
	idx, err := LoadDefault()
	require.NoError(t, err)

	m, err := StatusAtDate(idx, testDate(t, 2013, 10, 5))
	require.NoError(t, err)
	require.True(t, m.AllUnfunded())
	require.True(t, m.AnyShutdown())
}

func TestPartialShutdown2019SplitsDepartmentSet(t *testing.T) {
	idx, err := LoadDefault()
	require.NoError(t, err)

	m, err := StatusAtDate(idx, testDate(t, 2019, 1, 15))
	require.NoError(t, err)

	affected := []fedcal.Department{fedcal.DHS, fedcal.DoC, fedcal.DoI, fedcal.DoJ, fedcal.DoS, fedcal.DoT, fedcal.HUD, fedcal.USDA, fedcal.USDT}
	for _, dept := range affected {
		require.Equal(t, fedcal.Shutdown, m[dept], "%s should be shut down on 2019-01-15", dept.Abbreviation())
	}
	require.Equal(t, fedcal.FullApprops, m[fedcal.DoD], "DoD should be fully funded on 2019-01-15")
	require.False(t, m.AllUnfunded())
	require.True(t, m.AnyShutdown())
	require.False(t, m.AnyShutdown() && m.AllFullAppropriations())
}

func TestStatusOverRangeIncludesBoundariesAndCollapsesRepeats(t *testing.T) {
	idx, err := LoadDefault()
	require.NoError(t, err)

	start, end := testDate(t, 2013, 9, 28), testDate(t, 2013, 10, 20)
	snapshots, err := StatusOverRange(idx, start, end)
	require.NoError(t, err)
	require.NotEmpty(t, snapshots)
	require.True(t, snapshots[0].Date.Equal(start))
	require.True(t, snapshots[len(snapshots)-1].Date.Equal(end))
	for i := 1; i < len(snapshots); i++ {
		require.False(t, snapshots[i].Status.Equal(snapshots[i-1].Status) && i != len(snapshots)-1,
			"intermediate snapshots should only appear on genuine status changes")
	}
}

func TestStatusMapMarshalJSONUsesAbbreviationKeys(t *testing.T) {
	idx, err := LoadDefault()
	require.NoError(t, err)
	m, err := StatusAtDate(idx, testDate(t, 2020, 1, 1))
	require.NoError(t, err)

	data, err := m.MarshalJSON()
	require.NoError(t, err)
	require.Contains(t, string(data), `"DHS"`)
}

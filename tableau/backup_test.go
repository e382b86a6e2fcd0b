package tableau_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvmilp/tableau"
)

// BackupSuite exercises Save/Restore and cut application on the fleet model.
type BackupSuite struct {
	suite.Suite
	tb *tableau.Tableau
}

func (s *BackupSuite) SetupTest() {
	s.tb = mustNew(s.T(), britYank(s.T(), 500, true))
}

// TestRestoreBeforeSave is a contract violation, not a panic.
func (s *BackupSuite) TestRestoreBeforeSave() {
	require.False(s.T(), s.tb.HasSnapshot())
	err := s.tb.Restore()
	require.ErrorIs(s.T(), err, tableau.ErrNoSnapshot)
	require.ErrorIs(s.T(), err, tableau.ErrContractViolation)
}

// TestSaveTwice keeps the first restore point.
func (s *BackupSuite) TestSaveTwice() {
	require.NoError(s.T(), s.tb.Solve())
	require.NoError(s.T(), s.tb.Save())
	err := s.tb.Save()
	require.ErrorIs(s.T(), err, tableau.ErrSnapshotExists)
	require.ErrorIs(s.T(), err, tableau.ErrContractViolation)
	require.True(s.T(), s.tb.HasSnapshot())
}

// TestRestoreIdempotent: restore + same cuts + solve yields bit-identical state.
func (s *BackupSuite) TestRestoreIdempotent() {
	require.NoError(s.T(), s.tb.Solve())
	require.NoError(s.T(), s.tb.Save())
	root := grid(s.tb)
	rootVals := s.tb.Values()

	cuts := []tableau.Cut{{Kind: tableau.CutMax, Index: 0, Value: 25}}

	require.NoError(s.T(), s.tb.AddCutConstraints(cuts))
	require.NoError(s.T(), s.tb.Solve())
	first, firstVals, firstEval := grid(s.tb), s.tb.Values(), s.tb.InternalEvaluation()

	require.NoError(s.T(), s.tb.Restore())
	require.Equal(s.T(), root, grid(s.tb))
	require.Equal(s.T(), rootVals, s.tb.Values())

	require.NoError(s.T(), s.tb.AddCutConstraints(cuts))
	require.NoError(s.T(), s.tb.Solve())
	require.Equal(s.T(), first, grid(s.tb))
	require.Equal(s.T(), firstVals, s.tb.Values())
	require.Equal(s.T(), firstEval, s.tb.InternalEvaluation())

	require.NoError(s.T(), s.tb.Restore())
	require.NoError(s.T(), s.tb.Restore())
	require.Equal(s.T(), root, grid(s.tb))
}

// TestRestoreEmptyCuts: restore, no cuts, solve reproduces the root solve.
func (s *BackupSuite) TestRestoreEmptyCuts() {
	require.NoError(s.T(), s.tb.Solve())
	require.NoError(s.T(), s.tb.Save())
	root, rootVals, rootEval := grid(s.tb), s.tb.Values(), s.tb.InternalEvaluation()

	require.NoError(s.T(), s.tb.AddCutConstraints([]tableau.Cut{{Kind: tableau.CutMin, Index: 1, Value: 19}}))
	require.NoError(s.T(), s.tb.Solve())

	for k := 0; k < 2; k++ {
		require.NoError(s.T(), s.tb.Restore())
		require.NoError(s.T(), s.tb.AddCutConstraints(nil))
		require.NoError(s.T(), s.tb.AddCutConstraints([]tableau.Cut{}))
		require.NoError(s.T(), s.tb.Solve())
		require.True(s.T(), s.tb.Feasible())
		require.Equal(s.T(), rootVals, s.tb.Values())
		require.Equal(s.T(), rootEval, s.tb.InternalEvaluation())
		require.Equal(s.T(), root, grid(s.tb))
	}
}

// TestRestoreUndoesCuts checks that bounds come back after Restore.
func (s *BackupSuite) TestRestoreUndoesCuts() {
	require.NoError(s.T(), s.tb.Solve())
	require.NoError(s.T(), s.tb.Save())

	require.NoError(s.T(), s.tb.AddCutConstraints([]tableau.Cut{
		{Kind: tableau.CutMin, Index: 1, Value: 3},
		{Kind: tableau.CutMax, Index: 1, Value: 7},
	}))
	lo, up, err := s.tb.Bounds(1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3.0, lo)
	require.Equal(s.T(), 7.0, up)

	require.NoError(s.T(), s.tb.Restore())
	lo, up, err = s.tb.Bounds(1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, lo)
	require.Equal(s.T(), inf, up)
}

// TestCutsNeverLoosen: a weaker cut leaves the bound alone.
func (s *BackupSuite) TestCutsNeverLoosen() {
	require.NoError(s.T(), s.tb.AddCutConstraints([]tableau.Cut{{Kind: tableau.CutMax, Index: 0, Value: 10}}))
	require.NoError(s.T(), s.tb.AddCutConstraints([]tableau.Cut{
		{Kind: tableau.CutMax, Index: 0, Value: 20},
		{Kind: tableau.CutMin, Index: 0, Value: -5},
	}))
	lo, up, err := s.tb.Bounds(0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, lo)
	require.Equal(s.T(), 10.0, up)
}

// TestCutValidation rejects the whole batch on the first bad cut.
func (s *BackupSuite) TestCutValidation() {
	cases := []struct {
		cut  tableau.Cut
		want error
	}{
		{tableau.Cut{Kind: tableau.CutMin, Index: 2, Value: 1}, tableau.ErrCutOutOfRange},
		{tableau.Cut{Kind: tableau.CutMax, Index: -1, Value: 1}, tableau.ErrCutOutOfRange},
		{tableau.Cut{Kind: tableau.CutKind(9), Index: 0, Value: 1}, tableau.ErrUnknownCutKind},
		{tableau.Cut{Kind: tableau.CutMin, Index: 0, Value: nan()}, tableau.ErrNaN},
	}
	for _, tc := range cases {
		err := s.tb.AddCutConstraints([]tableau.Cut{{Kind: tableau.CutMin, Index: 1, Value: 4}, tc.cut})
		require.ErrorIs(s.T(), err, tc.want)

		lo, _, berr := s.tb.Bounds(1)
		require.NoError(s.T(), berr)
		require.Equal(s.T(), 0.0, lo, "no cut of a rejected batch is applied")
	}
	require.ErrorIs(s.T(), s.tb.AddCutConstraints([]tableau.Cut{{Index: 5}}), tableau.ErrContractViolation)
}

// TestCrossingCutsInfeasible: crossed bounds are data, reported by Solve.
func (s *BackupSuite) TestCrossingCutsInfeasible() {
	require.NoError(s.T(), s.tb.Solve())
	require.NoError(s.T(), s.tb.Save())
	require.NoError(s.T(), s.tb.AddCutConstraints([]tableau.Cut{
		{Kind: tableau.CutMin, Index: 0, Value: 30},
		{Kind: tableau.CutMax, Index: 0, Value: 20},
	}))
	require.NoError(s.T(), s.tb.Solve())
	require.False(s.T(), s.tb.Feasible())

	require.NoError(s.T(), s.tb.Restore())
	require.True(s.T(), s.tb.Feasible())
}

// TestCutMakesRowsInfeasible: the cut itself is consistent but the rows are not.
func (s *BackupSuite) TestCutMakesRowsInfeasible() {
	require.NoError(s.T(), s.tb.Solve())
	require.NoError(s.T(), s.tb.Save())
	require.NoError(s.T(), s.tb.AddCutConstraints([]tableau.Cut{{Kind: tableau.CutMin, Index: 1, Value: 32}}))
	require.NoError(s.T(), s.tb.Solve())
	require.False(s.T(), s.tb.Feasible())
}

func TestBackupSuite(t *testing.T) {
	suite.Run(t, new(BackupSuite))
}

package textab

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findIssue(t *testing.T, issues []ValidationIssue, substr string) ValidationIssue {
	t.Helper()
	for _, issue := range issues {
		if strings.Contains(issue.Message, substr) {
			return issue
		}
	}
	t.Fatalf("no issue containing %q in %v", substr, issues)
	return ValidationIssue{}
}

func hasIssue(issues []ValidationIssue, substr string) bool {
	for _, issue := range issues {
		if strings.Contains(issue.Message, substr) {
			return true
		}
	}
	return false
}

func TestValidate_CleanGrid(t *testing.T) {
	g := New(3, 3)
	require.True(t, g.SetContent(0, 0, "head"))
	require.True(t, g.Merge(0, 0, 0, 2))
	require.True(t, g.SetContent(1, 0, "a"))
	g.SetHeaderRowSpec("1")
	g.SetHeaderColSpec("1-2")

	assert.Empty(t, g.Validate())
}

func TestValidate_RegionOutOfBounds(t *testing.T) {
	g := New(2, 2)
	g.regions = append(g.regions, Region{StartRow: 0, StartCol: 0, EndRow: 0, EndCol: 5})

	issue := findIssue(t, g.Validate(), "extends beyond the 2x2 grid")
	assert.Equal(t, SeverityError, issue.Severity)
	assert.Equal(t, -1, issue.Row)
}

func TestValidate_MalformedRegion(t *testing.T) {
	g := New(2, 2)
	g.regions = append(g.regions, Region{StartRow: 1, StartCol: 0, EndRow: 0, EndCol: 1})

	issue := findIssue(t, g.Validate(), "is malformed")
	assert.Equal(t, SeverityError, issue.Severity)
}

func TestValidate_DegenerateRegion(t *testing.T) {
	g := New(2, 2)
	g.regions = append(g.regions, Region{StartRow: 0, StartCol: 0, EndRow: 0, EndCol: 0})

	findIssue(t, g.Validate(), "covers a single cell")
}

func TestValidate_OverlappingRegions(t *testing.T) {
	g := New(2, 2)
	require.True(t, g.Merge(0, 0, 0, 1))
	g.regions = append(g.regions, Region{StartRow: 0, StartCol: 1, EndRow: 1, EndCol: 1})

	findIssue(t, g.Validate(), "overlap")
}

func TestValidate_AnchorSpanMismatch(t *testing.T) {
	g := New(2, 2)
	require.True(t, g.Merge(0, 0, 0, 1))
	g.Cell(0, 0).Span = Span{Rows: 2, Cols: 2}

	issue := findIssue(t, g.Validate(), "anchor span")
	assert.Equal(t, 0, issue.Row)
	assert.Equal(t, 0, issue.Col)
}

func TestValidate_AnchorMarkedMergedPart(t *testing.T) {
	g := New(2, 2)
	require.True(t, g.Merge(0, 0, 0, 1))
	g.Cell(0, 0).MergedPart = true

	findIssue(t, g.Validate(), "anchor of merged region")
}

func TestValidate_MemberNotMarked(t *testing.T) {
	g := New(2, 2)
	require.True(t, g.Merge(0, 0, 0, 1))
	g.Cell(0, 1).MergedPart = false

	issue := findIssue(t, g.Validate(), "is not marked merged-part")
	assert.Equal(t, 0, issue.Row)
	assert.Equal(t, 1, issue.Col)
}

func TestValidate_MemberContentWarning(t *testing.T) {
	g := New(2, 2)
	require.True(t, g.Merge(0, 0, 0, 1))
	g.Cell(0, 1).Content = "ghost"

	issue := findIssue(t, g.Validate(), "holds content that will never render")
	assert.Equal(t, SeverityWarning, issue.Severity)
	assert.Equal(t, 0, issue.Row)
	assert.Equal(t, 1, issue.Col)
}

func TestValidate_OrphanMergeState(t *testing.T) {
	g := New(2, 2)
	g.Cell(1, 0).MergedPart = true

	issue := findIssue(t, g.Validate(), "no recorded region covers it")
	assert.Equal(t, SeverityError, issue.Severity)
	assert.Equal(t, 1, issue.Row)
	assert.Equal(t, 0, issue.Col)

	g = New(2, 2)
	g.Cell(0, 0).Span = Span{Rows: 1, Cols: 2}
	findIssue(t, g.Validate(), "no recorded region covers it")
}

func TestValidate_HeaderSpecMalformedToken(t *testing.T) {
	g := New(2, 2)
	g.SetHeaderRowSpec("1,abc")

	issue := findIssue(t, g.Validate(), `token "abc" is malformed`)
	assert.Equal(t, SeverityWarning, issue.Severity)
	// The valid token still resolves, so nothing else is flagged.
	assert.False(t, hasIssue(g.Validate(), "matches nothing"))
}

func TestValidate_HeaderSpecMatchesNothing(t *testing.T) {
	g := New(2, 2)
	g.SetHeaderColSpec("abc")

	issues := g.Validate()
	findIssue(t, issues, `header column spec "abc" matches nothing`)
}

func TestValidate_HeaderSpecBeyondBounds(t *testing.T) {
	g := New(2, 4)
	g.SetHeaderRowSpec("5")

	issue := findIssue(t, g.Validate(), `names row 5, but the grid has only 2`)
	assert.Equal(t, SeverityWarning, issue.Severity)

	// Columns are checked against their own limit.
	g.SetHeaderRowSpec("")
	g.SetHeaderColSpec("4")
	assert.Empty(t, g.Validate())
}

func TestValidateTemplate_CleanExpressions(t *testing.T) {
	g := New(2, 2)
	require.True(t, g.SetContent(0, 0, "${a + b}"))
	require.True(t, g.SetContent(0, 1, "literal"))
	require.True(t, g.SetContent(1, 0, "mixed ${upper(name)} text"))

	assert.Empty(t, g.ValidateTemplate())
}

func TestValidateTemplate_SyntaxError(t *testing.T) {
	g := New(2, 2)
	require.True(t, g.SetContent(1, 1, "${1 +}"))

	issues := g.ValidateTemplate()
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityError, issues[0].Severity)
	assert.Equal(t, 1, issues[0].Row)
	assert.Equal(t, 1, issues[0].Col)
	assert.Contains(t, issues[0].Message, `invalid expression syntax "1 +"`)
}

func TestValidateTemplate_OnlyBadSegmentsFlagged(t *testing.T) {
	g := New(1, 1)
	require.True(t, g.SetContent(0, 0, "${ok} and ${1 +}"))

	issues := g.ValidateTemplate()
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, `"1 +"`)
}

func TestValidationIssue_String(t *testing.T) {
	cell := ValidationIssue{Severity: SeverityError, Row: 2, Col: 3, Message: "boom"}
	assert.Equal(t, "[ERROR] (2,3): boom", cell.String())

	grid := ValidationIssue{Severity: SeverityWarning, Row: -1, Col: -1, Message: "odd"}
	assert.Equal(t, "[WARN] odd", grid.String())
}

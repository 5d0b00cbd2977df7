package ll

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Terminal codes for the Dyck grammar used throughout this file.
const (
	lparen uint64 = 0
	rparen uint64 = 1
)

func dyckCfg() *Cfg {
	g := NewCfg(1)
	g.EpsilonProducers[0] = struct{}{}
	g.AddProduction(0, Production{Terminal(lparen), Nonterminal(0), Terminal(rparen), Nonterminal(0)})
	return g
}

// TestDyckTableRow checks the exact table row for the Dyck-bracket
// grammar: { (: 0, ): EPSILON, END: EPSILON }.
func TestDyckTableRow(t *testing.T) {
	table, err := Build(dyckCfg())
	require.NoError(t, err)

	require.Len(t, table.ParseTable, 1)
	row := table.ParseTable[0]
	assert.Equal(t, uint64(0), row[lparen])
	assert.Equal(t, EpsilonRuleCode, row[rparen])
	assert.Equal(t, EpsilonRuleCode, row[EndSymbolCode])
	assert.Len(t, row, 3)
}

// tokenTape is a minimal Tokens[struct{}] backed by a terminal-code slice,
// reporting EndSymbolCode once exhausted and never carrying a value.
type tokenTape struct {
	codes []uint64
	pos   int
}

func (tt *tokenTape) Peek() (uint64, error) {
	if tt.pos >= len(tt.codes) {
		return EndSymbolCode, nil
	}
	return tt.codes[tt.pos], nil
}

func (tt *tokenTape) Pop() (struct{}, bool, error) {
	tt.pos++
	return struct{}{}, false, nil
}

func TestDyckBuildASTNestsTwoApplications(t *testing.T) {
	table, err := Build(dyckCfg())
	require.NoError(t, err)

	tokens := &tokenTape{codes: []uint64{lparen, rparen, lparen, rparen}}
	root, err := BuildAST[struct{}](table, tokens)
	require.NoError(t, err)

	require.Len(t, root.Children, 4)
	assert.Equal(t, ChildTerminal, root.Children[0].Kind)
	assert.Equal(t, lparen, root.Children[0].Terminal)
	assert.Equal(t, ChildNonterminal, root.Children[1].Kind)
	assert.Empty(t, root.Children[1].Node.Children, "first nested S must be the epsilon derivation")
	assert.Equal(t, ChildTerminal, root.Children[2].Kind)
	assert.Equal(t, rparen, root.Children[2].Terminal)

	second := root.Children[3].Node
	require.Len(t, second.Children, 4)
	assert.Equal(t, lparen, second.Children[0].Terminal)
	assert.Empty(t, second.Children[1].Node.Children)
	assert.Equal(t, rparen, second.Children[2].Terminal)
	assert.Empty(t, second.Children[3].Node.Children)
}

func TestBuildDetectsAmbiguousGrammar(t *testing.T) {
	// S -> a | a b : both productions start with terminal 'a', same cell.
	g := NewCfg(1)
	g.AddProduction(0, Production{Terminal(0)})
	g.AddProduction(0, Production{Terminal(0), Terminal(1)})

	_, err := Build(g)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGrammarAmbiguous))
}

func TestFirstFollowFixpointIsStable(t *testing.T) {
	g := dyckCfg()
	firsts1 := g.firsts()
	follows1 := g.follows(firsts1)
	firsts2 := g.firsts()
	follows2 := g.follows(firsts2)

	assert.Equal(t, firsts1[0].epsilon, firsts2[0].epsilon)
	assert.Equal(t, len(firsts1[0].others), len(firsts2[0].others))
	assert.Equal(t, len(follows1[0]), len(follows2[0]))
}

func TestTableJSONRoundTrip(t *testing.T) {
	table, err := Build(dyckCfg())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "table.json")
	require.NoError(t, WriteJSONFile(table, path))

	got, err := ReadJSONFile(path)
	require.NoError(t, err)
	assert.Equal(t, table.Productions, got.Productions)
	assert.Equal(t, table.ParseTable, got.ParseTable)
}

func TestTableYAMLWrites(t *testing.T) {
	table, err := Build(dyckCfg())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, WriteYAMLFile(table, path))
}

// Classic LL(1) arithmetic-expression grammar:
//
//	expr    -> factor exprTail
//	exprTail-> + factor exprTail | epsilon
//	factor  -> primary factorTail
//	factorTail -> * primary factorTail | epsilon
//	primary -> n | ( expr )
//
// Nonterminal and terminal codes below fix an arbitrary but stable
// numbering; production codes follow AddProduction call order.
const (
	ntExpr uint64 = iota
	ntExprTail
	ntFactor
	ntFactorTail
	ntPrimary
)

const (
	tNum uint64 = iota
	tPlus
	tStar
	tOpen
	tClose
)

const (
	pExpr uint64 = iota
	pExprTailPlus
	pFactor
	pFactorTailStar
	pPrimaryNum
	pPrimaryParen
)

func arithmeticCfg() *Cfg {
	g := NewCfg(5)
	g.EpsilonProducers[ntExprTail] = struct{}{}
	g.EpsilonProducers[ntFactorTail] = struct{}{}
	g.AddProduction(ntExpr, Production{Nonterminal(ntFactor), Nonterminal(ntExprTail)})
	g.AddProduction(ntExprTail, Production{Terminal(tPlus), Nonterminal(ntFactor), Nonterminal(ntExprTail)})
	g.AddProduction(ntFactor, Production{Nonterminal(ntPrimary), Nonterminal(ntFactorTail)})
	g.AddProduction(ntFactorTail, Production{Terminal(tStar), Nonterminal(ntPrimary), Nonterminal(ntFactorTail)})
	g.AddProduction(ntPrimary, Production{Terminal(tNum)})
	g.AddProduction(ntPrimary, Production{Terminal(tOpen), Nonterminal(ntExpr), Terminal(tClose)})
	return g
}

// TestArithmeticTableMatchesHandDerivedFirstFollow checks the built table
// against the grammar's FIRST/FOLLOW sets worked out by hand: FIRST(expr)
// = FIRST(factor) = FIRST(primary) = {n, (}; FOLLOW(exprTail) =
// FOLLOW(expr) = {END, )}; FOLLOW(factorTail) = FOLLOW(factor) = {+, END,
// )}.
func TestArithmeticTableMatchesHandDerivedFirstFollow(t *testing.T) {
	table, err := Build(arithmeticCfg())
	require.NoError(t, err)
	require.Len(t, table.ParseTable, 5)

	assert.Equal(t, map[uint64]uint64{tNum: pExpr, tOpen: pExpr}, table.ParseTable[ntExpr])
	assert.Equal(t, map[uint64]uint64{
		tPlus:         pExprTailPlus,
		tClose:        EpsilonRuleCode,
		EndSymbolCode: EpsilonRuleCode,
	}, table.ParseTable[ntExprTail])
	assert.Equal(t, map[uint64]uint64{tNum: pFactor, tOpen: pFactor}, table.ParseTable[ntFactor])
	assert.Equal(t, map[uint64]uint64{
		tStar:         pFactorTailStar,
		tPlus:         EpsilonRuleCode,
		tClose:        EpsilonRuleCode,
		EndSymbolCode: EpsilonRuleCode,
	}, table.ParseTable[ntFactorTail])
	assert.Equal(t, map[uint64]uint64{tNum: pPrimaryNum, tOpen: pPrimaryParen}, table.ParseTable[ntPrimary])
}

// numTape feeds a fixed terminal-code sequence, reporting no semantic
// value for any token (mirroring tokenTape above).
type numTape struct {
	codes []uint64
	pos   int
}

func (nt *numTape) Peek() (uint64, error) {
	if nt.pos >= len(nt.codes) {
		return EndSymbolCode, nil
	}
	return nt.codes[nt.pos], nil
}

func (nt *numTape) Pop() (struct{}, bool, error) {
	nt.pos++
	return struct{}{}, false, nil
}

// TestArithmeticBuildASTParsesNPlusN walks "n + n" through the grammar
// above and checks the left-to-right shape: expr -> factor exprTail,
// where factor is a lone primary (empty factorTail) and exprTail carries
// the "+" and a second, identically-shaped factor.
func TestArithmeticBuildASTParsesNPlusN(t *testing.T) {
	table, err := Build(arithmeticCfg())
	require.NoError(t, err)

	tokens := &numTape{codes: []uint64{tNum, tPlus, tNum}}
	root, err := BuildAST[struct{}](table, tokens)
	require.NoError(t, err)

	require.Equal(t, ntExpr, root.Nonterminal)
	require.Len(t, root.Children, 2)

	firstFactor := root.Children[0].Node
	require.Equal(t, ntFactor, firstFactor.Nonterminal)
	require.Len(t, firstFactor.Children, 2)
	assert.Equal(t, ntPrimary, firstFactor.Children[0].Node.Nonterminal)
	assert.Equal(t, tNum, firstFactor.Children[0].Node.Children[0].Terminal)
	assert.Empty(t, firstFactor.Children[1].Node.Children, "factorTail must be the epsilon derivation")

	exprTail := root.Children[1].Node
	require.Equal(t, ntExprTail, exprTail.Nonterminal)
	require.Len(t, exprTail.Children, 3)
	assert.Equal(t, ChildTerminal, exprTail.Children[0].Kind)
	assert.Equal(t, tPlus, exprTail.Children[0].Terminal)

	secondFactor := exprTail.Children[1].Node
	require.Equal(t, ntFactor, secondFactor.Nonterminal)
	assert.Equal(t, tNum, secondFactor.Children[0].Node.Children[0].Terminal)
	assert.Empty(t, secondFactor.Children[1].Node.Children)

	assert.Empty(t, exprTail.Children[2].Node.Children, "trailing exprTail must be the epsilon derivation")
}

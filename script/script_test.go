package script

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.starlark.net/starlark"

	"github.com/ezrec/typo/machine"
)

func TestExec(t *testing.T) {
	assert := assert.New(t)

	var printed []string
	sc := &Script{
		Print: func(msg string) { printed = append(printed, msg) },
	}

	src := `
enzymes = translate("ACCA")
print(enzymes[0])
sites = bind_sites(enzymes[0], "ACCA")
out = execute(enzymes[0], "ACCA", 0)
lanes = batch(enzymes * 2, ["ACCA", "ACCA"], [0, 3])
prods = products("ACCA", "ACCA")
alive = survivor("CA")
dead = survivor("AAAA")
comp = complement("AACG")
rc = reverse_complement("AACG")
`
	globals, err := sc.Exec("test.star", src)
	if !assert.NoError(err) {
		return
	}

	assert.Equal([]string{"cut-mvr:A"}, printed)

	table := [](struct {
		name   string
		expect string
	}){
		{"enzymes", `["cut-mvr:A"]`},
		{"sites", `[0, 3]`},
		{"out", `["A", "CCA"]`},
		{"lanes", `[["A", "CCA"], ["ACCA"]]`},
		{"prods", `["A", "ACCA", "CCA"]`},
		{"alive", `True`},
		{"dead", `False`},
		{"comp", `"TTGC"`},
		{"rc", `"CGTT"`},
	}

	for _, entry := range table {
		value, ok := globals[entry.name]
		if !assert.True(ok, entry.name) {
			continue
		}
		assert.Equal(entry.expect, value.String(), entry.name)
	}
}

func TestExec_Errors(t *testing.T) {
	assert := assert.New(t)

	sc := &Script{}

	table := [](struct {
		name string
		src  string
	}){
		{"mnemonic", `execute("bogus", "ACCA", 0)`},
		{"strand", `complement("ACNA")`},
		{"arity", `translate()`},
		{"type", `batch(["cut:A"], ["ACCA"], ["x"])`},
		{"mismatch", `batch(["cut:A"], ["ACCA", "A"], [0])`},
	}

	for _, entry := range table {
		_, err := sc.Exec(entry.name+".star", entry.src)
		var scriptErr ErrScript
		assert.True(errors.As(err, &scriptErr), entry.name)
	}

	_, err := sc.Exec("range.star", `execute("cut:A", "ACCA", 9)`)
	var rangeErr machine.ErrBindRange
	assert.True(errors.As(err, &rangeErr))
	assert.Equal(9, rangeErr.Position)
}

func TestExec_Syntax(t *testing.T) {
	assert := assert.New(t)

	sc := &Script{}
	_, err := sc.Exec("bad.star", "def (")
	assert.Error(err)

	var scriptErr ErrScript
	assert.False(errors.As(err, &scriptErr))
}

func TestExec_Load(t *testing.T) {
	assert := assert.New(t)

	sc := &Script{
		Load: func(module string) (globals starlark.StringDict, err error) {
			child := &Script{}
			return child.Exec(module, `seed = "ACCA"`)
		},
	}

	globals, err := sc.Exec("main.star", `
load("seed.star", "seed")
alive = survivor(seed)
`)
	assert.NoError(err)
	assert.Equal("True", globals["alive"].String())
}

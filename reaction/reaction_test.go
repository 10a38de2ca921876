package reaction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/typo/batch"
)

func TestPlan(t *testing.T) {
	assert := assert.New(t)

	reactions := Plan("ACCA", "ACCA")
	assert.Len(reactions, 2)
	assert.Equal("cut-mvr:A", reactions[0].Enzyme.String())
	assert.Equal(0, reactions[0].Position)
	assert.Equal(3, reactions[1].Position)
	assert.Equal(0, reactions[1].Index)

	assert.Empty(Plan("AAAA", "ACGT"))
	assert.Empty(Plan("GCGC", "GCGC"))
}

func TestReactions(t *testing.T) {
	assert := assert.New(t)

	reactions, err := Reactions("ACCA", "ACCA")
	assert.NoError(err)
	assert.Equal([]string{"A", "CCA"}, reactions[0].Outputs)
	assert.Equal([]string{"ACCA"}, reactions[1].Outputs)
	assert.Equal([]string{"A", "ACCA", "CCA"}, Products(reactions))

	_, err = Reactions("ACCA", "ACNA")
	assert.Error(err)
}

func TestSurvivor(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		strand   string
		survivor bool
	}){
		{"CA", true},
		{"ACCA", true},
		{"GCGC", false},
		{"AAAA", false},
		{"GAGA", false},
	}

	for _, entry := range table {
		ok, err := Survivor(entry.strand)
		assert.NoError(err, entry.strand)
		assert.Equal(entry.survivor, ok, entry.strand)
	}
}

func TestReactionsBatch(t *testing.T) {
	assert := assert.New(t)

	pairs := []Pair{
		{"ACCA", "ACCA"},
		{"GCGC", "TTAT"},
		{"AAAA", "ACGT"},
		{"CGTAGAAATTTGCT", "GATTACAGATTACA"},
	}

	batched, err := ReactionsBatch(context.Background(), batch.DefaultConfig(), 2, nil, pairs)
	assert.NoError(err)
	assert.Len(batched, len(pairs))

	for n, pair := range pairs {
		scalar, err := Reactions(pair.Catalyst, pair.Target)
		assert.NoError(err)
		assert.Equal(scalar, batched[n], "%v", pair)
	}

	_, err = ReactionsBatch(context.Background(), batch.DefaultConfig(), 2, nil, []Pair{{"ACCA", "AC-A"}})
	assert.Error(err)
}

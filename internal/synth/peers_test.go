package synth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mock-generator/internal/model"
	"mock-generator/internal/synth"
)

func TestEntryPoints(t *testing.T) {
	t.Parallel()

	single, batch := synth.EntryPoints("Order")
	assert.Equal(t, "MockOrder", single)
	assert.Equal(t, "MockOrderBatch", batch)

	single, batch = synth.EntryPoints("lineItem")
	assert.Equal(t, "mockLineItem", single)
	assert.Equal(t, "mockLineItemBatch", batch)
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	order := &model.Declaration{Name: "Order", PkgPath: storePkg, Kind: model.DeclRecord}
	handler := &model.Declaration{Name: "Handler", PkgPath: storePkg, Kind: model.DeclOther}
	r := newRegistry(order, handler)

	assert.Equal(t, 1, r.Len(), "declarations that are not mockable are skipped")

	peer, ok := r.Lookup(model.Named("store.Order", ""), "example.com/shop/billing")
	require.True(t, ok, "qualifier resolves through the package name")
	assert.Equal(t, storePkg+".Order", peer.Key)
	assert.Equal(t, "store", peer.PkgName)
	assert.False(t, peer.Enum)

	_, ok = r.Lookup(model.Named("Order", ""), "example.com/shop/billing")
	assert.False(t, ok, "unqualified names resolve in the current package only")

	_, ok = r.Lookup(model.Named("Order", storePkg, model.Scalar("int")), storePkg)
	assert.False(t, ok, "generic instantiations are never peers")

	r.Remove(order.Key())
	_, ok = r.Lookup(model.Named("Order", storePkg), storePkg)
	assert.False(t, ok)
}
